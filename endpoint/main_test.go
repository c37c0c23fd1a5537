package endpoint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ariebrainware/voicenotes-api/middleware"
	"github.com/ariebrainware/voicenotes-api/model"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestRouter builds a router with the full route table wired to a fresh
// in-memory database. Auth and rate limiting are left off so handler behavior
// can be exercised directly; integration_test.go covers the guarded setup.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:endpoint_%d?mode=memory&cache=shared&_foreign_keys=on", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Patient{}, &model.Note{}, &model.Summary{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	router := gin.New()
	router.Use(middleware.DatabaseMiddleware(db))
	RegisterRoutes(router)
	router.GET("/health", Health)
	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			panic(fmt.Sprintf("marshal request body: %v", err))
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// envelope mirrors util.APIResponse for decoding test responses.
type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (data: %s)", err, string(env.Data))
	}
}

func createPatientViaAPI(t *testing.T, router *gin.Engine, mrn string) model.Patient {
	t.Helper()
	w := performRequest(router, http.MethodPost, "/patients", gin.H{
		"firstName":           "John",
		"lastName":            "Doe",
		"dateOfBirth":         "1990-01-01",
		"medicalRecordNumber": mrn,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create patient: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var patient model.Patient
	decodeData(t, parseEnvelope(t, w), &patient)
	return patient
}

func createNoteViaAPI(t *testing.T, router *gin.Engine, patientID uint, recordedAt string) model.Note {
	t.Helper()
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/patients/%d/notes", patientID), gin.H{
		"doctorId":   42,
		"recordedAt": recordedAt,
		"duration":   180,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create note: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var note model.Note
	decodeData(t, parseEnvelope(t, w), &note)
	return note
}

func createSummaryViaAPI(t *testing.T, router *gin.Engine, noteID uint, content string) model.Summary {
	t.Helper()
	w := performRequest(router, http.MethodPost, fmt.Sprintf("/notes/%d/summaries", noteID), gin.H{
		"content": content,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create summary: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var summary model.Summary
	decodeData(t, parseEnvelope(t, w), &summary)
	return summary
}
