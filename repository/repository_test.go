package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/ariebrainware/voicenotes-api/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRepoDB opens an in-memory SQLite database with the full schema, foreign
// keys enforced and driver error translation on, matching the application
// connection in config.ConnectMySQL.
func setupRepoDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Patient{}, &model.Note{}, &model.Summary{}); err != nil {
		t.Fatalf("failed to auto-migrate: %v", err)
	}
	return db
}

func seedPatient(t *testing.T, db *gorm.DB, mrn string) *model.Patient {
	t.Helper()
	patient, err := NewPatientRepository(db).Create(CreatePatientInput{
		FirstName:           "John",
		LastName:            "Doe",
		DateOfBirth:         "1990-01-01",
		MedicalRecordNumber: mrn,
	})
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return patient
}

func seedNote(t *testing.T, db *gorm.DB, patientID uint, recordedAt time.Time) *model.Note {
	t.Helper()
	note, err := NewNoteRepository(db).Create(patientID, CreateNoteInput{
		DoctorID:   42,
		RecordedAt: recordedAt,
		Duration:   180,
	})
	if err != nil {
		t.Fatalf("seed note: %v", err)
	}
	return note
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }
