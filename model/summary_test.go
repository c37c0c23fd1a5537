package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createTestNote(t *testing.T, db *gorm.DB) Note {
	t.Helper()
	patient := createTestPatient(t, db)
	note := Note{PatientID: patient.ID, DoctorID: 1, RecordedAt: time.Now(), Duration: 60}
	if err := db.Create(&note).Error; err != nil {
		t.Fatalf("create note: %v", err)
	}
	return note
}

func TestSummaryCreateAssignsGeneratedAt(t *testing.T) {
	db := setupTestDB(t, "summary", &Patient{}, &Note{}, &Summary{})
	note := createTestNote(t, db)

	summary := Summary{NoteID: note.ID, Content: "first", Version: 1}
	err := db.Create(&summary).Error
	assert.NoError(t, err)
	assert.NotZero(t, summary.ID)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestSummaryNoteVersionUnique(t *testing.T) {
	db := setupTestDB(t, "summary_unique", &Patient{}, &Note{}, &Summary{})
	note := createTestNote(t, db)

	first := Summary{NoteID: note.ID, Content: "first", Version: 1}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first summary: %v", err)
	}

	duplicate := Summary{NoteID: note.ID, Content: "other", Version: 1}
	err := db.Create(&duplicate).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "expected duplicated key error, got %v", err)

	// Same version under a different note is fine.
	other := createTestNote2(t, db)
	ok := Summary{NoteID: other.ID, Content: "first", Version: 1}
	assert.NoError(t, db.Create(&ok).Error)
}

func createTestNote2(t *testing.T, db *gorm.DB) Note {
	t.Helper()
	patient := Patient{FirstName: "Jane", LastName: "Doe", DateOfBirth: "1992-02-02", MedicalRecordNumber: "MRN2"}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("create patient: %v", err)
	}
	note := Note{PatientID: patient.ID, DoctorID: 2, RecordedAt: time.Now(), Duration: 30}
	if err := db.Create(&note).Error; err != nil {
		t.Fatalf("create note: %v", err)
	}
	return note
}
