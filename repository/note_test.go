package repository

import (
	"testing"
	"time"

	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/stretchr/testify/assert"
)

func TestNoteCreateUnderMissingPatientIsNotFound(t *testing.T) {
	db := setupRepoDB(t, "note_fk")

	// The store's foreign key is the backstop when the handler-level parent
	// check is bypassed; the failure must still name the patient.
	_, err := NewNoteRepository(db).Create(9999, CreateNoteInput{
		DoctorID:   1,
		RecordedAt: time.Now(),
		Duration:   60,
	})
	assert.Error(t, err)
	assert.True(t, util.IsNotFound(err), "expected not found, got %v", err)
	assert.Contains(t, err.Error(), "Patient not found")
}

func TestNoteCreateReturnsPopulatedRow(t *testing.T) {
	db := setupRepoDB(t, "note_create")
	patient := seedPatient(t, db, "MRN1")

	recordedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	note, err := NewNoteRepository(db).Create(patient.ID, CreateNoteInput{
		DoctorID:      42,
		RecordedAt:    recordedAt,
		Duration:      180,
		Transcription: strPtr("patient reports mild headache"),
		FileSize:      int64Ptr(2048000),
		FileFormat:    strPtr("mp3"),
	})
	assert.NoError(t, err)
	assert.Greater(t, note.ID, uint(0))
	assert.Equal(t, patient.ID, note.PatientID)
	assert.Equal(t, uint(42), note.DoctorID)
	assert.Equal(t, 180, note.Duration)
	assert.Equal(t, "mp3", *note.FileFormat)
	assert.False(t, note.CreatedAt.IsZero())
}

func TestNoteListByPatientOrderedByRecordedAtDesc(t *testing.T) {
	db := setupRepoDB(t, "note_list")
	patient := seedPatient(t, db, "MRN1")

	oldest := seedNote(t, db, patient.ID, time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC))
	newest := seedNote(t, db, patient.ID, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC))
	middle := seedNote(t, db, patient.ID, time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC))

	notes, err := NewNoteRepository(db).ListByPatient(patient.ID)
	assert.NoError(t, err)
	if assert.Len(t, notes, 3) {
		assert.Equal(t, newest.ID, notes[0].ID)
		assert.Equal(t, middle.ID, notes[1].ID)
		assert.Equal(t, oldest.ID, notes[2].ID)
	}
}

func TestNoteUpdateAppliesOnlyProvidedFields(t *testing.T) {
	db := setupRepoDB(t, "note_update")
	patient := seedPatient(t, db, "MRN1")
	note := seedNote(t, db, patient.ID, time.Now())

	updated, err := NewNoteRepository(db).Update(note.ID, UpdateNoteInput{
		Transcription: strPtr("updated transcription"),
		Duration:      intPtr(200),
	})
	assert.NoError(t, err)
	assert.Equal(t, "updated transcription", *updated.Transcription)
	assert.Equal(t, 200, updated.Duration)
	// Immutable fields survive the update untouched.
	assert.Equal(t, note.PatientID, updated.PatientID)
	assert.Equal(t, note.DoctorID, updated.DoctorID)
	assert.WithinDuration(t, note.RecordedAt, updated.RecordedAt, time.Second)
}

func TestNoteUpdateEmptyPartialIsNoOp(t *testing.T) {
	db := setupRepoDB(t, "note_noop")
	patient := seedPatient(t, db, "MRN1")
	note := seedNote(t, db, patient.ID, time.Now())

	updated, err := NewNoteRepository(db).Update(note.ID, UpdateNoteInput{})
	assert.NoError(t, err)
	assert.Equal(t, note.ID, updated.ID)
	assert.Equal(t, note.Duration, updated.Duration)
}

func TestNoteUpdateNotFound(t *testing.T) {
	db := setupRepoDB(t, "note_update_missing")

	_, err := NewNoteRepository(db).Update(12345, UpdateNoteInput{Duration: intPtr(10)})
	assert.True(t, util.IsNotFound(err), "expected not found, got %v", err)
	assert.Contains(t, err.Error(), "Note not found")
}

func TestNoteDeleteReportsRemoval(t *testing.T) {
	db := setupRepoDB(t, "note_delete")
	patient := seedPatient(t, db, "MRN1")
	note := seedNote(t, db, patient.ID, time.Now())
	repo := NewNoteRepository(db)

	removed, err := repo.Delete(note.ID)
	assert.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(note.ID)
	assert.NoError(t, err)
	assert.False(t, removed)
}

func TestPatientDeleteDoesNotCascadeNotes(t *testing.T) {
	db := setupRepoDB(t, "note_no_cascade")
	patient := seedPatient(t, db, "MRN1")
	seedNote(t, db, patient.ID, time.Now())

	// Deleting a patient with dependent notes trips the foreign key rather
	// than cascading; the note rows stay put.
	_, err := NewPatientRepository(db).Delete(patient.ID)
	assert.Error(t, err)

	notes, listErr := NewNoteRepository(db).ListByPatient(patient.ID)
	assert.NoError(t, listErr)
	assert.Len(t, notes, 1)
}
