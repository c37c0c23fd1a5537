package repository

import (
	"time"

	"github.com/ariebrainware/voicenotes-api/model"
	"github.com/ariebrainware/voicenotes-api/util"
	"gorm.io/gorm"
)

// NoteRepository handles data access for voice note metadata.
type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// CreateNoteInput carries the validated fields for a new note.
type CreateNoteInput struct {
	DoctorID      uint
	RecordedAt    time.Time
	Duration      int
	Transcription *string
	FileSize      *int64
	FileFormat    *string
}

// UpdateNoteInput carries a partial note update. Only transcription, duration,
// file size and file format are mutable; patientId, doctorId and recordedAt
// are immutable after creation.
type UpdateNoteInput struct {
	Transcription *string
	Duration      *int
	FileSize      *int64
	FileFormat    *string
}

// GetByID returns a note by id or a tagged not-found error.
func (r *NoteRepository) GetByID(id uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.First(&note, id).Error; err != nil {
		return nil, util.TranslateDBError(err, "Note", "")
	}
	return &note, nil
}

// ListByPatient returns all notes of a patient, most recently recorded first.
func (r *NoteRepository) ListByPatient(patientID uint) ([]model.Note, error) {
	var notes []model.Note
	if err := r.db.Where("patient_id = ?", patientID).Order("recorded_at DESC").Find(&notes).Error; err != nil {
		return nil, util.TranslateDBError(err, "Note", "")
	}
	return notes, nil
}

// Create inserts a note under the given patient. The caller must have verified
// the patient exists; the store's foreign key acts as a backstop and surfaces
// as a not-found on the patient.
func (r *NoteRepository) Create(patientID uint, in CreateNoteInput) (*model.Note, error) {
	note := model.Note{
		PatientID:     patientID,
		DoctorID:      in.DoctorID,
		RecordedAt:    in.RecordedAt,
		Duration:      in.Duration,
		Transcription: in.Transcription,
		FileSize:      in.FileSize,
		FileFormat:    in.FileFormat,
	}
	if err := r.db.Create(&note).Error; err != nil {
		return nil, util.TranslateDBError(err, "Note", "Patient")
	}
	return &note, nil
}

// Update applies only the provided fields. An empty partial is a no-op and
// returns the current row unchanged.
func (r *NoteRepository) Update(id uint, in UpdateNoteInput) (*model.Note, error) {
	note, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Transcription != nil {
		updates["transcription"] = *in.Transcription
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.FileSize != nil {
		updates["file_size"] = *in.FileSize
	}
	if in.FileFormat != nil {
		updates["file_format"] = *in.FileFormat
	}
	if len(updates) == 0 {
		return note, nil
	}

	if err := r.db.Model(note).Updates(updates).Error; err != nil {
		return nil, util.TranslateDBError(err, "Note", "")
	}
	return r.GetByID(id)
}

// Delete removes a note row and reports whether one was removed.
func (r *NoteRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Note{}, id)
	if result.Error != nil {
		return false, util.TranslateDBError(result.Error, "Note", "")
	}
	return result.RowsAffected > 0, nil
}
