package repository

import (
	"errors"

	"github.com/ariebrainware/voicenotes-api/model"
	"github.com/ariebrainware/voicenotes-api/util"
	"gorm.io/gorm"
)

// SummaryRepository handles data access for versioned note summaries.
type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// Create inserts a summary with version max(existing versions for the note)+1,
// starting at 1. The read and insert run in one transaction; the unique index
// on (note_id, version) is the backstop under concurrent creation, and a
// duplicate-key loss is retried once with a freshly computed version.
func (r *SummaryRepository) Create(noteID uint, content string) (*model.Summary, error) {
	var summary model.Summary

	insert := func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var maxVersion int
			err := tx.Model(&model.Summary{}).
				Where("note_id = ?", noteID).
				Select("COALESCE(MAX(version), 0)").
				Scan(&maxVersion).Error
			if err != nil {
				return err
			}

			summary = model.Summary{
				NoteID:  noteID,
				Content: content,
				Version: maxVersion + 1,
			}
			return tx.Create(&summary).Error
		})
	}

	if err := retryOnDuplicate(insert); err != nil {
		return nil, util.TranslateDBError(err, "Summary", "Note")
	}
	return &summary, nil
}

// retryOnDuplicate runs insert and retries it exactly once when the unique
// (note_id, version) index rejects a version taken by a concurrent create.
// The retry recomputes the version inside a fresh transaction; a second
// duplicate surfaces to the caller.
func retryOnDuplicate(insert func() error) error {
	err := insert()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = insert()
	}
	return err
}

// ListByNote returns all summaries of a note ordered by version descending.
func (r *SummaryRepository) ListByNote(noteID uint) ([]model.Summary, error) {
	var summaries []model.Summary
	if err := r.db.Where("note_id = ?", noteID).Order("version DESC").Find(&summaries).Error; err != nil {
		return nil, util.TranslateDBError(err, "Summary", "")
	}
	return summaries, nil
}

// FindLatestByNote returns the highest-versioned summary of a note.
func (r *SummaryRepository) FindLatestByNote(noteID uint) (*model.Summary, error) {
	var summary model.Summary
	if err := r.db.Where("note_id = ?", noteID).Order("version DESC").First(&summary).Error; err != nil {
		return nil, util.TranslateDBError(err, "Summary", "")
	}
	return &summary, nil
}

// GetByID returns a summary by id or a tagged not-found error.
func (r *SummaryRepository) GetByID(id uint) (*model.Summary, error) {
	var summary model.Summary
	if err := r.db.First(&summary, id).Error; err != nil {
		return nil, util.TranslateDBError(err, "Summary", "")
	}
	return &summary, nil
}

// Update mutates content in place. The version is never bumped here: new
// versions only come from Create. A nil content is a no-op that returns the
// current row.
func (r *SummaryRepository) Update(id uint, content *string) (*model.Summary, error) {
	summary, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return summary, nil
	}

	if err := r.db.Model(summary).Update("content", *content).Error; err != nil {
		return nil, util.TranslateDBError(err, "Summary", "")
	}
	return r.GetByID(id)
}

// Delete removes a summary row and reports whether one was removed.
func (r *SummaryRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Summary{}, id)
	if result.Error != nil {
		return false, util.TranslateDBError(result.Error, "Summary", "")
	}
	return result.RowsAffected > 0, nil
}
