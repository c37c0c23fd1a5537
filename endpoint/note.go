package endpoint

import (
	"time"

	"github.com/ariebrainware/voicenotes-api/repository"
	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
)

type createNoteRequest struct {
	DoctorID      uint    `json:"doctorId" binding:"required,gt=0" example:"42"`
	RecordedAt    string  `json:"recordedAt" binding:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-03-01T09:30:00Z"`
	Duration      *int    `json:"duration" binding:"required,gte=0" example:"180"`
	Transcription *string `json:"transcription" binding:"omitempty,max=10000"`
	FileSize      *int64  `json:"fileSize" binding:"omitempty,gt=0" example:"2048000"`
	FileFormat    *string `json:"fileFormat" binding:"omitempty,max=50" example:"mp3"`
}

type updateNoteRequest struct {
	Transcription *string `json:"transcription" binding:"omitempty,max=10000"`
	Duration      *int    `json:"duration" binding:"omitempty,gte=0" example:"200"`
	FileSize      *int64  `json:"fileSize" binding:"omitempty,gt=0" example:"2048000"`
	FileFormat    *string `json:"fileFormat" binding:"omitempty,max=50" example:"wav"`
}

func (r updateNoteRequest) empty() bool {
	return r.Transcription == nil && r.Duration == nil && r.FileSize == nil && r.FileFormat == nil
}

// CreateNote godoc
// @Summary      Create a note for a patient
// @Description  Record voice note metadata under an existing patient
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        patientId path int true "Patient ID"
// @Param        request body createNoteRequest true "Note information"
// @Success      201 {object} util.APIResponse{data=model.Note} "Note created"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patients/{patientId}/notes [post]
func CreateNote(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	var req createNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	// Parent existence first: a note under a missing patient is a 404 on the
	// patient, never a raw storage error.
	if _, err := repository.NewPatientRepository(db).GetByID(patientID); err != nil {
		util.RespondError(c, err)
		return
	}

	recordedAt, err := time.Parse(time.RFC3339, req.RecordedAt)
	if err != nil {
		util.CallValidationError(c, []util.FieldError{{
			Path:    "recordedAt",
			Message: "recordedAt must be a valid ISO datetime",
		}})
		return
	}

	note, err := repository.NewNoteRepository(db).Create(patientID, repository.CreateNoteInput{
		DoctorID:      req.DoctorID,
		RecordedAt:    recordedAt,
		Duration:      *req.Duration,
		Transcription: req.Transcription,
		FileSize:      req.FileSize,
		FileFormat:    req.FileFormat,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallCreated(c, util.APISuccessParams{Msg: "Note created", Data: note})
}

// ListPatientNotes godoc
// @Summary      List notes of a patient
// @Description  Get all notes recorded for a patient, most recent first
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        patientId path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=[]model.Note} "Notes retrieved"
// @Failure      400 {object} util.APIResponse "Invalid patient ID"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patients/{patientId}/notes [get]
func ListPatientNotes(c *gin.Context) {
	patientID, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	if _, err := repository.NewPatientRepository(db).GetByID(patientID); err != nil {
		util.RespondError(c, err)
		return
	}

	notes, err := repository.NewNoteRepository(db).ListByPatient(patientID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessList(c, notes, len(notes))
}

// GetNoteInfo godoc
// @Summary      Get note information
// @Description  Get voice note metadata by ID
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        noteId path int true "Note ID"
// @Success      200 {object} util.APIResponse{data=model.Note} "Note retrieved"
// @Failure      400 {object} util.APIResponse "Invalid note ID"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Router       /notes/{noteId} [get]
func GetNoteInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	note, err := repository.NewNoteRepository(db).GetByID(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Data: note})
}

// UpdateNote godoc
// @Summary      Update a note
// @Description  Update mutable note fields; patientId, doctorId and recordedAt are immutable
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        noteId path int true "Note ID"
// @Param        request body updateNoteRequest true "Updated note fields"
// @Success      200 {object} util.APIResponse{data=model.Note} "Note updated"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Router       /notes/{noteId} [put]
func UpdateNote(c *gin.Context) {
	id, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req updateNoteRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.empty() {
		util.CallValidationError(c, []util.FieldError{{
			Path:    "body",
			Message: "At least one field must be provided for update",
		}})
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	note, err := repository.NewNoteRepository(db).Update(id, repository.UpdateNoteInput{
		Transcription: req.Transcription,
		Duration:      req.Duration,
		FileSize:      req.FileSize,
		FileFormat:    req.FileFormat,
	})
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Note updated", Data: note})
}

// DeleteNote godoc
// @Summary      Delete a note
// @Description  Hard delete a note by ID. Summaries are not cascade-deleted.
// @Tags         Note
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        noteId path int true "Note ID"
// @Success      200 {object} util.APIResponse "Note deleted"
// @Failure      400 {object} util.APIResponse "Invalid note ID"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Router       /notes/{noteId} [delete]
func DeleteNote(c *gin.Context) {
	id, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	removed, err := repository.NewNoteRepository(db).Delete(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	if !removed {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Note not found"})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Note deleted successfully"})
}
