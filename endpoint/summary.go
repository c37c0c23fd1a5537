package endpoint

import (
	"github.com/ariebrainware/voicenotes-api/repository"
	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
)

type createSummaryRequest struct {
	Content string `json:"content" binding:"required,max=50000" example:"Patient reports mild headache."`
}

type updateSummaryRequest struct {
	Content *string `json:"content" binding:"omitempty,min=1,max=50000" example:"Patient reports mild headache, improving."`
}

// CreateSummary godoc
// @Summary      Create a summary for a note
// @Description  Append a new summary version under an existing note
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        noteId path int true "Note ID"
// @Param        request body createSummaryRequest true "Summary content"
// @Success      201 {object} util.APIResponse{data=model.Summary} "Summary created"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Router       /notes/{noteId}/summaries [post]
func CreateSummary(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req createSummaryRequest
	if !bindJSON(c, &req) {
		return
	}

	db, ok := getDB(c)
	if !ok {
		return
	}

	if _, err := repository.NewNoteRepository(db).GetByID(noteID); err != nil {
		util.RespondError(c, err)
		return
	}

	summary, err := repository.NewSummaryRepository(db).Create(noteID, req.Content)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallCreated(c, util.APISuccessParams{Msg: "Summary created", Data: summary})
}

// ListNoteSummaries godoc
// @Summary      List summaries of a note
// @Description  Get all summaries of a note ordered by version descending. Pass latest=true for only the newest version.
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        noteId path int true "Note ID"
// @Param        latest query bool false "Return only the latest version"
// @Success      200 {object} util.APIResponse{data=[]model.Summary} "Summaries retrieved"
// @Failure      400 {object} util.APIResponse "Invalid note ID"
// @Failure      404 {object} util.APIResponse "Note not found"
// @Router       /notes/{noteId}/summaries [get]
func ListNoteSummaries(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	if _, err := repository.NewNoteRepository(db).GetByID(noteID); err != nil {
		util.RespondError(c, err)
		return
	}

	summaryRepo := repository.NewSummaryRepository(db)

	if c.Query("latest") == "true" {
		summary, err := summaryRepo.FindLatestByNote(noteID)
		if err != nil {
			util.RespondError(c, err)
			return
		}
		util.CallSuccessOK(c, util.APISuccessParams{Data: summary})
		return
	}

	summaries, err := summaryRepo.ListByNote(noteID)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessList(c, summaries, len(summaries))
}

// GetSummaryInfo godoc
// @Summary      Get summary information
// @Description  Get a summary by ID
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        id path int true "Summary ID"
// @Success      200 {object} util.APIResponse{data=model.Summary} "Summary retrieved"
// @Failure      400 {object} util.APIResponse "Invalid summary ID"
// @Failure      404 {object} util.APIResponse "Summary not found"
// @Router       /summaries/{id} [get]
func GetSummaryInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	summary, err := repository.NewSummaryRepository(db).GetByID(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Data: summary})
}

// UpdateSummary godoc
// @Summary      Update a summary
// @Description  Mutate summary content in place. The version is never bumped by an update.
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        id path int true "Summary ID"
// @Param        request body updateSummaryRequest true "Updated summary content"
// @Success      200 {object} util.APIResponse{data=model.Summary} "Summary updated"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      404 {object} util.APIResponse "Summary not found"
// @Router       /summaries/{id} [put]
func UpdateSummary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateSummaryRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Content == nil {
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

	summary, err := repository.NewSummaryRepository(db).Update(id, req.Content)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Summary updated", Data: summary})
}

// DeleteSummary godoc
// @Summary      Delete a summary
// @Description  Hard delete a summary by ID
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        id path int true "Summary ID"
// @Success      200 {object} util.APIResponse "Summary deleted"
// @Failure      400 {object} util.APIResponse "Invalid summary ID"
// @Failure      404 {object} util.APIResponse "Summary not found"
// @Router       /summaries/{id} [delete]
func DeleteSummary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	removed, err := repository.NewSummaryRepository(db).Delete(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	if !removed {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Summary not found"})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Summary deleted successfully"})
}
