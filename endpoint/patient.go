package endpoint

import (
	"github.com/ariebrainware/voicenotes-api/repository"
	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
)

type createPatientRequest struct {
	FirstName           string `json:"firstName" binding:"required,max=100" example:"John"`
	LastName            string `json:"lastName" binding:"required,max=100" example:"Doe"`
	DateOfBirth         string `json:"dateOfBirth" binding:"required,datetime=2006-01-02" example:"1990-01-01"`
	MedicalRecordNumber string `json:"medicalRecordNumber" binding:"required,max=50" example:"MRN12345"`
}

type updatePatientRequest struct {
	FirstName           *string `json:"firstName" binding:"omitempty,min=1,max=100" example:"John"`
	LastName            *string `json:"lastName" binding:"omitempty,min=1,max=100" example:"Doe"`
	DateOfBirth         *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" example:"1990-01-01"`
	MedicalRecordNumber *string `json:"medicalRecordNumber" binding:"omitempty,min=1,max=50" example:"MRN12345"`
}

func (r updatePatientRequest) empty() bool {
	return r.FirstName == nil && r.LastName == nil && r.DateOfBirth == nil && r.MedicalRecordNumber == nil
}

// ListPatients godoc
// @Summary      List all patients
// @Description  Get all patient records
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Success      200 {object} util.APIResponse{data=[]model.Patient} "Patients retrieved"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patients [get]
func ListPatients(c *gin.Context) {
	db, ok := getDB(c)
	if !ok {
		return
	}

	patients, err := repository.NewPatientRepository(db).List()
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessList(c, patients, len(patients))
}

// GetPatientInfo godoc
// @Summary      Get patient information
// @Description  Get detailed information about a specific patient
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        patientId path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      400 {object} util.APIResponse "Invalid patient ID"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patients/{patientId} [get]
func GetPatientInfo(c *gin.Context) {
	id, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	patient, err := repository.NewPatientRepository(db).GetByID(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Data: patient})
}

// CreatePatient godoc
// @Summary      Create a new patient
// @Description  Register a new patient record
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        request body createPatientRequest true "Patient information"
// @Success      201 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      409 {object} util.APIResponse "Medical record number already exists"
// @Router       /patients [post]
func CreatePatient(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	patient, err := repository.NewPatientRepository(db).Create(repository.CreatePatientInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DateOfBirth:         req.DateOfBirth,
		MedicalRecordNumber: req.MedicalRecordNumber,
	})
	if err != nil {
		if util.IsConflict(err) {
			util.CallConflict(c, util.APIErrorParams{Msg: "Medical record number already exists", Err: err})
			return
		}
		util.RespondError(c, err)
		return
	}

	util.CallCreated(c, util.APISuccessParams{Msg: "Patient created", Data: patient})
}

// UpdatePatient godoc
// @Summary      Update patient information
// @Description  Update an existing patient's information
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        patientId path int true "Patient ID"
// @Param        request body updatePatientRequest true "Updated patient information"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      400 {object} util.APIResponse "Validation failed"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      409 {object} util.APIResponse "Medical record number already exists"
// @Router       /patients/{patientId} [put]
func UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}

	var req updatePatientRequest
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

	patient, err := repository.NewPatientRepository(db).Update(id, repository.UpdatePatientInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		DateOfBirth:         req.DateOfBirth,
		MedicalRecordNumber: req.MedicalRecordNumber,
	})
	if err != nil {
		if util.IsConflict(err) {
			util.CallConflict(c, util.APIErrorParams{Msg: "Medical record number already exists", Err: err})
			return
		}
		util.RespondError(c, err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient updated", Data: patient})
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Hard delete a patient by ID. Notes are not cascade-deleted.
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Security     APIKeyAuth
// @Param        patientId path int true "Patient ID"
// @Success      200 {object} util.APIResponse "Patient deleted"
// @Failure      400 {object} util.APIResponse "Invalid patient ID"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patients/{patientId} [delete]
func DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "patientId")
	if !ok {
		return
	}
	db, ok := getDB(c)
	if !ok {
		return
	}

	removed, err := repository.NewPatientRepository(db).Delete(id)
	if err != nil {
		util.RespondError(c, err)
		return
	}
	if !removed {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found"})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Patient deleted successfully"})
}
