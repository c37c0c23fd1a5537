package repository

import (
	"github.com/ariebrainware/voicenotes-api/model"
	"github.com/ariebrainware/voicenotes-api/util"
	"gorm.io/gorm"
)

// PatientRepository handles data access for patient records.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// CreatePatientInput carries the validated fields for a new patient.
type CreatePatientInput struct {
	FirstName           string
	LastName            string
	DateOfBirth         string
	MedicalRecordNumber string
}

// UpdatePatientInput carries a partial patient update. Nil fields are left untouched.
type UpdatePatientInput struct {
	FirstName           *string
	LastName            *string
	DateOfBirth         *string
	MedicalRecordNumber *string
}

// List returns all patients. Order is unspecified.
func (r *PatientRepository) List() ([]model.Patient, error) {
	var patients []model.Patient
	if err := r.db.Find(&patients).Error; err != nil {
		return nil, util.TranslateDBError(err, "Patient", "")
	}
	return patients, nil
}

// GetByID returns a patient by id or a tagged not-found error.
func (r *PatientRepository) GetByID(id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.First(&patient, id).Error; err != nil {
		return nil, util.TranslateDBError(err, "Patient", "")
	}
	return &patient, nil
}

// Create inserts a new patient and returns the fully populated row.
// A duplicate medical record number surfaces as a Conflict.
func (r *PatientRepository) Create(in CreatePatientInput) (*model.Patient, error) {
	patient := model.Patient{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		DateOfBirth:         in.DateOfBirth,
		MedicalRecordNumber: in.MedicalRecordNumber,
	}
	if err := r.db.Create(&patient).Error; err != nil {
		return nil, util.TranslateDBError(err, "Patient", "")
	}
	return &patient, nil
}

// Update applies only the provided fields and refreshes updated_at.
func (r *PatientRepository) Update(id uint, in UpdatePatientInput) (*model.Patient, error) {
	patient, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.DateOfBirth != nil {
		updates["date_of_birth"] = *in.DateOfBirth
	}
	if in.MedicalRecordNumber != nil {
		updates["medical_record_number"] = *in.MedicalRecordNumber
	}
	if len(updates) == 0 {
		return patient, nil
	}

	if err := r.db.Model(patient).Updates(updates).Error; err != nil {
		return nil, util.TranslateDBError(err, "Patient", "")
	}
	return r.GetByID(id)
}

// Delete removes a patient row. A missing row is a normal negative result,
// not an error.
func (r *PatientRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&model.Patient{}, id)
	if result.Error != nil {
		return false, util.TranslateDBError(result.Error, "Patient", "")
	}
	return result.RowsAffected > 0, nil
}
