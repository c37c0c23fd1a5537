package model

import "time"

// Patient represents a patient entity
// @Description Patient information
type Patient struct {
	ID                  uint      `json:"id" gorm:"primaryKey" example:"1"`
	FirstName           string    `json:"firstName" gorm:"type:varchar(100);not null" example:"John"`
	LastName            string    `json:"lastName" gorm:"type:varchar(100);not null" example:"Doe"`
	DateOfBirth         string    `json:"dateOfBirth" gorm:"type:varchar(10);not null" example:"1990-01-01"`
	MedicalRecordNumber string    `json:"medicalRecordNumber" gorm:"type:varchar(50);not null;uniqueIndex" example:"MRN12345"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
