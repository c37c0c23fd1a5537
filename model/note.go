package model

import "time"

// Note represents voice note metadata recorded for a patient
// @Description Voice note metadata
type Note struct {
	ID            uint      `json:"id" gorm:"primaryKey" example:"1"`
	PatientID     uint      `json:"patientId" gorm:"index;not null" example:"1"`
	Patient       *Patient  `json:"-" gorm:"foreignKey:PatientID"`
	DoctorID      uint      `json:"doctorId" gorm:"not null" example:"42"`
	RecordedAt    time.Time `json:"recordedAt" gorm:"not null"`
	Duration      int       `json:"duration" gorm:"not null" example:"180"`
	Transcription *string   `json:"transcription,omitempty" gorm:"type:text"`
	FileSize      *int64    `json:"fileSize,omitempty" example:"2048000"`
	FileFormat    *string   `json:"fileFormat,omitempty" gorm:"type:varchar(50)" example:"mp3"`
	CreatedAt     time.Time `json:"createdAt"`
}
