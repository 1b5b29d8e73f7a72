package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FullName     string  `json:"full_name" validate:"required,max=255"`
	BirthDate    *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender       *string `json:"gender" validate:"omitempty,max=20"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	PassportInfo *string `json:"passport_info" validate:"omitempty,max=255"`
}

type UpdatePatientRequest struct {
	PatientID int64 `json:"patient_id" validate:"required,gt=0"`
	CreatePatientRequest
}

type ListPatientsRequest struct {
	Search string
	Limit  int
}

// Response DTOs

type PatientResponse struct {
	PatientID    int64     `json:"patient_id"`
	FullName     string    `json:"full_name"`
	BirthDate    *string   `json:"birth_date"`
	Gender       *string   `json:"gender"`
	Phone        *string   `json:"phone"`
	PassportInfo *string   `json:"passport_info"`
	CreatedAt    time.Time `json:"created_at"`
}
