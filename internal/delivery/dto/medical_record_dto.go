package dto

import "time"

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID     int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID      int64   `json:"doctor_id" validate:"required,gt=0"`
	AppointmentID *int64  `json:"appointment_id" validate:"omitempty,gt=0"`
	DiagnosesID   *int64  `json:"diagnoses_id" validate:"omitempty,gt=0"`
	Notes         *string `json:"notes"`
}

type UpdateMedicalRecordRequest struct {
	RecordID int64 `json:"record_id" validate:"required,gt=0"`
	CreateMedicalRecordRequest
}

// Response DTOs

type MedicalRecordResponse struct {
	RecordID      int64     `json:"record_id"`
	PatientID     int64     `json:"patient_id"`
	DoctorID      int64     `json:"doctor_id"`
	AppointmentID *int64    `json:"appointment_id"`
	DiagnosesID   *int64    `json:"diagnoses_id"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	PatientName   string    `json:"patient_name"`
	DoctorName    string    `json:"doctor_name"`
	DiagnosisName *string   `json:"diagnosis_name"`
}
