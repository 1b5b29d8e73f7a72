package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int64   `json:"patient_id" validate:"required,gt=0"`
	DoctorID        int64   `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string  `json:"appointment_date" validate:"required,timestamp"`
	Status          *string `json:"status" validate:"omitempty,max=50"`
}

type UpdateAppointmentRequest struct {
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
	CreateAppointmentRequest
}

type ListAppointmentsRequest struct {
	Status string
	Limit  int
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID   int64     `json:"appointment_id"`
	PatientID       int64     `json:"patient_id"`
	DoctorID        int64     `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	Specialization  *string   `json:"specialization"`
}
