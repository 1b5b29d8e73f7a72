package dto

// Request DTOs

type CreateDiagnosisRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}

type UpdateDiagnosisRequest struct {
	DiagnosesID int64 `json:"diagnoses_id" validate:"required,gt=0"`
	CreateDiagnosisRequest
}

// Response DTOs

type DiagnosisResponse struct {
	DiagnosesID int64   `json:"diagnoses_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
}
