package dto

// Request DTOs

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	DoctorID    *int64  `json:"doctor_id" validate:"omitempty,gt=0"`
}

type UpdateDepartmentRequest struct {
	DepartmentID int64 `json:"department_id" validate:"required,gt=0"`
	CreateDepartmentRequest
}

// Response DTOs

type DepartmentResponse struct {
	DepartmentID int64   `json:"department_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DoctorID     *int64  `json:"doctor_id"`
	HeadDoctor   *string `json:"head_doctor"`
}
