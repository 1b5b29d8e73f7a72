package dto

// Request DTOs

type CreateDoctorRequest struct {
	FullName         string  `json:"full_name" validate:"required,max=255"`
	Patronym         *string `json:"patronym" validate:"omitempty,max=255"`
	SpecializationID *int64  `json:"specialization_id" validate:"omitempty,gt=0"`
	Phone            *string `json:"phone" validate:"omitempty,max=50"`
	OfficeNumber     *string `json:"office_number" validate:"omitempty,max=20"`
}

type UpdateDoctorRequest struct {
	DoctorID int64 `json:"doctor_id" validate:"required,gt=0"`
	CreateDoctorRequest
}

// Response DTOs

type DoctorResponse struct {
	DoctorID         int64   `json:"doctor_id"`
	FullName         string  `json:"full_name"`
	Patronym         *string `json:"patronym"`
	SpecializationID *int64  `json:"specialization_id"`
	Phone            *string `json:"phone"`
	OfficeNumber     *string `json:"office_number"`
	Specialization   *string `json:"specialization"`
}
