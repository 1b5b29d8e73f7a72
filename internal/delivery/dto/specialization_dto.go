package dto

type SpecializationResponse struct {
	SpecializationID int64   `json:"specialization_id"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
}
