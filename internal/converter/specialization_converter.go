package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func SpecializationsToResponses(specializations []entity.Specialization) []dto.SpecializationResponse {
	responses := make([]dto.SpecializationResponse, len(specializations))
	for i, s := range specializations {
		responses[i] = dto.SpecializationResponse{
			SpecializationID: s.SpecializationID,
			Name:             s.Name,
			Description:      s.Description,
		}
	}
	return responses
}
