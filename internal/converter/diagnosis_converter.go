package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func CreateDiagnosisRequestToEntity(req *dto.CreateDiagnosisRequest) *entity.Diagnosis {
	return &entity.Diagnosis{
		Name:        req.Name,
		Description: nullable(req.Description),
		Notes:       nullable(req.Notes),
	}
}

func UpdateDiagnosisRequestToEntity(req *dto.UpdateDiagnosisRequest) *entity.Diagnosis {
	diagnosis := CreateDiagnosisRequestToEntity(&req.CreateDiagnosisRequest)
	diagnosis.DiagnosesID = req.DiagnosesID
	return diagnosis
}

func DiagnosesToResponses(diagnoses []entity.Diagnosis) []dto.DiagnosisResponse {
	responses := make([]dto.DiagnosisResponse, len(diagnoses))
	for i, d := range diagnoses {
		responses[i] = dto.DiagnosisResponse{
			DiagnosesID: d.DiagnosesID,
			Name:        d.Name,
			Description: d.Description,
			Notes:       d.Notes,
		}
	}
	return responses
}
