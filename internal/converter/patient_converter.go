package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

// CreatePatientRequestToEntity converts a create request into a new patient
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	return &entity.Patient{
		FullName:     req.FullName,
		BirthDate:    parseDate(req.BirthDate),
		Gender:       nullable(req.Gender),
		Phone:        nullable(req.Phone),
		PassportInfo: nullable(req.PassportInfo),
	}
}

// UpdatePatientRequestToEntity converts an update request, keeping the identifier
func UpdatePatientRequestToEntity(req *dto.UpdatePatientRequest) *entity.Patient {
	patient := CreatePatientRequestToEntity(&req.CreatePatientRequest)
	patient.PatientID = req.PatientID
	return patient
}

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		PatientID:    patient.PatientID,
		FullName:     patient.FullName,
		BirthDate:    formatDate(patient.BirthDate),
		Gender:       patient.Gender,
		Phone:        patient.Phone,
		PassportInfo: patient.PassportInfo,
		CreatedAt:    patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
