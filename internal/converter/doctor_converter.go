package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		FullName:         req.FullName,
		Patronym:         nullable(req.Patronym),
		SpecializationID: req.SpecializationID,
		Phone:            nullable(req.Phone),
		OfficeNumber:     nullable(req.OfficeNumber),
	}
}

func UpdateDoctorRequestToEntity(req *dto.UpdateDoctorRequest) *entity.Doctor {
	doctor := CreateDoctorRequestToEntity(&req.CreateDoctorRequest)
	doctor.DoctorID = req.DoctorID
	return doctor
}

// DoctorsToResponses converts joined doctor rows to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.DoctorListItem) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, d := range doctors {
		responses[i] = dto.DoctorResponse{
			DoctorID:         d.DoctorID,
			FullName:         d.FullName,
			Patronym:         d.Patronym,
			SpecializationID: d.SpecializationID,
			Phone:            d.Phone,
			OfficeNumber:     d.OfficeNumber,
			Specialization:   d.Specialization,
		}
	}
	return responses
}
