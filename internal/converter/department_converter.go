package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func CreateDepartmentRequestToEntity(req *dto.CreateDepartmentRequest) *entity.Department {
	return &entity.Department{
		Name:        req.Name,
		Description: nullable(req.Description),
		DoctorID:    req.DoctorID,
	}
}

func UpdateDepartmentRequestToEntity(req *dto.UpdateDepartmentRequest) *entity.Department {
	department := CreateDepartmentRequestToEntity(&req.CreateDepartmentRequest)
	department.DepartmentID = req.DepartmentID
	return department
}

func DepartmentsToResponses(departments []entity.DepartmentListItem) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = dto.DepartmentResponse{
			DepartmentID: d.DepartmentID,
			Name:         d.Name,
			Description:  d.Description,
			DoctorID:     d.DoctorID,
			HeadDoctor:   d.HeadDoctor,
		}
	}
	return responses
}
