package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func CreateServiceRequestToEntity(req *dto.CreateServiceRequest) *entity.Service {
	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}

	return &entity.Service{
		Name:         req.Name,
		Price:        price,
		Descriptions: nullable(req.Descriptions),
	}
}

func UpdateServiceRequestToEntity(req *dto.UpdateServiceRequest) *entity.Service {
	service := CreateServiceRequestToEntity(&req.CreateServiceRequest)
	service.ServiceID = req.ServiceID
	return service
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, s := range services {
		responses[i] = dto.ServiceResponse{
			ServiceID:    s.ServiceID,
			Name:         s.Name,
			Price:        s.Price,
			Descriptions: s.Descriptions,
		}
	}
	return responses
}
