package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ServiceHandler) ListServices(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.serviceUsecase.ListServices(ctx, limit)
}

func (h *ServiceHandler) CreateService(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateServiceRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	serviceID, err := h.serviceUsecase.CreateService(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("service_id", serviceID), nil
}

func (h *ServiceHandler) UpdateService(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateServiceRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.serviceUsecase.UpdateService(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *ServiceHandler) DeleteService(ctx context.Context, req *Request) (interface{}, error) {
	serviceID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.serviceUsecase.DeleteService(ctx, serviceID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
