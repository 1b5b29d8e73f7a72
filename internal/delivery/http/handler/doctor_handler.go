package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.doctorUsecase.ListDoctors(ctx, limit)
}

func (h *DoctorHandler) CreateDoctor(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateDoctorRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	doctorID, err := h.doctorUsecase.CreateDoctor(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("doctor_id", doctorID), nil
}

func (h *DoctorHandler) UpdateDoctor(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateDoctorRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.doctorUsecase.UpdateDoctor(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *DoctorHandler) DeleteDoctor(ctx context.Context, req *Request) (interface{}, error) {
	doctorID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.doctorUsecase.DeleteDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
