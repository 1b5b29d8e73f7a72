package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type DiagnosisHandler struct {
	diagnosisUsecase usecase.DiagnosisUsecase
	validator        *validator.CustomValidator
}

func NewDiagnosisHandler(diagnosisUsecase usecase.DiagnosisUsecase, validator *validator.CustomValidator) *DiagnosisHandler {
	return &DiagnosisHandler{
		diagnosisUsecase: diagnosisUsecase,
		validator:        validator,
	}
}

func (h *DiagnosisHandler) ListDiagnoses(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.diagnosisUsecase.ListDiagnoses(ctx, limit)
}

func (h *DiagnosisHandler) CreateDiagnosis(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateDiagnosisRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	diagnosisID, err := h.diagnosisUsecase.CreateDiagnosis(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("diagnoses_id", diagnosisID), nil
}

func (h *DiagnosisHandler) UpdateDiagnosis(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateDiagnosisRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.diagnosisUsecase.UpdateDiagnosis(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *DiagnosisHandler) DeleteDiagnosis(ctx context.Context, req *Request) (interface{}, error) {
	diagnosisID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.diagnosisUsecase.DeleteDiagnosis(ctx, diagnosisID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
