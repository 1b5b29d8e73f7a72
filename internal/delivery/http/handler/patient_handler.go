package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) ListPatients(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.patientUsecase.ListPatients(ctx, &dto.ListPatientsRequest{
		Search: req.Query.Get("search"),
		Limit:  limit,
	})
}

func (h *PatientHandler) CreatePatient(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreatePatientRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	patientID, err := h.patientUsecase.CreatePatient(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("patient_id", patientID), nil
}

func (h *PatientHandler) UpdatePatient(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdatePatientRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.patientUsecase.UpdatePatient(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *PatientHandler) DeletePatient(ctx context.Context, req *Request) (interface{}, error) {
	patientID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.patientUsecase.DeletePatient(ctx, patientID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
