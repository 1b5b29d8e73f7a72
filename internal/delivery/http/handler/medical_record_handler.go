package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) ListMedicalRecords(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.recordUsecase.ListMedicalRecords(ctx, limit)
}

func (h *MedicalRecordHandler) CreateMedicalRecord(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateMedicalRecordRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	recordID, err := h.recordUsecase.CreateMedicalRecord(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("record_id", recordID), nil
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateMedicalRecordRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.recordUsecase.UpdateMedicalRecord(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(ctx context.Context, req *Request) (interface{}, error) {
	recordID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.recordUsecase.DeleteMedicalRecord(ctx, recordID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
