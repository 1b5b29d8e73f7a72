package handler

import (
	"context"

	"clinic-registry/internal/usecase"
)

type SpecializationHandler struct {
	specializationUsecase usecase.SpecializationUsecase
}

func NewSpecializationHandler(specializationUsecase usecase.SpecializationUsecase) *SpecializationHandler {
	return &SpecializationHandler{specializationUsecase: specializationUsecase}
}

func (h *SpecializationHandler) ListSpecializations(ctx context.Context, req *Request) (interface{}, error) {
	return h.specializationUsecase.ListSpecializations(ctx)
}
