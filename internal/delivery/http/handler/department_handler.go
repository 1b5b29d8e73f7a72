package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUsecase: departmentUsecase,
		validator:         validator,
	}
}

func (h *DepartmentHandler) ListDepartments(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.departmentUsecase.ListDepartments(ctx, limit)
}

func (h *DepartmentHandler) CreateDepartment(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateDepartmentRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	departmentID, err := h.departmentUsecase.CreateDepartment(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("department_id", departmentID), nil
}

func (h *DepartmentHandler) UpdateDepartment(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateDepartmentRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.departmentUsecase.UpdateDepartment(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *DepartmentHandler) DeleteDepartment(ctx context.Context, req *Request) (interface{}, error) {
	departmentID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.departmentUsecase.DeleteDepartment(ctx, departmentID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
