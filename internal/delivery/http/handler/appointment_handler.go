package handler

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
	"clinic-registry/pkg/response"
	"clinic-registry/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) ListAppointments(ctx context.Context, req *Request) (interface{}, error) {
	limit, err := req.Limit()
	if err != nil {
		return nil, err
	}

	return h.appointmentUsecase.ListAppointments(ctx, &dto.ListAppointmentsRequest{
		Status: req.Query.Get("status"),
		Limit:  limit,
	})
}

func (h *AppointmentHandler) CreateAppointment(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.CreateAppointmentRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	appointmentID, err := h.appointmentUsecase.CreateAppointment(ctx, &body)
	if err != nil {
		return nil, err
	}

	return response.Created("appointment_id", appointmentID), nil
}

func (h *AppointmentHandler) UpdateAppointment(ctx context.Context, req *Request) (interface{}, error) {
	var body dto.UpdateAppointmentRequest
	if err := req.Bind(&body); err != nil {
		return nil, err
	}

	if err := h.validator.Validate(&body); err != nil {
		return nil, err
	}

	if err := h.appointmentUsecase.UpdateAppointment(ctx, &body); err != nil {
		return nil, err
	}

	return response.Success(), nil
}

func (h *AppointmentHandler) DeleteAppointment(ctx context.Context, req *Request) (interface{}, error) {
	appointmentID, err := req.ID()
	if err != nil {
		return nil, err
	}

	if err := h.appointmentUsecase.DeleteAppointment(ctx, appointmentID); err != nil {
		return nil, err
	}

	return response.Success(), nil
}
