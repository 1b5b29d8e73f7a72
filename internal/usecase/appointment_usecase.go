package usecase

import (
	"context"

	"clinic-registry/internal/converter"
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/domain/repository"
	"clinic-registry/internal/infrastructure/database"
	"clinic-registry/internal/service"
	"clinic-registry/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (int64, error)
	UpdateAppointment(ctx context.Context, req *dto.UpdateAppointmentRequest) error
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}

type appointmentUsecase struct {
	db              database.Transactor
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	cascadeRepo     repository.CascadeRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db database.Transactor,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		cascadeRepo:     cascadeRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.Conn(ctx), entity.AppointmentFilter{
		Status: req.Status,
		Limit:  normalizeLimit(req.Limit),
	})
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (int64, error) {
	appointment := converter.CreateAppointmentRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.appointmentRepo.Create(tx, appointment)
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "appointment", appointment.AppointmentID, req)

	return appointment.AppointmentID, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, req *dto.UpdateAppointmentRequest) error {
	appointment := converter.UpdateAppointmentRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.appointmentRepo.Update(tx, appointment)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "appointment", appointment.AppointmentID, req)

	return nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceAppointment, appointmentID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "appointment", appointmentID, removed)

	return nil
}
