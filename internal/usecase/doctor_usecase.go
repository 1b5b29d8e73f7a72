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

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error)
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (int64, error)
	UpdateDoctor(ctx context.Context, req *dto.UpdateDoctorRequest) error
	DeleteDoctor(ctx context.Context, doctorID int64) error
}

type doctorUsecase struct {
	db           database.Transactor
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	cascadeRepo  repository.CascadeRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db database.Transactor,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		cascadeRepo:  cascadeRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.Conn(ctx), normalizeLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (int64, error) {
	doctor := converter.CreateDoctorRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.doctorRepo.Create(tx, doctor)
	})
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "doctor", doctor.DoctorID, req)

	return doctor.DoctorID, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, req *dto.UpdateDoctorRequest) error {
	doctor := converter.UpdateDoctorRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.doctorRepo.Update(tx, doctor)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "doctor", doctor.DoctorID, req)

	return nil
}

func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceDoctor, doctorID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "doctor", doctorID, removed)

	return nil
}
