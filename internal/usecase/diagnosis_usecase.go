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

type DiagnosisUsecase interface {
	ListDiagnoses(ctx context.Context, limit int) ([]dto.DiagnosisResponse, error)
	CreateDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (int64, error)
	UpdateDiagnosis(ctx context.Context, req *dto.UpdateDiagnosisRequest) error
	DeleteDiagnosis(ctx context.Context, diagnosisID int64) error
}

type diagnosisUsecase struct {
	db            database.Transactor
	log           *logrus.Logger
	diagnosisRepo repository.DiagnosisRepository
	cascadeRepo   repository.CascadeRepository
	auditService  service.AuditService
}

func NewDiagnosisUsecase(
	db database.Transactor,
	log *logrus.Logger,
	diagnosisRepo repository.DiagnosisRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) DiagnosisUsecase {
	return &diagnosisUsecase{
		db:            db,
		log:           log,
		diagnosisRepo: diagnosisRepo,
		cascadeRepo:   cascadeRepo,
		auditService:  auditService,
	}
}

func (u *diagnosisUsecase) ListDiagnoses(ctx context.Context, limit int) ([]dto.DiagnosisResponse, error) {
	diagnoses, err := u.diagnosisRepo.FindAll(u.db.Conn(ctx), normalizeLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to find diagnoses: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.DiagnosesToResponses(diagnoses), nil
}

func (u *diagnosisUsecase) CreateDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (int64, error) {
	diagnosis := converter.CreateDiagnosisRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.diagnosisRepo.Create(tx, diagnosis)
	})
	if err != nil {
		u.log.Warnf("Failed to create diagnosis: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "diagnosis", diagnosis.DiagnosesID, req)

	return diagnosis.DiagnosesID, nil
}

func (u *diagnosisUsecase) UpdateDiagnosis(ctx context.Context, req *dto.UpdateDiagnosisRequest) error {
	diagnosis := converter.UpdateDiagnosisRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.diagnosisRepo.Update(tx, diagnosis)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update diagnosis: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "diagnosis", diagnosis.DiagnosesID, req)

	return nil
}

func (u *diagnosisUsecase) DeleteDiagnosis(ctx context.Context, diagnosisID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceDiagnosis, diagnosisID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "diagnosis", diagnosisID, removed)

	return nil
}
