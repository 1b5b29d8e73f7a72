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

type ServiceUsecase interface {
	ListServices(ctx context.Context, limit int) ([]dto.ServiceResponse, error)
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (int64, error)
	UpdateService(ctx context.Context, req *dto.UpdateServiceRequest) error
	DeleteService(ctx context.Context, serviceID int64) error
}

type serviceUsecase struct {
	db           database.Transactor
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	cascadeRepo  repository.CascadeRepository
	auditService service.AuditService
}

func NewServiceUsecase(
	db database.Transactor,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		cascadeRepo:  cascadeRepo,
		auditService: auditService,
	}
}

func (u *serviceUsecase) ListServices(ctx context.Context, limit int) ([]dto.ServiceResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.Conn(ctx), normalizeLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.ServicesToResponses(services), nil
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (int64, error) {
	svc := converter.CreateServiceRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.serviceRepo.Create(tx, svc)
	})
	if err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "service", svc.ServiceID, req)

	return svc.ServiceID, nil
}

func (u *serviceUsecase) UpdateService(ctx context.Context, req *dto.UpdateServiceRequest) error {
	svc := converter.UpdateServiceRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.serviceRepo.Update(tx, svc)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "service", svc.ServiceID, req)

	return nil
}

func (u *serviceUsecase) DeleteService(ctx context.Context, serviceID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceService, serviceID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "service", serviceID, removed)

	return nil
}
