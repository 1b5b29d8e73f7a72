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

type DepartmentUsecase interface {
	ListDepartments(ctx context.Context, limit int) ([]dto.DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (int64, error)
	UpdateDepartment(ctx context.Context, req *dto.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, departmentID int64) error
}

type departmentUsecase struct {
	db             database.Transactor
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	cascadeRepo    repository.CascadeRepository
	auditService   service.AuditService
}

func NewDepartmentUsecase(
	db database.Transactor,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		cascadeRepo:    cascadeRepo,
		auditService:   auditService,
	}
}

func (u *departmentUsecase) ListDepartments(ctx context.Context, limit int) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.Conn(ctx), normalizeLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to find departments: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.DepartmentsToResponses(departments), nil
}

func (u *departmentUsecase) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (int64, error) {
	department := converter.CreateDepartmentRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.departmentRepo.Create(tx, department)
	})
	if err != nil {
		u.log.Warnf("Failed to create department: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "department", department.DepartmentID, req)

	return department.DepartmentID, nil
}

func (u *departmentUsecase) UpdateDepartment(ctx context.Context, req *dto.UpdateDepartmentRequest) error {
	department := converter.UpdateDepartmentRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.departmentRepo.Update(tx, department)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update department: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "department", department.DepartmentID, req)

	return nil
}

func (u *departmentUsecase) DeleteDepartment(ctx context.Context, departmentID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceDepartment, departmentID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "department", departmentID, removed)

	return nil
}
