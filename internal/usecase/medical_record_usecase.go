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

type MedicalRecordUsecase interface {
	ListMedicalRecords(ctx context.Context, limit int) ([]dto.MedicalRecordResponse, error)
	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (int64, error)
	UpdateMedicalRecord(ctx context.Context, req *dto.UpdateMedicalRecordRequest) error
	DeleteMedicalRecord(ctx context.Context, recordID int64) error
}

type recordUsecase struct {
	db           database.Transactor
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	cascadeRepo  repository.CascadeRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db database.Transactor,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &recordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		cascadeRepo:  cascadeRepo,
		auditService: auditService,
	}
}

func (u *recordUsecase) ListMedicalRecords(ctx context.Context, limit int) ([]dto.MedicalRecordResponse, error) {
	records, err := u.recordRepo.FindAll(u.db.Conn(ctx), normalizeLimit(limit))
	if err != nil {
		u.log.Warnf("Failed to find medical records: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.MedicalRecordsToResponses(records), nil
}

func (u *recordUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (int64, error) {
	record := converter.CreateMedicalRecordRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.recordRepo.Create(tx, record)
	})
	if err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "medical_record", record.RecordID, req)

	return record.RecordID, nil
}

func (u *recordUsecase) UpdateMedicalRecord(ctx context.Context, req *dto.UpdateMedicalRecordRequest) error {
	record := converter.UpdateMedicalRecordRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.recordRepo.Update(tx, record)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "medical_record", record.RecordID, req)

	return nil
}

func (u *recordUsecase) DeleteMedicalRecord(ctx context.Context, recordID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourceMedicalRecord, recordID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "medical_record", recordID, removed)

	return nil
}
