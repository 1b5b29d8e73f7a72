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

type PatientUsecase interface {
	ListPatients(ctx context.Context, req *dto.ListPatientsRequest) ([]dto.PatientResponse, error)
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (int64, error)
	UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) error
	DeletePatient(ctx context.Context, patientID int64) error
}

type patientUsecase struct {
	db           database.Transactor
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	cascadeRepo  repository.CascadeRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db database.Transactor,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	cascadeRepo repository.CascadeRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		cascadeRepo:  cascadeRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, req *dto.ListPatientsRequest) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.Conn(ctx), entity.PatientFilter{
		Search: req.Search,
		Limit:  normalizeLimit(req.Limit),
	})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (int64, error) {
	patient := converter.CreatePatientRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.patientRepo.Create(tx, patient)
	})
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return 0, apperror.FromStore(err)
	}

	u.auditService.LogCreate(ctx, "patient", patient.PatientID, converter.PatientToResponse(patient))

	return patient.PatientID, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) error {
	patient := converter.UpdatePatientRequestToEntity(req)

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		_, err := u.patientRepo.Update(tx, patient)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return apperror.FromStore(err)
	}

	u.auditService.LogUpdate(ctx, "patient", patient.PatientID, converter.PatientToResponse(patient))

	return nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	removed, err := cascadeDelete(ctx, u.db, u.log, u.cascadeRepo, entity.ResourcePatient, patientID)
	if err != nil {
		return err
	}

	u.auditService.LogDelete(ctx, "patient", patientID, removed)

	return nil
}
