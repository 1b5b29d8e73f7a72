package usecase

import (
	"context"

	"clinic-registry/internal/converter"
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/repository"
	"clinic-registry/internal/infrastructure/database"
	"clinic-registry/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// SpecializationUsecase is read-only: specializations are reference data
// maintained outside this API.
type SpecializationUsecase interface {
	ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error)
}

type specializationUsecase struct {
	db                 database.Transactor
	log                *logrus.Logger
	specializationRepo repository.SpecializationRepository
}

func NewSpecializationUsecase(
	db database.Transactor,
	log *logrus.Logger,
	specializationRepo repository.SpecializationRepository,
) SpecializationUsecase {
	return &specializationUsecase{
		db:                 db,
		log:                log,
		specializationRepo: specializationRepo,
	}
}

func (u *specializationUsecase) ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	specializations, err := u.specializationRepo.FindAll(u.db.Conn(ctx))
	if err != nil {
		u.log.Warnf("Failed to find specializations: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.SpecializationsToResponses(specializations), nil
}
