package usecase

import (
	"context"

	"clinic-registry/internal/converter"
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/domain/repository"
	"clinic-registry/internal/infrastructure/database"
	"clinic-registry/pkg/apperror"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsUsecase struct {
	db        database.Transactor
	log       *logrus.Logger
	statsRepo repository.StatsRepository
}

func NewStatsUsecase(db database.Transactor, log *logrus.Logger, statsRepo repository.StatsRepository) StatsUsecase {
	return &statsUsecase{
		db:        db,
		log:       log,
		statsRepo: statsRepo,
	}
}

// GetStats runs the four counts concurrently; the first failure cancels the
// others and fails the call.
func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	var stats entity.Stats
	g, gctx := errgroup.WithContext(ctx)

	counts := []struct {
		dst   *int64
		count func(db *gorm.DB) (int64, error)
	}{
		{&stats.Patients, u.statsRepo.CountPatients},
		{&stats.TodayAppointments, u.statsRepo.CountTodayAppointments},
		{&stats.Doctors, u.statsRepo.CountDoctors},
		{&stats.Departments, u.statsRepo.CountDepartments},
	}

	for _, c := range counts {
		g.Go(func() error {
			total, err := c.count(u.db.Conn(gctx))
			if err != nil {
				return err
			}
			*c.dst = total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to count stats: %+v", err)
		return nil, apperror.FromStore(err)
	}

	return converter.StatsToResponse(&stats), nil
}
