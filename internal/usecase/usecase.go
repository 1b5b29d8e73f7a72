package usecase

import (
	"context"

	"clinic-registry/internal/domain/entity"
	"clinic-registry/internal/domain/repository"
	"clinic-registry/internal/infrastructure/database"
	"clinic-registry/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// cascadeDelete removes root id and all of its dependents in one
// transaction and returns how many root rows were removed. Zero is not an
// error: deleting an absent row is a no-op.
func cascadeDelete(
	ctx context.Context,
	db database.Transactor,
	log *logrus.Logger,
	cascadeRepo repository.CascadeRepository,
	root entity.Resource,
	id int64,
) (int64, error) {
	steps := cascadeRepo.Plan(root, id)

	var removed int64
	err := db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		removed, err = cascadeRepo.Execute(tx, steps)
		return err
	})
	if err != nil {
		log.Warnf("Failed to delete %s %d: %+v", root, id, err)
		return 0, apperror.FromStore(err)
	}

	return removed, nil
}
