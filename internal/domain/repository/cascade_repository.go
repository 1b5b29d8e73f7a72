package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

// CascadeRepository removes a root row together with every row that
// references it, children first.
type CascadeRepository interface {
	Plan(root entity.Resource, id int64) []entity.CascadeStep
	// Execute runs steps in order and returns the number of rows removed by
	// the last step.
	Execute(db *gorm.DB, steps []entity.CascadeStep) (int64, error)
}
