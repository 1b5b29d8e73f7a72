package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecializationRepository interface {
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
}
