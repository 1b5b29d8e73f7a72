package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type DiagnosisRepository interface {
	Create(db *gorm.DB, diagnosis *entity.Diagnosis) error
	FindAll(db *gorm.DB, limit int) ([]entity.Diagnosis, error)
	Update(db *gorm.DB, diagnosis *entity.Diagnosis) (int64, error)
}
