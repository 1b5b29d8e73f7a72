package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) (int64, error)
}
