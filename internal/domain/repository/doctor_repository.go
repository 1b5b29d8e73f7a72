package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB, limit int) ([]entity.DoctorListItem, error)
	Update(db *gorm.DB, doctor *entity.Doctor) (int64, error)
}
