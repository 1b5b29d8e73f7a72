package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindAll(db *gorm.DB, limit int) ([]entity.MedicalRecordListItem, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) (int64, error)
}
