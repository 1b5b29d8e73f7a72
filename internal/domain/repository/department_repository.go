package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindAll(db *gorm.DB, limit int) ([]entity.DepartmentListItem, error)
	Update(db *gorm.DB, department *entity.Department) (int64, error)
}
