package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindAll(db *gorm.DB, limit int) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) (int64, error)
}
