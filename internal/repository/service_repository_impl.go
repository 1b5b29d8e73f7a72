package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) Create(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceRepository) FindAll(db *gorm.DB, limit int) ([]entity.Service, error) {
	services := []entity.Service{}
	if err := db.Order("name").Limit(limit).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) Update(db *gorm.DB, service *entity.Service) (int64, error) {
	result := db.Model(&entity.Service{}).
		Where("service_id = ?", service.ServiceID).
		Select("name", "price", "descriptions").
		Updates(service)
	return result.RowsAffected, result.Error
}
