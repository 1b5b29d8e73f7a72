package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	specializations := []entity.Specialization{}
	if err := db.Order("name").Find(&specializations).Error; err != nil {
		return nil, err
	}
	return specializations, nil
}
