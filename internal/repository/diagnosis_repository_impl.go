package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type diagnosisRepository struct{}

func NewDiagnosisRepository() domainRepo.DiagnosisRepository {
	return &diagnosisRepository{}
}

func (r *diagnosisRepository) Create(db *gorm.DB, diagnosis *entity.Diagnosis) error {
	return db.Create(diagnosis).Error
}

func (r *diagnosisRepository) FindAll(db *gorm.DB, limit int) ([]entity.Diagnosis, error) {
	diagnoses := []entity.Diagnosis{}
	if err := db.Order("name").Limit(limit).Find(&diagnoses).Error; err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (r *diagnosisRepository) Update(db *gorm.DB, diagnosis *entity.Diagnosis) (int64, error) {
	result := db.Model(&entity.Diagnosis{}).
		Where("diagnoses_id = ?", diagnosis.DiagnosesID).
		Select("name", "description", "notes").
		Updates(diagnosis)
	return result.RowsAffected, result.Error
}
