package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	query := db.Model(&entity.Patient{})

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("full_name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}

	err := query.Order("created_at DESC").Limit(filter.Limit).Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// Update overwrites every editable column, including ones the caller left
// empty; patient_id and created_at are never touched.
func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	result := db.Model(&entity.Patient{}).
		Where("patient_id = ?", patient.PatientID).
		Select("full_name", "birth_date", "gender", "phone", "passport_info").
		Updates(patient)
	return result.RowsAffected, result.Error
}
