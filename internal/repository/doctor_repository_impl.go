package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB, limit int) ([]entity.DoctorListItem, error) {
	doctors := []entity.DoctorListItem{}
	err := db.Table("doctors d").
		Select("d.doctor_id, d.full_name, d.patronym, d.specialization_id, d.phone, d.office_number, s.name AS specialization").
		Joins("LEFT JOIN specializations s ON d.specialization_id = s.specialization_id").
		Order("d.full_name").
		Limit(limit).
		Scan(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	result := db.Model(&entity.Doctor{}).
		Where("doctor_id = ?", doctor.DoctorID).
		Select("full_name", "patronym", "specialization_id", "phone", "office_number").
		Updates(doctor)
	return result.RowsAffected, result.Error
}
