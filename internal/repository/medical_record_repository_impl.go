package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return db.Create(record).Error
}

func (r *medicalRecordRepository) FindAll(db *gorm.DB, limit int) ([]entity.MedicalRecordListItem, error) {
	records := []entity.MedicalRecordListItem{}
	err := db.Table("medicalrecords mr").
		Select(`mr.record_id, mr.patient_id, mr.doctor_id, mr.appointment_id, mr.diagnoses_id, mr.notes, mr.created_at,
			p.full_name AS patient_name, d.full_name AS doctor_name, dg.name AS diagnosis_name`).
		Joins("JOIN patients p ON mr.patient_id = p.patient_id").
		Joins("JOIN doctors d ON mr.doctor_id = d.doctor_id").
		Joins("LEFT JOIN diagnoses dg ON mr.diagnoses_id = dg.diagnoses_id").
		Order("mr.created_at DESC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) (int64, error) {
	result := db.Model(&entity.MedicalRecord{}).
		Where("record_id = ?", record.RecordID).
		Select("patient_id", "doctor_id", "appointment_id", "diagnoses_id", "notes").
		Updates(record)
	return result.RowsAffected, result.Error
}
