package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type statsRepository struct{}

func NewStatsRepository() domainRepo.StatsRepository {
	return &statsRepository{}
}

func (r *statsRepository) CountPatients(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

// CountTodayAppointments counts appointments on the database's CURRENT_DATE.
func (r *statsRepository) CountTodayAppointments(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("DATE(appointment_date) = CURRENT_DATE").
		Count(&total).Error
	return total, err
}

func (r *statsRepository) CountDoctors(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *statsRepository) CountDepartments(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Department{}).Count(&total).Error
	return total, err
}
