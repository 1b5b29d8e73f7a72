package repository

import "gorm.io/gorm"

type StatsRepository interface {
	CountPatients(db *gorm.DB) (int64, error)
	CountTodayAppointments(db *gorm.DB) (int64, error)
	CountDoctors(db *gorm.DB) (int64, error)
	CountDepartments(db *gorm.DB) (int64, error)
}
