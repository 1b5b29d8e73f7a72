package repository

import (
	"clinic-registry/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.AppointmentListItem, error)
	Update(db *gorm.DB, appointment *entity.Appointment) (int64, error)
}
