package repository

import (
	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.AppointmentListItem, error) {
	appointments := []entity.AppointmentListItem{}
	query := db.Table("appointments a").
		Select(`a.appointment_id, a.patient_id, a.doctor_id, a.appointment_date, a.status,
			p.full_name AS patient_name, d.full_name AS doctor_name, s.name AS specialization`).
		Joins("JOIN patients p ON a.patient_id = p.patient_id").
		Joins("JOIN doctors d ON a.doctor_id = d.doctor_id").
		Joins("LEFT JOIN specializations s ON d.specialization_id = s.specialization_id")

	if filter.Status != "" {
		query = query.Where("a.status = ?", filter.Status)
	}

	err := query.Order("a.appointment_date DESC").Limit(filter.Limit).Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("appointment_id = ?", appointment.AppointmentID).
		Select("patient_id", "doctor_id", "appointment_date", "status").
		Updates(appointment)
	return result.RowsAffected, result.Error
}
