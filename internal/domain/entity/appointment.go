package entity

import "time"

const AppointmentStatusScheduled = "scheduled"

type Appointment struct {
	AppointmentID   int64     `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id"`
	PatientID       int64     `gorm:"column:patient_id;not null" json:"patient_id"`
	DoctorID        int64     `gorm:"column:doctor_id;not null" json:"doctor_id"`
	AppointmentDate time.Time `gorm:"column:appointment_date;not null" json:"appointment_date"`
	Status          string    `gorm:"column:status;type:varchar(50);default:scheduled" json:"status"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentListItem carries the names the listing joins in.
type AppointmentListItem struct {
	Appointment
	PatientName    string  `gorm:"column:patient_name"`
	DoctorName     string  `gorm:"column:doctor_name"`
	Specialization *string `gorm:"column:specialization"`
}

// AppointmentFilter narrows an appointment listing. An empty Status matches
// every row.
type AppointmentFilter struct {
	Status string
	Limit  int
}
