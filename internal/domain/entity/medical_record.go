package entity

import "time"

type MedicalRecord struct {
	RecordID      int64     `gorm:"column:record_id;primaryKey;autoIncrement" json:"record_id"`
	PatientID     int64     `gorm:"column:patient_id;not null" json:"patient_id"`
	DoctorID      int64     `gorm:"column:doctor_id;not null" json:"doctor_id"`
	AppointmentID *int64    `gorm:"column:appointment_id" json:"appointment_id"`
	DiagnosesID   *int64    `gorm:"column:diagnoses_id" json:"diagnoses_id"`
	Notes         *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (MedicalRecord) TableName() string {
	return "medicalrecords"
}

type MedicalRecordListItem struct {
	MedicalRecord
	PatientName   string  `gorm:"column:patient_name"`
	DoctorName    string  `gorm:"column:doctor_name"`
	DiagnosisName *string `gorm:"column:diagnosis_name"`
}
