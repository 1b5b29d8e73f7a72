package entity

// Tables below are not exposed through the API; cascade deletes clear them.

// Prescription belongs to a medical record.
type Prescription struct {
	PrescriptionID int64 `gorm:"column:prescription_id;primaryKey"`
	RecordID       int64 `gorm:"column:record_id"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// AppointmentService links a service to the appointment it was rendered in.
type AppointmentService struct {
	AppointmentID int64 `gorm:"column:appointment_id;primaryKey"`
	ServiceID     int64 `gorm:"column:service_id;primaryKey"`
}

func (AppointmentService) TableName() string {
	return "appointmentservices"
}

// Disease is a disease entry classified under a diagnosis.
type Disease struct {
	DiseaseID   int64 `gorm:"column:disease_id;primaryKey"`
	DiagnosesID int64 `gorm:"column:diagnoses_id"`
}

func (Disease) TableName() string {
	return "diseases"
}
