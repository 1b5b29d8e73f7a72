package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
	"clinic-registry/pkg/validator"
)

// CreateAppointmentRequestToEntity converts a validated request. A missing
// or blank status becomes "scheduled".
func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest) *entity.Appointment {
	appointmentDate, _ := validator.ParseTimestamp(req.AppointmentDate)

	status := entity.AppointmentStatusScheduled
	if s := nullable(req.Status); s != nil {
		status = *s
	}

	return &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: appointmentDate,
		Status:          status,
	}
}

func UpdateAppointmentRequestToEntity(req *dto.UpdateAppointmentRequest) *entity.Appointment {
	appointment := CreateAppointmentRequestToEntity(&req.CreateAppointmentRequest)
	appointment.AppointmentID = req.AppointmentID
	return appointment
}

func AppointmentsToResponses(appointments []entity.AppointmentListItem) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = dto.AppointmentResponse{
			AppointmentID:   a.AppointmentID,
			PatientID:       a.PatientID,
			DoctorID:        a.DoctorID,
			AppointmentDate: a.AppointmentDate,
			Status:          a.Status,
			PatientName:     a.PatientName,
			DoctorName:      a.DoctorName,
			Specialization:  a.Specialization,
		}
	}
	return responses
}
