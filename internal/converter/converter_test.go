package converter

import (
	"testing"
	"time"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPatientRoundTrip(t *testing.T) {
	req := &dto.UpdatePatientRequest{
		PatientID: 4,
		CreatePatientRequest: dto.CreatePatientRequest{
			FullName:     "Anna Smith",
			BirthDate:    strPtr("1990-03-21"),
			Gender:       strPtr("female"),
			Phone:        strPtr("  "),
			PassportInfo: strPtr(" 4510 123456 "),
		},
	}

	patient := UpdatePatientRequestToEntity(req)
	assert.Equal(t, int64(4), patient.PatientID)
	require.NotNil(t, patient.BirthDate)
	assert.Nil(t, patient.Phone)
	assert.Equal(t, " 4510 123456 ", *patient.PassportInfo)

	resp := PatientToResponse(patient)
	assert.Equal(t, "1990-03-21", *resp.BirthDate)
	assert.Equal(t, "female", *resp.Gender)
	assert.Equal(t, " 4510 123456 ", *resp.PassportInfo)
	assert.Nil(t, resp.Phone)
}

func TestNullableKeepsValuesAsSent(t *testing.T) {
	tests := []struct {
		name string
		in   *string
		want *string
	}{
		{"absent", nil, nil},
		{"empty", strPtr(""), nil},
		{"blank", strPtr(" \t "), nil},
		{"padded", strPtr("  +7 900 "), strPtr("  +7 900 ")},
		{"plain", strPtr("+7 900"), strPtr("+7 900")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nullable(tt.in))
		})
	}

	in := strPtr("x")
	out := nullable(in)
	*in = "y"
	assert.Equal(t, "x", *out)

	assert.NotNil(t, parseDate(strPtr(" 1990-03-21 ")))
}

func TestAppointmentDefaultsStatus(t *testing.T) {
	appointment := CreateAppointmentRequestToEntity(&dto.CreateAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: "2026-10-15T10:30",
	})

	assert.Equal(t, entity.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC), appointment.AppointmentDate)

	appointment = CreateAppointmentRequestToEntity(&dto.CreateAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: "2026-10-15T10:30",
		Status:          strPtr("completed"),
	})
	assert.Equal(t, "completed", appointment.Status)
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	assert.NotNil(t, PatientsToResponses(nil))
	assert.NotNil(t, DoctorsToResponses(nil))
	assert.NotNil(t, AppointmentsToResponses(nil))
	assert.NotNil(t, MedicalRecordsToResponses(nil))
}
