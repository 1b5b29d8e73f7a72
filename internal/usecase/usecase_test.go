package usecase

import (
	"context"
	"testing"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
	"clinic-registry/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultListLimit},
		{-5, DefaultListLimit},
		{20, 20},
		{MaxListLimit, MaxListLimit},
		{MaxListLimit + 1, MaxListLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeLimit(tt.in))
	}
}

func TestPatientUsecase_Create(t *testing.T) {
	tx := &fakeTransactor{}
	repo := &mockPatientRepo{nextID: 42}
	audit := &fakeAudit{}
	uc := NewPatientUsecase(tx, quietLogger(), repo, &recordingCascade{}, audit)

	id, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{FullName: "Ivan Petrov"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, 1, tx.committed)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Ivan Petrov", repo.created[0].FullName)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, auditCall{action: entity.ChangeActionCreate, entity: "patient", entityID: 42}, audit.calls[0])
}

func TestPatientUsecase_CreateConstraintViolation(t *testing.T) {
	repo := &mockPatientRepo{err: &pgconn.PgError{Code: "23505", Message: "duplicate key value"}}
	audit := &fakeAudit{}
	uc := NewPatientUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, audit)

	_, err := uc.CreatePatient(context.Background(), &dto.CreatePatientRequest{FullName: "Ivan Petrov"})

	require.Error(t, err)
	assert.Equal(t, apperror.KindConstraint, apperror.KindOf(err))
	assert.Empty(t, audit.calls)
}

func TestPatientUsecase_UpdateMissingRowSucceeds(t *testing.T) {
	repo := &mockPatientRepo{}
	audit := &fakeAudit{}
	uc := NewPatientUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, audit)

	err := uc.UpdatePatient(context.Background(), &dto.UpdatePatientRequest{
		PatientID:            999,
		CreatePatientRequest: dto.CreatePatientRequest{FullName: "Nobody"},
	})

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, int64(999), repo.updated[0].PatientID)
	require.Len(t, audit.calls, 1)
	assert.Equal(t, entity.ChangeActionUpdate, audit.calls[0].action)
}

func TestPatientUsecase_ListAppliesFilter(t *testing.T) {
	repo := &mockPatientRepo{rows: []entity.Patient{{PatientID: 1, FullName: "Anna Smith"}}}
	uc := NewPatientUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, &fakeAudit{})

	patients, err := uc.ListPatients(context.Background(), &dto.ListPatientsRequest{Search: "Smi"})

	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Anna Smith", patients[0].FullName)
	assert.Equal(t, entity.PatientFilter{Search: "Smi", Limit: DefaultListLimit}, repo.filter)
}

func TestPatientUsecase_ListStoreFailure(t *testing.T) {
	repo := &mockPatientRepo{err: errStoreDown}
	uc := NewPatientUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, &fakeAudit{})

	_, err := uc.ListPatients(context.Background(), &dto.ListPatientsRequest{})

	require.Error(t, err)
	assert.Equal(t, apperror.KindInfra, apperror.KindOf(err))
}

func TestPatientUsecase_DeleteCascades(t *testing.T) {
	tx := &fakeTransactor{}
	cascade := &recordingCascade{removed: 1}
	audit := &fakeAudit{}
	uc := NewPatientUsecase(tx, quietLogger(), &mockPatientRepo{}, cascade, audit)

	require.NoError(t, uc.DeletePatient(context.Background(), 7))

	assert.Equal(t, entity.ResourcePatient, cascade.root)
	assert.Equal(t, int64(7), cascade.id)
	assert.Len(t, cascade.executed, 2)
	assert.Equal(t, 1, tx.transactions)
	assert.Equal(t, []auditCall{{action: entity.ChangeActionDelete, entity: "patient", entityID: 7, removed: 1}}, audit.calls)
}

func TestDeleteFailureRollsBack(t *testing.T) {
	tx := &fakeTransactor{}
	cascade := &recordingCascade{err: errStoreDown}
	audit := &fakeAudit{}
	uc := NewDoctorUsecase(tx, quietLogger(), &mockDoctorRepo{}, cascade, audit)

	err := uc.DeleteDoctor(context.Background(), 3)

	require.Error(t, err)
	assert.Equal(t, entity.ResourceDoctor, cascade.root)
	assert.Equal(t, 1, tx.transactions)
	assert.Zero(t, tx.committed)
	assert.Empty(t, audit.calls)
}

func TestAppointmentUsecase_CreateDefaultsStatus(t *testing.T) {
	repo := &mockAppointmentRepo{nextID: 9}
	uc := NewAppointmentUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, &fakeAudit{})

	id, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       1,
		DoctorID:        2,
		AppointmentDate: "2026-10-15 09:30:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.AppointmentStatusScheduled, repo.created[0].Status)
}

func TestAppointmentUsecase_ListCapsLimit(t *testing.T) {
	repo := &mockAppointmentRepo{}
	uc := NewAppointmentUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, &fakeAudit{})

	appointments, err := uc.ListAppointments(context.Background(), &dto.ListAppointmentsRequest{Status: "completed", Limit: 5000})

	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Equal(t, entity.AppointmentFilter{Status: "completed", Limit: MaxListLimit}, repo.filter)
}

func TestDoctorUsecase_ListPassesLimit(t *testing.T) {
	repo := &mockDoctorRepo{}
	uc := NewDoctorUsecase(&fakeTransactor{}, quietLogger(), repo, &recordingCascade{}, &fakeAudit{})

	_, err := uc.ListDoctors(context.Background(), 25)

	require.NoError(t, err)
	assert.Equal(t, 25, repo.limit)
}

func TestStatsUsecase_GetStats(t *testing.T) {
	repo := &mockStatsRepo{}
	uc := NewStatsUsecase(&fakeTransactor{}, quietLogger(), repo)

	stats, err := uc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &dto.StatsResponse{Patients: 12, TodayAppointments: 3, Doctors: 5, Departments: 2}, stats)
	assert.Equal(t, 4, repo.calls)
}

func TestStatsUsecase_AnyCountFailureFails(t *testing.T) {
	uc := NewStatsUsecase(&fakeTransactor{}, quietLogger(), &mockStatsRepo{err: errStoreDown})

	stats, err := uc.GetStats(context.Background())

	require.Error(t, err)
	assert.Nil(t, stats)
	assert.Equal(t, apperror.KindInfra, apperror.KindOf(err))
}

func TestSpecializationUsecase_List(t *testing.T) {
	repo := &mockSpecializationRepo{rows: []entity.Specialization{{SpecializationID: 1, Name: "Cardiology"}}}
	uc := NewSpecializationUsecase(&fakeTransactor{}, quietLogger(), repo)

	specializations, err := uc.ListSpecializations(context.Background())

	require.NoError(t, err)
	require.Len(t, specializations, 1)
	assert.Equal(t, "Cardiology", specializations[0].Name)
}
