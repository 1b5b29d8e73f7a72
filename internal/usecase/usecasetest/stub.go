// Package usecasetest provides an in-memory stand-in for every use case so
// that delivery code can be tested without a database.
package usecasetest

import (
	"context"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/usecase"
)

var (
	_ usecase.StatsUsecase          = (*Stub)(nil)
	_ usecase.PatientUsecase        = (*Stub)(nil)
	_ usecase.AppointmentUsecase    = (*Stub)(nil)
	_ usecase.DoctorUsecase         = (*Stub)(nil)
	_ usecase.DepartmentUsecase     = (*Stub)(nil)
	_ usecase.SpecializationUsecase = (*Stub)(nil)
	_ usecase.ServiceUsecase        = (*Stub)(nil)
	_ usecase.DiagnosisUsecase      = (*Stub)(nil)
	_ usecase.MedicalRecordUsecase  = (*Stub)(nil)
)

// Call is one recorded invocation.
type Call struct {
	Method string
	Arg    interface{}
}

// Stub implements every use case interface. Creates return NextID, every
// method returns Err, and each call is appended to Calls.
type Stub struct {
	NextID int64
	Err    error
	Stats  dto.StatsResponse
	Calls  []Call
}

func (s *Stub) record(method string, arg interface{}) {
	s.Calls = append(s.Calls, Call{Method: method, Arg: arg})
}

// Last returns the most recent call, or the zero Call.
func (s *Stub) Last() Call {
	if len(s.Calls) == 0 {
		return Call{}
	}
	return s.Calls[len(s.Calls)-1]
}

func (s *Stub) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	s.record("GetStats", nil)
	if s.Err != nil {
		return nil, s.Err
	}
	stats := s.Stats
	return &stats, nil
}

func (s *Stub) ListSpecializations(ctx context.Context) ([]dto.SpecializationResponse, error) {
	s.record("ListSpecializations", nil)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.SpecializationResponse{}, nil
}

func (s *Stub) ListPatients(ctx context.Context, req *dto.ListPatientsRequest) ([]dto.PatientResponse, error) {
	s.record("ListPatients", req)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.PatientResponse{}, nil
}

func (s *Stub) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (int64, error) {
	s.record("CreatePatient", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdatePatient(ctx context.Context, req *dto.UpdatePatientRequest) error {
	s.record("UpdatePatient", req)
	return s.Err
}

func (s *Stub) DeletePatient(ctx context.Context, patientID int64) error {
	s.record("DeletePatient", patientID)
	return s.Err
}

func (s *Stub) ListAppointments(ctx context.Context, req *dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error) {
	s.record("ListAppointments", req)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.AppointmentResponse{}, nil
}

func (s *Stub) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (int64, error) {
	s.record("CreateAppointment", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateAppointment(ctx context.Context, req *dto.UpdateAppointmentRequest) error {
	s.record("UpdateAppointment", req)
	return s.Err
}

func (s *Stub) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	s.record("DeleteAppointment", appointmentID)
	return s.Err
}

func (s *Stub) ListDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	s.record("ListDoctors", limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.DoctorResponse{}, nil
}

func (s *Stub) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (int64, error) {
	s.record("CreateDoctor", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateDoctor(ctx context.Context, req *dto.UpdateDoctorRequest) error {
	s.record("UpdateDoctor", req)
	return s.Err
}

func (s *Stub) DeleteDoctor(ctx context.Context, doctorID int64) error {
	s.record("DeleteDoctor", doctorID)
	return s.Err
}

func (s *Stub) ListDepartments(ctx context.Context, limit int) ([]dto.DepartmentResponse, error) {
	s.record("ListDepartments", limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.DepartmentResponse{}, nil
}

func (s *Stub) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (int64, error) {
	s.record("CreateDepartment", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateDepartment(ctx context.Context, req *dto.UpdateDepartmentRequest) error {
	s.record("UpdateDepartment", req)
	return s.Err
}

func (s *Stub) DeleteDepartment(ctx context.Context, departmentID int64) error {
	s.record("DeleteDepartment", departmentID)
	return s.Err
}

func (s *Stub) ListServices(ctx context.Context, limit int) ([]dto.ServiceResponse, error) {
	s.record("ListServices", limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.ServiceResponse{}, nil
}

func (s *Stub) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (int64, error) {
	s.record("CreateService", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateService(ctx context.Context, req *dto.UpdateServiceRequest) error {
	s.record("UpdateService", req)
	return s.Err
}

func (s *Stub) DeleteService(ctx context.Context, serviceID int64) error {
	s.record("DeleteService", serviceID)
	return s.Err
}

func (s *Stub) ListDiagnoses(ctx context.Context, limit int) ([]dto.DiagnosisResponse, error) {
	s.record("ListDiagnoses", limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.DiagnosisResponse{}, nil
}

func (s *Stub) CreateDiagnosis(ctx context.Context, req *dto.CreateDiagnosisRequest) (int64, error) {
	s.record("CreateDiagnosis", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateDiagnosis(ctx context.Context, req *dto.UpdateDiagnosisRequest) error {
	s.record("UpdateDiagnosis", req)
	return s.Err
}

func (s *Stub) DeleteDiagnosis(ctx context.Context, diagnosisID int64) error {
	s.record("DeleteDiagnosis", diagnosisID)
	return s.Err
}

func (s *Stub) ListMedicalRecords(ctx context.Context, limit int) ([]dto.MedicalRecordResponse, error) {
	s.record("ListMedicalRecords", limit)
	if s.Err != nil {
		return nil, s.Err
	}
	return []dto.MedicalRecordResponse{}, nil
}

func (s *Stub) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (int64, error) {
	s.record("CreateMedicalRecord", req)
	if s.Err != nil {
		return 0, s.Err
	}
	return s.NextID, nil
}

func (s *Stub) UpdateMedicalRecord(ctx context.Context, req *dto.UpdateMedicalRecordRequest) error {
	s.record("UpdateMedicalRecord", req)
	return s.Err
}

func (s *Stub) DeleteMedicalRecord(ctx context.Context, medicalRecordID int64) error {
	s.record("DeleteMedicalRecord", medicalRecordID)
	return s.Err
}
