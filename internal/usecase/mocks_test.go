package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"clinic-registry/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("connection refused")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeTransactor runs units of work without a database. Repositories in
// these tests ignore the handle they are given.
type fakeTransactor struct {
	transactions int
	committed    int
}

func (f *fakeTransactor) Conn(ctx context.Context) *gorm.DB {
	return nil
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	f.transactions++
	if err := fn(nil); err != nil {
		return err
	}
	f.committed++
	return nil
}

type auditCall struct {
	action   string
	entity   string
	entityID int64
	removed  int64
}

type fakeAudit struct {
	calls []auditCall
}

func (a *fakeAudit) LogCreate(ctx context.Context, entityName string, entityID int64, newValue interface{}) {
	a.calls = append(a.calls, auditCall{action: entity.ChangeActionCreate, entity: entityName, entityID: entityID})
}

func (a *fakeAudit) LogUpdate(ctx context.Context, entityName string, entityID int64, newValue interface{}) {
	a.calls = append(a.calls, auditCall{action: entity.ChangeActionUpdate, entity: entityName, entityID: entityID})
}

func (a *fakeAudit) LogDelete(ctx context.Context, entityName string, entityID int64, removed int64) {
	a.calls = append(a.calls, auditCall{action: entity.ChangeActionDelete, entity: entityName, entityID: entityID, removed: removed})
}

type recordingCascade struct {
	root     entity.Resource
	id       int64
	executed []entity.CascadeStep
	removed  int64
	err      error
}

func (c *recordingCascade) Plan(root entity.Resource, id int64) []entity.CascadeStep {
	c.root = root
	c.id = id
	return []entity.CascadeStep{{Table: "children"}, {Table: string(root)}}
}

func (c *recordingCascade) Execute(db *gorm.DB, steps []entity.CascadeStep) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.executed = steps
	return c.removed, nil
}

type mockPatientRepo struct {
	nextID  int64
	created []*entity.Patient
	updated []*entity.Patient
	filter  entity.PatientFilter
	rows    []entity.Patient
	err     error
}

func (m *mockPatientRepo) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.err != nil {
		return m.err
	}
	patient.PatientID = m.nextID
	m.created = append(m.created, patient)
	return nil
}

func (m *mockPatientRepo) FindAll(db *gorm.DB, filter entity.PatientFilter) ([]entity.Patient, error) {
	m.filter = filter
	return m.rows, m.err
}

func (m *mockPatientRepo) Update(db *gorm.DB, patient *entity.Patient) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.updated = append(m.updated, patient)
	return 0, nil
}

type mockAppointmentRepo struct {
	nextID  int64
	created []*entity.Appointment
	filter  entity.AppointmentFilter
	err     error
}

func (m *mockAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	if m.err != nil {
		return m.err
	}
	appointment.AppointmentID = m.nextID
	m.created = append(m.created, appointment)
	return nil
}

func (m *mockAppointmentRepo) FindAll(db *gorm.DB, filter entity.AppointmentFilter) ([]entity.AppointmentListItem, error) {
	m.filter = filter
	return nil, m.err
}

func (m *mockAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) (int64, error) {
	return 1, m.err
}

type mockDoctorRepo struct {
	limit int
	err   error
}

func (m *mockDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	doctor.DoctorID = 11
	return m.err
}

func (m *mockDoctorRepo) FindAll(db *gorm.DB, limit int) ([]entity.DoctorListItem, error) {
	m.limit = limit
	return nil, m.err
}

func (m *mockDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) (int64, error) {
	return 1, m.err
}

type mockStatsRepo struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockStatsRepo) count(n int64) (int64, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	return n, nil
}

func (m *mockStatsRepo) CountPatients(db *gorm.DB) (int64, error) { return m.count(12) }

func (m *mockStatsRepo) CountTodayAppointments(db *gorm.DB) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count(3)
}

func (m *mockStatsRepo) CountDoctors(db *gorm.DB) (int64, error)     { return m.count(5) }
func (m *mockStatsRepo) CountDepartments(db *gorm.DB) (int64, error) { return m.count(2) }

type mockSpecializationRepo struct {
	rows []entity.Specialization
}

func (m *mockSpecializationRepo) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	return m.rows, nil
}
