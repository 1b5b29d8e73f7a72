package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/internal/usecase/usecasetest"
	"clinic-registry/pkg/apperror"
	"clinic-registry/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

func newTestRouter(stub *usecasetest.Stub, pinger Pinger) http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	handlers := Handlers{
		Stats:          handler.NewStatsHandler(stub),
		Patient:        handler.NewPatientHandler(stub, v),
		Appointment:    handler.NewAppointmentHandler(stub, v),
		Doctor:         handler.NewDoctorHandler(stub, v),
		Department:     handler.NewDepartmentHandler(stub, v),
		Specialization: handler.NewSpecializationHandler(stub),
		Service:        handler.NewServiceHandler(stub, v),
		Diagnosis:      handler.NewDiagnosisHandler(stub, v),
		MedicalRecord:  handler.NewMedicalRecordHandler(stub, v),
	}

	return NewRouter(handlers, pinger, log, middleware.NewCORSMiddleware(), middleware.NewLoggingMiddleware(log)).Setup()
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestRouter_DefaultsToStats(t *testing.T) {
	stub := &usecasetest.Stub{Stats: dto.StatsResponse{Patients: 12, TodayAppointments: 3, Doctors: 5, Departments: 2}}
	h := newTestRouter(stub, fakePinger{})

	for _, target := range []string{"/", "/?endpoint=stats", "/some/other/path"} {
		rec := serve(t, h, http.MethodGet, target, "")

		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.JSONEq(t, `{"patients":12,"todayAppointments":3,"doctors":5,"departments":2}`, rec.Body.String(), target)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := newTestRouter(stub, fakePinger{})

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		rec := serve(t, h, method, "/?endpoint=invoices", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"error":"Unknown endpoint"}`, rec.Body.String())
	}
	assert.Empty(t, stub.Calls)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		method   string
		endpoint string
		allow    string
	}{
		{http.MethodPost, "stats", "GET, OPTIONS"},
		{http.MethodDelete, "specializations", "GET, OPTIONS"},
		{http.MethodPatch, "patients", "GET, POST, PUT, DELETE, OPTIONS"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.endpoint, func(t *testing.T) {
			stub := &usecasetest.Stub{}
			rec := serve(t, newTestRouter(stub, fakePinger{}), tt.method, "/?endpoint="+tt.endpoint, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"Method `+tt.method+` is not supported for endpoint `+tt.endpoint+`"}`, rec.Body.String())
			assert.Empty(t, stub.Calls)
		})
	}
}

func TestRouter_Preflight(t *testing.T) {
	stub := &usecasetest.Stub{}
	rec := serve(t, newTestRouter(stub, fakePinger{}), http.MethodOptions, "/?endpoint=patients", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-User-Id", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
	assert.Empty(t, stub.Calls)
}

func TestRouter_CreateReturnsIdentifier(t *testing.T) {
	tests := []struct {
		endpoint string
		body     string
		key      string
	}{
		{"patients", `{"full_name":"Anna Smith"}`, "patient_id"},
		{"doctors", `{"full_name":"Oleg Ivanov","patronym":"Petrovich"}`, "doctor_id"},
		{"departments", `{"name":"Cardiology","doctor_id":3}`, "department_id"},
		{"services", `{"name":"ECG","price":"1250.00"}`, "service_id"},
		{"diagnoses", `{"name":"Hypertension"}`, "diagnoses_id"},
		{"appointments", `{"patient_id":1,"doctor_id":2,"appointment_date":"2026-10-15T10:30"}`, "appointment_id"},
		{"records", `{"patient_id":1,"doctor_id":2,"notes":"stable"}`, "record_id"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			stub := &usecasetest.Stub{NextID: 41}
			rec := serve(t, newTestRouter(stub, fakePinger{}), http.MethodPost, "/?endpoint="+tt.endpoint, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.JSONEq(t, `{"success":true,"`+tt.key+`":41}`, rec.Body.String())
		})
	}
}

func TestRouter_MalformedBodyFailsValidation(t *testing.T) {
	stub := &usecasetest.Stub{}
	rec := serve(t, newTestRouter(stub, fakePinger{}), http.MethodPost, "/?endpoint=patients", "{broken")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Contains(t, body.Fields, "full_name")
	assert.Empty(t, stub.Calls)
}

func TestRouter_UpdateAndDelete(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := newTestRouter(stub, fakePinger{})

	rec := serve(t, h, http.MethodPut, "/?endpoint=patients", `{"patient_id":9,"full_name":"Anna Smith"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "UpdatePatient", stub.Last().Method)

	rec = serve(t, h, http.MethodDelete, "/?endpoint=patients&id=9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, usecasetest.Call{Method: "DeletePatient", Arg: int64(9)}, stub.Last())

	rec = serve(t, h, http.MethodDelete, "/?endpoint=patients", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MedicalRecordsAlias(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := newTestRouter(stub, fakePinger{})

	serve(t, h, http.MethodGet, "/?endpoint=records", "")
	serve(t, h, http.MethodGet, "/?endpoint=medicalrecords", "")

	require.Len(t, stub.Calls, 2)
	assert.Equal(t, "ListMedicalRecords", stub.Calls[0].Method)
	assert.Equal(t, "ListMedicalRecords", stub.Calls[1].Method)
}

func TestRouter_ListParameters(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := newTestRouter(stub, fakePinger{})

	rec := serve(t, h, http.MethodGet, "/?endpoint=patients&search=smi&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
	assert.Equal(t, &dto.ListPatientsRequest{Search: "smi", Limit: 5}, stub.Last().Arg)

	rec = serve(t, h, http.MethodGet, "/?endpoint=doctors&limit=many", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	calls := len(stub.Calls)
	rec = serve(t, h, http.MethodGet, "/?endpoint=appointments&limit=1001", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed","fields":{"limit":"limit must be at most 1000"}}`, rec.Body.String())
	assert.Len(t, stub.Calls, calls)
}

func TestRouter_StoreErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"foreign key", &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}, http.StatusConflict},
		{"not null", &pgconn.PgError{Code: "23502", Message: "null value in column"}, http.StatusBadRequest},
		{"connectivity", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &usecasetest.Stub{Err: apperror.FromStore(tt.err)}
			rec := serve(t, newTestRouter(stub, fakePinger{}), http.MethodPost, "/?endpoint=appointments",
				`{"patient_id":1,"doctor_id":999,"appointment_date":"2026-10-15T10:30"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestRouter_HealthCheck(t *testing.T) {
	rec := serve(t, newTestRouter(&usecasetest.Stub{}, fakePinger{}), http.MethodGet, "/?endpoint=health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(t, newTestRouter(&usecasetest.Stub{}, fakePinger{err: errors.New("down")}), http.MethodGet, "/?endpoint=health", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database unavailable")
}

func TestRouter_PathNeverRoutes(t *testing.T) {
	stub := &usecasetest.Stub{}
	h := newTestRouter(stub, fakePinger{})

	rec := serve(t, h, http.MethodGet, "/healthz?endpoint=patients", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ListPatients", stub.Last().Method)

	for _, path := range []string{"//api", "/a/../b", "/./x"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, h, http.MethodOptions, path, "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Empty(t, rec.Header().Get("Location"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, X-User-Id", rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))

			rec = serve(t, h, http.MethodGet, path+"?endpoint=unknown", "")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"error":"Unknown endpoint"}`, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRouter_EmptyEndpointIsUnknown(t *testing.T) {
	stub := &usecasetest.Stub{}
	rec := serve(t, newTestRouter(stub, fakePinger{}), http.MethodGet, "/?endpoint=", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"Unknown endpoint"}`, rec.Body.String())
	assert.Empty(t, stub.Calls)
}
