package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"clinic-registry/internal/delivery/http/handler"
	"clinic-registry/internal/delivery/http/middleware"
	"clinic-registry/pkg/apperror"
	"clinic-registry/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultEndpoint is served when the endpoint parameter is absent.
	DefaultEndpoint = "stats"
	// HealthEndpoint reports whether the database answers a ping.
	HealthEndpoint = "health"
)

// methodOrder fixes the order of the Allow header.
var methodOrder = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	Stats          *handler.StatsHandler
	Patient        *handler.PatientHandler
	Appointment    *handler.AppointmentHandler
	Doctor         *handler.DoctorHandler
	Department     *handler.DepartmentHandler
	Specialization *handler.SpecializationHandler
	Service        *handler.ServiceHandler
	Diagnosis      *handler.DiagnosisHandler
	MedicalRecord  *handler.MedicalRecordHandler
}

type Router struct {
	router            *mux.Router
	log               *logrus.Logger
	routes            map[string]map[string]handler.Operation
	pinger            Pinger
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	pinger Pinger,
	log *logrus.Logger,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	r := &Router{
		// Paths are served as sent, never cleaned or redirected.
		router:            mux.NewRouter().SkipClean(true),
		log:               log,
		routes:            buildRoutes(handlers),
		pinger:            pinger,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
	r.routes[HealthEndpoint] = map[string]handler.Operation{
		http.MethodGet: r.healthCheck,
	}
	return r
}

// buildRoutes lists every supported (endpoint, method) pair.
func buildRoutes(h Handlers) map[string]map[string]handler.Operation {
	routes := map[string]map[string]handler.Operation{
		"stats": {
			http.MethodGet: h.Stats.GetStats,
		},
		"patients": {
			http.MethodGet:    h.Patient.ListPatients,
			http.MethodPost:   h.Patient.CreatePatient,
			http.MethodPut:    h.Patient.UpdatePatient,
			http.MethodDelete: h.Patient.DeletePatient,
		},
		"appointments": {
			http.MethodGet:    h.Appointment.ListAppointments,
			http.MethodPost:   h.Appointment.CreateAppointment,
			http.MethodPut:    h.Appointment.UpdateAppointment,
			http.MethodDelete: h.Appointment.DeleteAppointment,
		},
		"doctors": {
			http.MethodGet:    h.Doctor.ListDoctors,
			http.MethodPost:   h.Doctor.CreateDoctor,
			http.MethodPut:    h.Doctor.UpdateDoctor,
			http.MethodDelete: h.Doctor.DeleteDoctor,
		},
		"departments": {
			http.MethodGet:    h.Department.ListDepartments,
			http.MethodPost:   h.Department.CreateDepartment,
			http.MethodPut:    h.Department.UpdateDepartment,
			http.MethodDelete: h.Department.DeleteDepartment,
		},
		"specializations": {
			http.MethodGet: h.Specialization.ListSpecializations,
		},
		"services": {
			http.MethodGet:    h.Service.ListServices,
			http.MethodPost:   h.Service.CreateService,
			http.MethodPut:    h.Service.UpdateService,
			http.MethodDelete: h.Service.DeleteService,
		},
		"diagnoses": {
			http.MethodGet:    h.Diagnosis.ListDiagnoses,
			http.MethodPost:   h.Diagnosis.CreateDiagnosis,
			http.MethodPut:    h.Diagnosis.UpdateDiagnosis,
			http.MethodDelete: h.Diagnosis.DeleteDiagnosis,
		},
		"records": {
			http.MethodGet:    h.MedicalRecord.ListMedicalRecords,
			http.MethodPost:   h.MedicalRecord.CreateMedicalRecord,
			http.MethodPut:    h.MedicalRecord.UpdateMedicalRecord,
			http.MethodDelete: h.MedicalRecord.DeleteMedicalRecord,
		},
	}
	routes["medicalrecords"] = routes["records"]

	return routes
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestContext)
	r.router.Use(r.loggingMiddleware.AccessLog)
	r.router.Use(r.loggingMiddleware.Recover)
	r.router.Use(r.corsMiddleware.Handle)

	// Every path is routed by the endpoint parameter.
	r.router.PathPrefix("/").HandlerFunc(r.dispatch)

	return r.router
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	// Only an absent parameter selects the default; an empty one is unknown.
	endpoint := DefaultEndpoint
	if values, ok := req.URL.Query()["endpoint"]; ok {
		endpoint = values[0]
	}

	methods, ok := r.routes[endpoint]
	if !ok {
		response.UnknownEndpoint(w)
		return
	}

	operation, ok := methods[req.Method]
	if !ok {
		w.Header().Set("Allow", allowedMethods(methods))
		response.Error(w, apperror.MethodNotAllowed(req.Method, endpoint))
		return
	}

	result, err := operation(req.Context(), handler.NewRequest(req))
	if err != nil {
		requestID, _ := middleware.GetRequestIDFromContext(req.Context())
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"endpoint":   endpoint,
			"method":     req.Method,
			"kind":       apperror.KindOf(err).String(),
		}).Warnf("Request failed: %v", err)
		response.Error(w, err)
		return
	}

	response.OK(w, result)
}

func allowedMethods(methods map[string]handler.Operation) string {
	allowed := make([]string, 0, len(methods)+1)
	for _, m := range methodOrder {
		if _, ok := methods[m]; ok {
			allowed = append(allowed, m)
		}
	}
	allowed = append(allowed, http.MethodOptions)
	return strings.Join(allowed, ", ")
}

func (r *Router) healthCheck(ctx context.Context, req *handler.Request) (interface{}, error) {
	if err := r.pinger.PingContext(ctx); err != nil {
		return nil, apperror.FromStore(fmt.Errorf("database unavailable: %w", err))
	}

	return map[string]string{"status": "ok"}, nil
}
