package repository

import (
	"fmt"

	"clinic-registry/internal/domain/entity"
	domainRepo "clinic-registry/internal/domain/repository"

	"gorm.io/gorm"
)

// Subqueries selecting the rows that hang off a root entity.
const (
	appointmentsOfPatient = "SELECT appointment_id FROM appointments WHERE patient_id = ?"
	appointmentsOfDoctor  = "SELECT appointment_id FROM appointments WHERE doctor_id = ?"

	recordsOfPatient     = "SELECT record_id FROM medicalrecords WHERE patient_id = ? OR appointment_id IN (" + appointmentsOfPatient + ")"
	recordsOfDoctor      = "SELECT record_id FROM medicalrecords WHERE doctor_id = ? OR appointment_id IN (" + appointmentsOfDoctor + ")"
	recordsOfAppointment = "SELECT record_id FROM medicalrecords WHERE appointment_id = ?"
	recordsOfDiagnosis   = "SELECT record_id FROM medicalrecords WHERE diagnoses_id = ?"
)

type cascadeRepository struct{}

func NewCascadeRepository() domainRepo.CascadeRepository {
	return &cascadeRepository{}
}

func step(model interface{ TableName() string }, condition string, args ...interface{}) entity.CascadeStep {
	return entity.CascadeStep{
		Table:     model.TableName(),
		Model:     model,
		Condition: condition,
		Args:      args,
	}
}

// Plan returns the delete statements for root id, every referencing table
// before the table it references. Unknown roots yield an empty plan.
func (r *cascadeRepository) Plan(root entity.Resource, id int64) []entity.CascadeStep {
	switch root {
	case entity.ResourcePatient:
		return []entity.CascadeStep{
			step(&entity.Prescription{}, "record_id IN ("+recordsOfPatient+")", id, id),
			step(&entity.MedicalRecord{}, "patient_id = ? OR appointment_id IN ("+appointmentsOfPatient+")", id, id),
			step(&entity.AppointmentService{}, "appointment_id IN ("+appointmentsOfPatient+")", id),
			step(&entity.Appointment{}, "patient_id = ?", id),
			step(&entity.Patient{}, "patient_id = ?", id),
		}

	case entity.ResourceDoctor:
		return []entity.CascadeStep{
			step(&entity.Prescription{}, "record_id IN ("+recordsOfDoctor+")", id, id),
			step(&entity.MedicalRecord{}, "doctor_id = ? OR appointment_id IN ("+appointmentsOfDoctor+")", id, id),
			step(&entity.AppointmentService{}, "appointment_id IN ("+appointmentsOfDoctor+")", id),
			step(&entity.Appointment{}, "doctor_id = ?", id),
			step(&entity.Department{}, "doctor_id = ?", id),
			step(&entity.Doctor{}, "doctor_id = ?", id),
		}

	case entity.ResourceAppointment:
		return []entity.CascadeStep{
			step(&entity.Prescription{}, "record_id IN ("+recordsOfAppointment+")", id),
			step(&entity.AppointmentService{}, "appointment_id = ?", id),
			step(&entity.MedicalRecord{}, "appointment_id = ?", id),
			step(&entity.Appointment{}, "appointment_id = ?", id),
		}

	case entity.ResourceService:
		return []entity.CascadeStep{
			step(&entity.AppointmentService{}, "service_id = ?", id),
			step(&entity.Service{}, "service_id = ?", id),
		}

	case entity.ResourceDiagnosis:
		return []entity.CascadeStep{
			step(&entity.Prescription{}, "record_id IN ("+recordsOfDiagnosis+")", id),
			step(&entity.MedicalRecord{}, "diagnoses_id = ?", id),
			step(&entity.Disease{}, "diagnoses_id = ?", id),
			step(&entity.Diagnosis{}, "diagnoses_id = ?", id),
		}

	case entity.ResourceMedicalRecord:
		return []entity.CascadeStep{
			step(&entity.Prescription{}, "record_id = ?", id),
			step(&entity.MedicalRecord{}, "record_id = ?", id),
		}

	case entity.ResourceDepartment:
		return []entity.CascadeStep{
			step(&entity.Department{}, "department_id = ?", id),
		}
	}

	return nil
}

func (r *cascadeRepository) Execute(db *gorm.DB, steps []entity.CascadeStep) (int64, error) {
	var affected int64
	for _, s := range steps {
		result := db.Where(s.Condition, s.Args...).Delete(s.Model)
		if result.Error != nil {
			return 0, fmt.Errorf("delete from %s: %w", s.Table, result.Error)
		}
		affected = result.RowsAffected
	}
	return affected, nil
}
