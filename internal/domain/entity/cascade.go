package entity

// Resource names an entity that can be the root of a cascade delete.
type Resource string

const (
	ResourcePatient       Resource = "patient"
	ResourceDoctor        Resource = "doctor"
	ResourceDepartment    Resource = "department"
	ResourceService       Resource = "service"
	ResourceDiagnosis     Resource = "diagnosis"
	ResourceAppointment   Resource = "appointment"
	ResourceMedicalRecord Resource = "medical_record"
)

// CascadeStep deletes the rows of one table matching Condition. Steps of a
// plan run in order inside one transaction; the last step removes the root.
type CascadeStep struct {
	Table     string
	Model     interface{}
	Condition string
	Args      []interface{}
}
