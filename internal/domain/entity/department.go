package entity

type Department struct {
	DepartmentID int64   `gorm:"column:department_id;primaryKey;autoIncrement" json:"department_id"`
	Name         string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description  *string `gorm:"column:description;type:text" json:"description"`
	// DoctorID references the head of the department.
	DoctorID *int64 `gorm:"column:doctor_id" json:"doctor_id"`
}

func (Department) TableName() string {
	return "departments"
}

type DepartmentListItem struct {
	Department
	HeadDoctor *string `gorm:"column:head_doctor"`
}
