package entity

type Doctor struct {
	DoctorID         int64   `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	FullName         string  `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Patronym         *string `gorm:"column:patronym;type:varchar(255)" json:"patronym"`
	SpecializationID *int64  `gorm:"column:specialization_id" json:"specialization_id"`
	Phone            *string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	OfficeNumber     *string `gorm:"column:office_number;type:varchar(20)" json:"office_number"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorListItem is a doctor joined with the name of its specialization.
type DoctorListItem struct {
	Doctor
	Specialization *string `gorm:"column:specialization"`
}
