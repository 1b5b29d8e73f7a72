package entity

import "time"

// Patient is a person registered at the clinic.
type Patient struct {
	PatientID    int64      `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id"`
	FullName     string     `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	BirthDate    *time.Time `gorm:"column:birth_date;type:date" json:"birth_date"`
	Gender       *string    `gorm:"column:gender;type:varchar(20)" json:"gender"`
	Phone        *string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	PassportInfo *string    `gorm:"column:passport_info;type:varchar(255)" json:"passport_info"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientFilter narrows a patient listing. Search matches full name or phone
// case-insensitively; an empty Search matches every row.
type PatientFilter struct {
	Search string
	Limit  int
}
