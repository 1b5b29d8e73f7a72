package entity

type Diagnosis struct {
	DiagnosesID int64   `gorm:"column:diagnoses_id;primaryKey;autoIncrement" json:"diagnoses_id"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}
