package entity

// Specialization is reference data; the API exposes it read-only.
type Specialization struct {
	SpecializationID int64   `gorm:"column:specialization_id;primaryKey;autoIncrement" json:"specialization_id"`
	Name             string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description      *string `gorm:"column:description;type:text" json:"description"`
}

func (Specialization) TableName() string {
	return "specializations"
}
