package entity

import "github.com/shopspring/decimal"

// Service is a billable clinic service.
type Service struct {
	ServiceID    int64           `gorm:"column:service_id;primaryKey;autoIncrement" json:"service_id"`
	Name         string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2)" json:"price"`
	Descriptions *string         `gorm:"column:descriptions;type:text" json:"descriptions"`
}

func (Service) TableName() string {
	return "services"
}
