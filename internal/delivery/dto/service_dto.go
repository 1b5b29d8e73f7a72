package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateServiceRequest struct {
	Name         string           `json:"name" validate:"required,max=255"`
	Price        *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Descriptions *string          `json:"descriptions"`
}

type UpdateServiceRequest struct {
	ServiceID int64 `json:"service_id" validate:"required,gt=0"`
	CreateServiceRequest
}

// Response DTOs

type ServiceResponse struct {
	ServiceID    int64           `json:"service_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Descriptions *string         `json:"descriptions"`
}
