package models

import "time"

// ServicePricing sobrepõe o preço base do serviço para um porte
// específico. No máximo uma linha por (service_id, size).
type ServicePricing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_service_size;not null" json:"service_id"`
	Size      string  `gorm:"size:10;uniqueIndex:idx_service_size;not null" json:"size"`
	BasePrice float64 `json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
