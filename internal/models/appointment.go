package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// Snapshot do contato no momento do agendamento, não é referência viva.
	OwnerName  string `gorm:"size:100;not null" json:"owner_name"`
	OwnerPhone string `gorm:"size:20;not null" json:"owner_phone"`
	OwnerEmail string `gorm:"size:100" json:"owner_email"`

	AppointmentDate string `gorm:"size:10;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Sempre recalculado no servidor; nunca aceito do cliente.
	TotalPrice float64 `json:"total_price"`

	Notes string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
