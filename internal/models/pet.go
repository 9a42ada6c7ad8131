package models

import "time"

// Pet criado pelo formulário de cadastro do tutor; o contato do
// responsável fica embutido para pré-preencher o agendamento.
type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Breed string `gorm:"size:100" json:"breed"`
	Size  string `gorm:"size:10;not null" json:"size"`

	WeightKg *float64 `json:"weight_kg"`
	AgeYears *int     `json:"age_years"`

	SpecialNotes string `gorm:"size:500" json:"special_notes"`
	PhotoURL     string `gorm:"size:255" json:"photo_url"`

	CoatCondition string `gorm:"size:20" json:"coat_condition"`
	CoatNotes     string `gorm:"size:500" json:"coat_notes"`

	OwnerName  string `gorm:"size:100;not null" json:"owner_name"`
	OwnerPhone string `gorm:"size:20;not null" json:"owner_phone"`
	OwnerEmail string `gorm:"size:100" json:"owner_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
