package models

import "time"

// BusinessConfig é um singleton (id fixo em 1) com os dados de exibição
// do petshop.
type BusinessConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessName string `gorm:"size:100" json:"business_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	WhatsApp     string `gorm:"size:20" json:"whatsapp"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:255" json:"address"`
	Instagram    string `gorm:"size:100" json:"instagram"`
	Description  string `gorm:"size:500" json:"description"`

	LogoURL        string `gorm:"size:255" json:"logo_url"`
	PrimaryColor   string `gorm:"size:10" json:"primary_color"`
	SecondaryColor string `gorm:"size:10" json:"secondary_color"`

	BusinessHoursDisplay string `gorm:"size:100" json:"business_hours_display"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BusinessConfigID é o id da única linha de configuração.
const BusinessConfigID uint = 1
