package models

import "time"

// WorkingHours guarda a janela de atendimento de um dia da semana
// (0=domingo..6=sábado), a granularidade dos horários e a pausa opcional.
// A configuração é sempre substituída por inteiro ao salvar.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int `gorm:"index" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"is_active"`

	AppointmentDuration int `json:"appointment_duration"`

	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
