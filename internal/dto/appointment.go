package dto

import (
	"time"

	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// AppointmentDetailsDTO é a forma da listagem do painel: agendamento com
// pet e serviços embutidos.
type AppointmentDetailsDTO struct {
	ID uint `json:"id"`

	PetID uint       `json:"pet_id"`
	Pet   models.Pet `json:"pet"`

	Services []models.Service `json:"services"`

	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	OwnerEmail string `json:"owner_email"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	Notes      string  `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAppointment(ap models.Appointment) AppointmentDetailsDTO {
	return AppointmentDetailsDTO{
		ID:              ap.ID,
		PetID:           ap.PetID,
		Pet:             ap.Pet,
		Services:        ap.Services,
		OwnerName:       ap.OwnerName,
		OwnerPhone:      ap.OwnerPhone,
		OwnerEmail:      ap.OwnerEmail,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		TotalPrice:      ap.TotalPrice,
		Notes:           ap.Notes,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}
