package scheduling

import (
	"context"

	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type Repository interface {
	// -------- Pet --------
	GetPet(
		ctx context.Context,
		id uint,
	) (*models.Pet, error)

	// -------- Service / pricing --------
	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	ListActiveServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	ListPricingForServices(
		ctx context.Context,
		serviceIDs []uint,
	) ([]models.ServicePricing, error)

	ListAllPricing(
		ctx context.Context,
	) ([]models.ServicePricing, error)

	// -------- Working hours --------
	GetWorkingHours(
		ctx context.Context,
		dayOfWeek int,
	) (*models.WorkingHours, error)

	// -------- Appointment --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	UpdateAppointmentNotes(
		ctx context.Context,
		id uint,
		notes string,
	) error
}
