package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Pet
// --------------------------------------------------

func (r *SchedulingGormRepository) GetPet(
	ctx context.Context,
	id uint,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Service / pricing
// --------------------------------------------------

func (r *SchedulingGormRepository) ListActiveServices(
	ctx context.Context,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SchedulingGormRepository) ListActiveServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SchedulingGormRepository) ListPricingForServices(
	ctx context.Context,
	serviceIDs []uint,
) ([]models.ServicePricing, error) {

	var pricing []models.ServicePricing
	if err := r.db.WithContext(ctx).
		Where("service_id IN ?", serviceIDs).
		Find(&pricing).Error; err != nil {
		return nil, err
	}
	return pricing, nil
}

func (r *SchedulingGormRepository) ListAllPricing(
	ctx context.Context,
) ([]models.ServicePricing, error) {

	var pricing []models.ServicePricing
	if err := r.db.WithContext(ctx).
		Order("service_id ASC, size ASC").
		Find(&pricing).Error; err != nil {
		return nil, err
	}
	return pricing, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *SchedulingGormRepository) GetWorkingHours(
	ctx context.Context,
	dayOfWeek int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ? AND active = ?", dayOfWeek, true).
		First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date = ? AND status <> ?", date, string(domain.StatusCancelled)).
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// CreateAppointment grava o agendamento e as linhas da junção
// appointment_services como uma unidade só.
func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Pet").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *SchedulingGormRepository) UpdateAppointmentNotes(
	ctx context.Context,
	id uint,
	notes string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("notes", notes).Error
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
