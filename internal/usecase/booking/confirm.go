package booking

import (
	"context"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/notify"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute marca o agendamento como confirmado e enfileira a notificação
// ao tutor. A confirmação persiste mesmo que a notificação falhe.
func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, id, domain.StatusConfirmed); err != nil {
		return nil, err
	}
	ap.Status = string(domain.StatusConfirmed)

	uc.notifier.Dispatch(notify.ConfirmationMessage{
		OwnerName:  ap.OwnerName,
		OwnerPhone: ap.OwnerPhone,
		PetName:    ap.Pet.Name,
		Date:       ap.AppointmentDate,
		Time:       ap.AppointmentTime,
		TotalPrice: ap.TotalPrice,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
