package booking

import (
	"context"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute troca o status do agendamento. Valor fora do enum é rejeitado
// antes de tocar o banco.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, id, domain.Status(status)); err != nil {
		return nil, err
	}
	ap.Status = status

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": status},
	})

	return ap, nil
}

type UpdateAppointmentNotes struct {
	repo domain.Repository
}

func NewUpdateAppointmentNotes(repo domain.Repository) *UpdateAppointmentNotes {
	return &UpdateAppointmentNotes{repo: repo}
}

func (uc *UpdateAppointmentNotes) Execute(
	ctx context.Context,
	id uint,
	notes string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentNotes(ctx, id, notes); err != nil {
		return nil, err
	}
	ap.Notes = notes

	return ap, nil
}
