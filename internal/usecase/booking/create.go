package booking

import (
	"context"
	"time"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetID      uint
	ServiceIDs []uint

	OwnerName  string
	OwnerPhone string
	OwnerEmail string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida o pedido, recalcula o total no servidor e persiste o
// agendamento com os serviços selecionados em uma transação só. O preço
// enviado pelo cliente nunca é considerado.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	// --------------------------------------------------
	// 2️⃣ Pet
	// --------------------------------------------------
	pet, err := uc.repo.GetPet(ctx, in.PetID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Serviços ativos
	// --------------------------------------------------
	services, err := uc.repo.ListActiveServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	pricing, err := uc.repo.ListPricingForServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Preço autoritativo
	// --------------------------------------------------
	quote, err := domain.PriceQuote(pet, in.ServiceIDs, services, pricing)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Snapshot do contato
	// --------------------------------------------------
	ownerName := in.OwnerName
	if ownerName == "" {
		ownerName = pet.OwnerName
	}
	ownerPhone := in.OwnerPhone
	if ownerPhone == "" {
		ownerPhone = pet.OwnerPhone
	}
	ownerEmail := in.OwnerEmail
	if ownerEmail == "" {
		ownerEmail = pet.OwnerEmail
	}

	// --------------------------------------------------
	// 6️⃣ Persistência (agendamento + junção)
	// --------------------------------------------------
	ap := &models.Appointment{
		PetID:           pet.ID,
		Services:        services,
		OwnerName:       ownerName,
		OwnerPhone:      ownerPhone,
		OwnerEmail:      ownerEmail,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		TotalPrice:      quote.Total,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"pet_id":      pet.ID,
			"date":        in.Date,
			"time":        in.Time,
			"total_price": quote.Total,
		},
	})

	return ap, nil
}
