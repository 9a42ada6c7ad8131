package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute gera os horários livres da data pedida. Dia sem expediente
// configurado (ou inativo) devolve lista vazia, nunca erro: dia fechado
// é um resultado válido do calendário.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, int(day.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.GenerateSlots(wh, booked), nil
}
