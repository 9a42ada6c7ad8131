package booking

import (
	"context"

	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// ServiceView é o serviço como o catálogo público enxerga: com o preço
// já ajustado ao pet escolhido, ou zerado quando nenhum pet foi
// informado (o preço real depende do porte e da pelagem).
type ServiceView struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(
	ctx context.Context,
	petID *uint,
) ([]ServiceView, error) {

	services, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}

	var pet *models.Pet
	var pricing []models.ServicePricing

	if petID != nil {
		pet, err = uc.repo.GetPet(ctx, *petID)
		if err != nil {
			return nil, httperr.ErrBusiness("pet_not_found")
		}
		pricing, err = uc.repo.ListAllPricing(ctx)
		if err != nil {
			return nil, err
		}
	}

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		v := ServiceView{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
		}
		if pet != nil {
			v.Price = domain.ServicePrice(pet, svc, pricing)
		}
		views = append(views, v)
	}

	return views, nil
}
