package scheduling

import (
	"math"

	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// ===============================
// Portes e condição da pelagem
// ===============================

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

const (
	CoatExcellent = "excellent"
	CoatGood      = "good"
	CoatRegular   = "regular"
	CoatPoor      = "poor"
)

func IsValidSize(size string) bool {
	switch size {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func IsValidCoatCondition(cond string) bool {
	switch cond {
	case CoatExcellent, CoatGood, CoatRegular, CoatPoor:
		return true
	}
	return false
}

// CoatMultiplier devolve o fator aplicado ao preço pela condição da
// pelagem. Condição ausente ou desconhecida não altera o preço.
func CoatMultiplier(cond string) float64 {
	switch cond {
	case CoatExcellent:
		return 1.0
	case CoatGood:
		return 1.1
	case CoatRegular:
		return 1.2
	case CoatPoor:
		return 1.3
	}
	return 1.0
}

// ===============================
// Cálculo de preço
// ===============================

type LineItem struct {
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
}

type Quote struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
}

// PriceQuote calcula o orçamento dos serviços selecionados para um pet.
// O preço unitário vem da tabela por porte quando existe, senão do preço
// fixo do serviço; a condição da pelagem multiplica todas as linhas.
// Cada linha é arredondada para 2 casas antes da soma, para bater com o
// preço exibido por serviço. Serviço selecionado inexistente invalida o
// orçamento inteiro.
func PriceQuote(
	pet *models.Pet,
	selectedIDs []uint,
	services []models.Service,
	pricing []models.ServicePricing,
) (Quote, error) {

	byID := make(map[uint]models.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	override := make(map[uint]float64, len(pricing))
	for _, p := range pricing {
		if p.Size == pet.Size {
			override[p.ServiceID] = p.BasePrice
		}
	}

	multiplier := CoatMultiplier(pet.CoatCondition)

	quote := Quote{Items: make([]LineItem, 0, len(selectedIDs))}
	for _, id := range selectedIDs {
		svc, ok := byID[id]
		if !ok {
			return Quote{}, httperr.ErrBusiness("service_not_found")
		}

		base := svc.Price
		if p, ok := override[id]; ok {
			base = p
		}

		price := roundCurrency(base * multiplier)
		quote.Items = append(quote.Items, LineItem{
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       price,
		})
		quote.Total += price
	}

	quote.Total = roundCurrency(quote.Total)
	return quote, nil
}

// ServicePrice aplica as mesmas regras a um único serviço, usado na
// listagem pública quando o pet já foi escolhido.
func ServicePrice(pet *models.Pet, svc models.Service, pricing []models.ServicePricing) float64 {
	base := svc.Price
	for _, p := range pricing {
		if p.ServiceID == svc.ID && p.Size == pet.Size {
			base = p.BasePrice
			break
		}
	}
	return roundCurrency(base * CoatMultiplier(pet.CoatCondition))
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
