package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type PricingHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewPricingHandler(db *gorm.DB) *PricingHandler {
	return &PricingHandler{
		db:    db,
		audit: audit.New(db),
	}
}

type UpsertPricingRequest struct {
	ServiceID uint    `json:"service_id" binding:"required"`
	Size      string  `json:"size" binding:"required"`
	BasePrice float64 `json:"base_price"`
}

func (h *PricingHandler) List(c *gin.Context) {
	var pricing []models.ServicePricing
	if err := h.db.Order("service_id ASC, size ASC").Find(&pricing).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pricing", "Erro ao listar preços.")
		return
	}
	httpresp.List(c, pricing)
}

// Upsert grava o preço por porte; a chave natural é (service_id, size),
// então salvar de novo sobrescreve a linha existente.
func (h *PricingHandler) Upsert(c *gin.Context) {
	var req UpsertPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !domain.IsValidSize(req.Size) {
		httperr.BadRequest(c, "invalid_size", "Porte inválido.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, req.ServiceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	entry := models.ServicePricing{
		ServiceID: req.ServiceID,
		Size:      req.Size,
		BasePrice: req.BasePrice,
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_id"}, {Name: "size"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_price", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		httperr.Internal(c, "failed_to_save_pricing", "Erro ao salvar preço.")
		return
	}

	auditAdminAction(c, h.audit, "service_pricing_saved", "service_pricing", &entry.ID)

	httpresp.OK(c, entry)
}
