package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type BusinessConfigHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewBusinessConfigHandler(db *gorm.DB) *BusinessConfigHandler {
	return &BusinessConfigHandler{
		db:    db,
		audit: audit.New(db),
	}
}

type BusinessConfigRequest struct {
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	WhatsApp     string `json:"whatsapp"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Instagram    string `json:"instagram"`
	Description  string `json:"description"`

	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`

	BusinessHoursDisplay string `json:"business_hours_display"`
}

// Get devolve a configuração do petshop; antes do primeiro save valem
// os padrões de exibição.
func (h *BusinessConfigHandler) Get(c *gin.Context) {
	var cfg models.BusinessConfig
	err := h.db.First(&cfg, models.BusinessConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpresp.OK(c, defaultBusinessConfig())
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_config", "Erro ao carregar configuração.")
		return
	}

	httpresp.OK(c, cfg)
}

func (h *BusinessConfigHandler) Save(c *gin.Context) {
	var req BusinessConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg := models.BusinessConfig{
		ID:                   models.BusinessConfigID,
		BusinessName:         req.BusinessName,
		Phone:                req.Phone,
		WhatsApp:             req.WhatsApp,
		Email:                req.Email,
		Address:              req.Address,
		Instagram:            req.Instagram,
		Description:          req.Description,
		LogoURL:              req.LogoURL,
		PrimaryColor:         req.PrimaryColor,
		SecondaryColor:       req.SecondaryColor,
		BusinessHoursDisplay: req.BusinessHoursDisplay,
	}

	err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&cfg).Error
	if err != nil {
		httperr.Internal(c, "failed_to_save_config", "Erro ao salvar configuração.")
		return
	}

	id := cfg.ID
	auditAdminAction(c, h.audit, "business_config_saved", "business_config", &id)

	httpresp.OK(c, cfg)
}

func defaultBusinessConfig() models.BusinessConfig {
	return models.BusinessConfig{
		ID:             models.BusinessConfigID,
		BusinessName:   "Pet Care Agenda",
		PrimaryColor:   "#2563EB",
		SecondaryColor: "#F59E0B",
	}
}
