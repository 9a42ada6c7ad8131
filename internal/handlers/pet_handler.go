package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/validators"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePetRequest struct {
	Name  string `json:"name" binding:"required"`
	Breed string `json:"breed"`
	Size  string `json:"size" binding:"required"`

	WeightKg *float64 `json:"weight_kg"`
	AgeYears *int     `json:"age_years"`

	SpecialNotes string `json:"special_notes"`
	PhotoURL     string `json:"photo_url"`

	CoatCondition string `json:"coat_condition"`
	CoatNotes     string `json:"coat_notes"`

	OwnerName  string `json:"owner_name" binding:"required"`
	OwnerPhone string `json:"owner_phone" binding:"required"`
	OwnerEmail string `json:"owner_email"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}
	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !domain.IsValidSize(req.Size) {
		httperr.BadRequest(c, "invalid_size", "Porte inválido.")
		return
	}
	if req.CoatCondition != "" && !domain.IsValidCoatCondition(req.CoatCondition) {
		httperr.BadRequest(c, "invalid_coat_condition", "Condição de pelagem inválida.")
		return
	}
	if req.OwnerEmail != "" && !validators.IsEmailFormatValid(req.OwnerEmail) {
		httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
		return
	}

	pet := models.Pet{
		Name:          req.Name,
		Breed:         req.Breed,
		Size:          req.Size,
		WeightKg:      req.WeightKg,
		AgeYears:      req.AgeYears,
		SpecialNotes:  req.SpecialNotes,
		PhotoURL:      req.PhotoURL,
		CoatCondition: req.CoatCondition,
		CoatNotes:     req.CoatNotes,
		OwnerName:     req.OwnerName,
		OwnerPhone:    req.OwnerPhone,
		OwnerEmail:    req.OwnerEmail,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Erro ao cadastrar pet.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}
