package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/middleware"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/usecase/booking"
)

type ServiceHandler struct {
	db           *gorm.DB
	audit        *audit.Logger
	listServices *booking.ListServices
}

func NewServiceHandler(db *gorm.DB, listServices *booking.ListServices) *ServiceHandler {
	return &ServiceHandler{
		db:           db,
		audit:        audit.New(db),
		listServices: listServices,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes" binding:"required"`
	Price           float64 `json:"price"`
	Active          *bool   `json:"is_active"`
}

// ======================================================
// PUBLIC
// ======================================================

// ListPublic devolve o catálogo ativo. Com ?pet_id o preço vem ajustado
// ao porte e à pelagem do pet; sem pet o preço fica zerado, porque o
// valor real depende do animal.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	var petID *uint
	if raw := c.Query("pet_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_pet_id", "Pet inválido.")
			return
		}
		v := uint(id)
		petID = &v
	}

	views, err := h.listServices.Execute(c.Request.Context(), petID)
	if err != nil {
		if httperr.IsBusiness(err, "pet_not_found") {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	// O catálogo público é um array puro; o envelope {data,total} fica
	// restrito às listagens do painel.
	httpresp.OK(c, views)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *ServiceHandler) ListAdmin(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	auditAdminAction(c, h.audit, "service_created", "service", &svc.ID)

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMinutes = req.DurationMinutes
	svc.Price = req.Price
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	auditAdminAction(c, h.audit, "service_updated", "service", &svc.ID)

	httpresp.OK(c, svc)
}

// Delete remove o serviço e a tabela de preços por porte associada;
// agendamentos antigos preservam o total já calculado.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", svc.ID).Delete(&models.ServicePricing{}).Error; err != nil {
			return err
		}
		return tx.Delete(&svc).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	auditAdminAction(c, h.audit, "service_deleted", "service", &svc.ID)

	httpresp.Success(c, "")
}

// auditAdminAction registra a ação do painel com o usuário autenticado.
func auditAdminAction(c *gin.Context, logger *audit.Logger, action, entity string, entityID *uint) {
	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	_ = logger.Log(userID, action, entity, entityID, nil)
}
