package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/dto"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	create       *booking.CreateAppointment
	confirm      *booking.ConfirmAppointment
	updateStatus *booking.UpdateAppointmentStatus
	updateNotes  *booking.UpdateAppointmentNotes
	slots        *booking.GetAvailableSlots
}

func NewAppointmentHandler(
	db *gorm.DB,
	create *booking.CreateAppointment,
	confirm *booking.ConfirmAppointment,
	updateStatus *booking.UpdateAppointmentStatus,
	updateNotes *booking.UpdateAppointmentNotes,
	slots *booking.GetAvailableSlots,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		create:       create,
		confirm:      confirm,
		updateStatus: updateStatus,
		updateNotes:  updateNotes,
		slots:        slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PetID      uint   `json:"pet_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`

	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	OwnerEmail string `json:"owner_email"`

	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`

	Notes string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar horários.")
		return
	}

	// Array ordenado de HH:MM, sem envelope: é o contrato do calendário.
	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		PetID:      req.PetID,
		ServiceIDs: req.ServiceIDs,
		OwnerName:  req.OwnerName,
		OwnerPhone: req.OwnerPhone,
		OwnerEmail: req.OwnerEmail,
		Date:       req.AppointmentDate,
		Time:       req.AppointmentTime,
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "pet_not_found"):
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case httperr.IsBusiness(err, "no_services_selected"):
			httperr.BadRequest(c, "no_services_selected", "Selecione ao menos um serviço.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	query := h.db.
		Preload("Pet").
		Preload("Services").
		Order("appointment_date ASC, appointment_time ASC")

	if date := c.Query("date"); date != "" {
		query = query.Where("appointment_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := query.Find(&aps).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	views := make([]dto.AppointmentDetailsDTO, 0, len(aps))
	for _, ap := range aps {
		views = append(views, dto.FromAppointment(ap))
	}

	httpresp.List(c, views)
}

// ======================================================
// STATUS / CONFIRM / NOTES
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := h.updateStatus.Execute(c.Request.Context(), id, req.Status); err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		return
	}

	httpresp.Success(c, "")
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if _, err := h.confirm.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_confirm", "Erro ao confirmar agendamento.")
		return
	}

	httpresp.Success(c, "")
}

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := h.updateNotes.Execute(c.Request.Context(), id, req.Notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_notes", "Erro ao atualizar observações.")
		return
	}

	httpresp.Success(c, "")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
