package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/httpresp"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Logger
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{
		db:    db,
		audit: audit.New(db),
	}
}

type WorkingHoursEntry struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"is_active"`

	AppointmentDuration int `json:"appointment_duration"`

	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type ReplaceWorkingHoursRequest struct {
	Hours []WorkingHoursEntry `json:"hours" binding:"required"`
}

func (h *WorkingHoursHandler) List(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.Order("day_of_week ASC").Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Erro ao listar horários.")
		return
	}
	httpresp.List(c, hours)
}

// Replace substitui a grade inteira de uma vez: apagar e regravar numa
// transação evita estados parciais entre dias.
func (h *WorkingHoursHandler) Replace(c *gin.Context) {
	var req ReplaceWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, entry := range req.Hours {
		if entry.DayOfWeek < 0 || entry.DayOfWeek > 6 {
			httperr.BadRequest(c, "invalid_day_of_week", "Dia da semana inválido.")
			return
		}
		// Dia inativo pode vir sem horários; dia ativo precisa de uma
		// janela consistente, senão o calendário fica mudo sem aviso.
		if !entry.Active {
			continue
		}

		start, okStart := parseClock(entry.StartTime)
		end, okEnd := parseClock(entry.EndTime)
		if !okStart || !okEnd || !start.Before(end) {
			httperr.BadRequest(c, "invalid_time_window", "Janela de atendimento inválida.")
			return
		}
		if entry.AppointmentDuration <= 0 {
			httperr.BadRequest(c, "invalid_appointment_duration", "Duração de atendimento inválida.")
			return
		}

		if entry.BreakStart != "" || entry.BreakEnd != "" {
			breakStart, okBS := parseClock(entry.BreakStart)
			breakEnd, okBE := parseClock(entry.BreakEnd)
			if !okBS || !okBE || !breakStart.Before(breakEnd) {
				httperr.BadRequest(c, "invalid_break_window", "Pausa inválida.")
				return
			}
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Hours {
			wh := models.WorkingHours{
				DayOfWeek:           entry.DayOfWeek,
				StartTime:           entry.StartTime,
				EndTime:             entry.EndTime,
				Active:              entry.Active,
				AppointmentDuration: entry.AppointmentDuration,
				BreakStart:          entry.BreakStart,
				BreakEnd:            entry.BreakEnd,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horários.")
		return
	}

	auditAdminAction(c, h.audit, "working_hours_replaced", "working_hours", nil)

	httpresp.Success(c, "")
}

func parseClock(hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	return t, err == nil
}
