package scheduling

import (
	"fmt"

	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// GenerateSlots produz os horários livres de um dia a partir da janela de
// atendimento do dia da semana e dos horários já ocupados (agendamentos
// não cancelados). Função pura: toda a aritmética é feita em minutos
// desde a meia-noite e o resultado volta como HH:MM em ordem crescente.
//
// Regras:
//   - dia sem configuração ou inativo → lista vazia (dia fechado, não erro)
//   - o último passo parcial é descartado: nenhum horário ultrapassa o fim
//   - candidato dentro de [break_start, break_end) é excluído
//   - pausa malformada (fim <= início) é ignorada por inteiro
func GenerateSlots(wh *models.WorkingHours, bookedTimes []string) []string {
	slots := []string{}

	if wh == nil || !wh.Active {
		return slots
	}

	start, okStart := parseMinutes(wh.StartTime)
	end, okEnd := parseMinutes(wh.EndTime)
	duration := wh.AppointmentDuration

	if !okStart || !okEnd || duration <= 0 || start >= end {
		return slots
	}

	breakStart, okBreakStart := parseMinutes(wh.BreakStart)
	breakEnd, okBreakEnd := parseMinutes(wh.BreakEnd)
	hasBreak := okBreakStart && okBreakEnd
	if hasBreak && breakEnd <= breakStart {
		hasBreak = false
	}

	booked := make(map[int]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		if m, ok := parseMinutes(t); ok {
			booked[m] = struct{}{}
		}
	}

	for m := start; m+duration <= end; m += duration {
		if hasBreak && m >= breakStart && m < breakEnd {
			continue
		}
		if _, taken := booked[m]; taken {
			continue
		}
		slots = append(slots, formatMinutes(m))
	}

	return slots
}

// parseMinutes converte "HH:MM" em minutos desde a meia-noite.
func parseMinutes(hm string) (int, bool) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
