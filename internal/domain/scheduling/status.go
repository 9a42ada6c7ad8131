package scheduling

// ===============================
// Status do agendamento
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValidStatus valida contra o enum de 5 valores; qualquer outra coisa
// é rejeitada na borda HTTP com 400.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus é o estado de todo agendamento recém-criado.
func InitialStatus() Status {
	return StatusScheduled
}
