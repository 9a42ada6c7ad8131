package models

// RateLimit é um contador de janela fixa por chave (prefixo:endpoint:ip),
// persistido para sobreviver a múltiplas instâncias do processo.
type RateLimit struct {
	Key           string `gorm:"primaryKey;size:255"`
	Requests      int
	ResetAt       int64 `gorm:"index"`
	LastRequestAt int64
}
