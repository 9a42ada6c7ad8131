package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

// RateLimitRule é uma janela fixa por chave cliente+endpoint.
type RateLimitRule struct {
	MaxRequests   int
	WindowSeconds int64
	KeyPrefix     string
}

// Regras dos endpoints sensíveis.
var (
	RuleLogin       = RateLimitRule{MaxRequests: 5, WindowSeconds: 60, KeyPrefix: "login"}
	RuleRegister    = RateLimitRule{MaxRequests: 3, WindowSeconds: 300, KeyPrefix: "register"}
	RuleAppointment = RateLimitRule{MaxRequests: 10, WindowSeconds: 60, KeyPrefix: "appointment"}
	RuleOTP         = RateLimitRule{MaxRequests: 5, WindowSeconds: 60, KeyPrefix: "otp"}
	RuleOTPVerify   = RateLimitRule{MaxRequests: 10, WindowSeconds: 60, KeyPrefix: "otp_verify"}
)

// RateLimit limita requisições com contadores persistidos (janela fixa).
// Erro de armazenamento libera a requisição (fail-open): indisponibilidade
// de infra não pode negar usuários legítimos; o erro fica no log.
func RateLimit(db *gorm.DB, log *zap.Logger, rule RateLimitRule) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", rule.KeyPrefix, c.ClientIP())

		allowed, err := checkRateLimit(db, key, rule)
		if err != nil {
			log.Warn("rate limit storage error, allowing request",
				zap.String("key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições. Tente novamente em instantes.")
			c.Abort()
			return
		}

		c.Next()
	}
}

func checkRateLimit(db *gorm.DB, key string, rule RateLimitRule) (bool, error) {
	now := time.Now().Unix()
	resetAt := now + rule.WindowSeconds

	var existing models.RateLimit
	err := db.
		Where("key = ? AND reset_at > ?", key, now).
		First(&existing).Error

	switch {
	case err == nil:
		if existing.Requests >= rule.MaxRequests {
			return false, nil
		}
		return true, db.Model(&models.RateLimit{}).
			Where("key = ?", key).
			Updates(map[string]any{
				"requests":        gorm.Expr("requests + 1"),
				"last_request_at": now,
			}).Error

	case err == gorm.ErrRecordNotFound:
		// Janela nova (ou expirada): zera o contador.
		return true, db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"requests":        1,
				"reset_at":        resetAt,
				"last_request_at": now,
			}),
		}).Create(&models.RateLimit{
			Key:           key,
			Requests:      1,
			ResetAt:       resetAt,
			LastRequestAt: now,
		}).Error

	default:
		return true, err
	}
}

// CleanupRateLimits remove janelas expiradas; chamado periodicamente.
func CleanupRateLimits(db *gorm.DB) error {
	return db.
		Where("reset_at < ?", time.Now().Unix()).
		Delete(&models.RateLimit{}).Error
}
