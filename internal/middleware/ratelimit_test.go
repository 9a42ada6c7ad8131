package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

func rateLimitDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RateLimit{}))
	return db
}

func rateLimitRouter(db *gorm.DB, rule RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", RateLimit(db, zap.NewNop(), rule), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitWithinWindow(t *testing.T) {
	db := rateLimitDB(t)
	r := rateLimitRouter(db, RateLimitRule{MaxRequests: 3, WindowSeconds: 60, KeyPrefix: "test"})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r), "request %d should pass", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}

func TestRateLimitExpiredWindowResets(t *testing.T) {
	db := rateLimitDB(t)
	rule := RateLimitRule{MaxRequests: 1, WindowSeconds: 60, KeyPrefix: "test"}
	r := rateLimitRouter(db, rule)

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))

	// Janela vencida no passado → próxima requisição recomeça a contagem.
	require.NoError(t, db.Model(&models.RateLimit{}).
		Where("1 = 1").
		Update("reset_at", 1).Error)

	assert.Equal(t, http.StatusOK, hit(r))
}

func TestRateLimitFailsOpenOnStorageError(t *testing.T) {
	db := rateLimitDB(t)
	// Derruba a tabela para forçar erro de armazenamento.
	require.NoError(t, db.Migrator().DropTable(&models.RateLimit{}))

	r := rateLimitRouter(db, RuleLogin)
	assert.Equal(t, http.StatusOK, hit(r))
}

func TestCleanupRateLimits(t *testing.T) {
	db := rateLimitDB(t)

	require.NoError(t, db.Create(&models.RateLimit{Key: "old", Requests: 5, ResetAt: 1}).Error)
	require.NoError(t, db.Create(&models.RateLimit{Key: "new", Requests: 1, ResetAt: 9999999999}).Error)

	require.NoError(t, CleanupRateLimits(db))

	var count int64
	db.Model(&models.RateLimit{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
