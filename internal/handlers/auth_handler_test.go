package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/middleware"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
)

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	authHandler := NewAuthHandler(db, cfg)
	meHandler := NewMeHandler(db)

	r := gin.New()
	r.POST("/api/auth/login", authHandler.Login)

	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(cfg))
	secured.GET("/me", meHandler.Me)

	return r
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Dona do Petshop",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "professional",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLoginAndMe(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "dona@petshop.com", "segredo123")
	r := authRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "dona@petshop.com",
		"password": "segredo123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "dona@petshop.com", resp.User.Email)

	req := doJSONRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec := performRequest(r, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	db := testDB(t)
	seedUser(t, db, "dona@petshop.com", "segredo123")
	r := authRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "dona@petshop.com",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUserIs401(t *testing.T) {
	db := testDB(t)
	r := authRouter(db)

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "ninguem@petshop.com",
		"password": "tanto-faz",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithoutTokenIs401(t *testing.T) {
	db := testDB(t)
	r := authRouter(db)

	req := doJSONRequest(http.MethodGet, "/api/me", nil)
	rec := performRequest(r, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
