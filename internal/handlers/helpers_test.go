package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	"github.com/petcareagenda/petcare-scheduler/internal/config"
	infraRepo "github.com/petcareagenda/petcare-scheduler/internal/infra/repository"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/notify"
	"github.com/petcareagenda/petcare-scheduler/internal/usecase/booking"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.BusinessConfig{},
		&models.User{},
		&models.Service{},
		&models.ServicePricing{},
		&models.WorkingHours{},
		&models.Pet{},
		&models.Appointment{},
		&models.AuditLog{},
		&models.RateLimit{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		Environment: "development",
	}
}

// bookingRouter monta as rotas públicas de agendamento contra o banco de
// teste, sem rate limit para não interferir nas repetições.
func bookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := infraRepo.NewSchedulingGormRepository(db)
	log := zap.NewNop()

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	notifyDispatcher := notify.NewDispatcher(notify.NewWhatsAppNotifier(log), log)

	appointmentHandler := NewAppointmentHandler(
		db,
		booking.NewCreateAppointment(repo, auditDispatcher),
		booking.NewConfirmAppointment(repo, notifyDispatcher, auditDispatcher),
		booking.NewUpdateAppointmentStatus(repo, auditDispatcher),
		booking.NewUpdateAppointmentNotes(repo),
		booking.NewGetAvailableSlots(repo),
	)
	serviceHandler := NewServiceHandler(db, booking.NewListServices(repo))
	petHandler := NewPetHandler(db)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/available-slots", appointmentHandler.AvailableSlots)
		api.GET("/pets", petHandler.List)
		api.POST("/pets", petHandler.Create)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	return performRequest(r, doJSONRequest(method, path, body))
}

func doJSONRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// memStorage implementa ObjectStorage em memória para os testes de upload.
type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *memStorage) Put(_ context.Context, key, contentType string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	m.types[key] = contentType
	return nil
}

func (m *memStorage) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, "", errNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), m.types[key], nil
}

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "object not found" }
