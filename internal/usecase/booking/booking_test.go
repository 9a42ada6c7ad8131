package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	domain "github.com/petcareagenda/petcare-scheduler/internal/domain/scheduling"
	"github.com/petcareagenda/petcare-scheduler/internal/httperr"
	"github.com/petcareagenda/petcare-scheduler/internal/infra/repository"
	"github.com/petcareagenda/petcare-scheduler/internal/models"
	"github.com/petcareagenda/petcare-scheduler/internal/notify"
)

func setupRepo(t *testing.T) (*repository.SchedulingGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Pet{},
		&models.Service{},
		&models.ServicePricing{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AuditLog{},
	))

	return repository.NewSchedulingGormRepository(db), db
}

func auditDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db), zap.NewNop())
}

func notifyDispatcher() *notify.Dispatcher {
	return notify.NewDispatcher(notify.NewWhatsAppNotifier(zap.NewNop()), zap.NewNop())
}

func seedPet(t *testing.T, db *gorm.DB, size, coat string) *models.Pet {
	t.Helper()
	pet := &models.Pet{
		Name:          "Rex",
		Size:          size,
		CoatCondition: coat,
		OwnerName:     "Maria",
		OwnerPhone:    "(11) 99999-0000",
		OwnerEmail:    "maria@example.com",
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64, active bool) *models.Service {
	t.Helper()
	svc := &models.Service{
		Name:            name,
		DurationMinutes: 60,
		Price:           price,
		Active:          active,
	}
	require.NoError(t, db.Create(svc).Error)
	return svc
}

// --------------------------------------------------
// CreateAppointment
// --------------------------------------------------

func TestCreateAppointmentRecomputesTotal(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeMedium, domain.CoatGood)
	banho := seedService(t, db, "Banho", 50, true)
	tosa := seedService(t, db, "Tosa", 80, true)

	// Sobrepõe o preço da tosa para porte médio.
	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceID: tosa.ID,
		Size:      domain.SizeMedium,
		BasePrice: 100,
	}).Error)

	uc := NewCreateAppointment(repo, auditDispatcher(db))
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{banho.ID, tosa.ID},
		Date:       "2026-09-01",
		Time:       "09:00",
	})
	require.NoError(t, err)

	// banho 50*1.1=55, tosa 100*1.1=110
	assert.Equal(t, 165.0, ap.TotalPrice)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Equal(t, "Maria", ap.OwnerName)

	// Junção gravada junto com o agendamento.
	var count int64
	db.Table("appointment_services").Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateAppointmentPetNotFound(t *testing.T) {
	repo, db := setupRepo(t)
	svc := seedService(t, db, "Banho", 50, true)

	uc := NewCreateAppointment(repo, auditDispatcher(db))
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PetID:      999,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "pet_not_found"))
}

func TestCreateAppointmentInactiveServiceFails(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Hidratação", 40, false)

	uc := NewCreateAppointment(repo, auditDispatcher(db))
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	// Nada persistido: nem agendamento, nem linhas de junção.
	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Table("appointment_services").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateAppointmentRejectsBadDate(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Banho", 50, true)

	uc := NewCreateAppointment(repo, auditDispatcher(db))
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "01/09/2026",
		Time:       "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

// --------------------------------------------------
// GetAvailableSlots
// --------------------------------------------------

func TestAvailableSlotsClosedDayIsEmpty(t *testing.T) {
	repo, _ := setupRepo(t)

	uc := NewGetAvailableSlots(repo)
	// 2026-09-06 é domingo; nada configurado.
	slots, err := uc.Execute(context.Background(), "2026-09-06")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Banho", 50, true)

	// 2026-09-01 é terça (weekday 2).
	require.NoError(t, db.Create(&models.WorkingHours{
		DayOfWeek:           2,
		StartTime:           "08:00",
		EndTime:             "10:00",
		Active:              true,
		AppointmentDuration: 30,
	}).Error)

	create := NewCreateAppointment(repo, auditDispatcher(db))
	_, err := create.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "08:30",
	})
	require.NoError(t, err)

	uc := NewGetAvailableSlots(repo)
	slots, err := uc.Execute(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00", "09:30"}, slots)
}

func TestAvailableSlotsCancelledFreesSlot(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Banho", 50, true)

	require.NoError(t, db.Create(&models.WorkingHours{
		DayOfWeek:           2,
		StartTime:           "08:00",
		EndTime:             "09:00",
		Active:              true,
		AppointmentDuration: 30,
	}).Error)

	create := NewCreateAppointment(repo, auditDispatcher(db))
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "08:00",
	})
	require.NoError(t, err)

	status := NewUpdateAppointmentStatus(repo, auditDispatcher(db))
	_, err = status.Execute(context.Background(), ap.ID, "cancelled")
	require.NoError(t, err)

	uc := NewGetAvailableSlots(repo)
	slots, err := uc.Execute(context.Background(), "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "08:30"}, slots)
}

func TestAvailableSlotsRejectsBadDate(t *testing.T) {
	repo, _ := setupRepo(t)

	uc := NewGetAvailableSlots(repo)
	_, err := uc.Execute(context.Background(), "amanhã")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

// --------------------------------------------------
// Status / confirmação
// --------------------------------------------------

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Banho", 50, true)

	create := NewCreateAppointment(repo, auditDispatcher(db))
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "09:00",
	})
	require.NoError(t, err)

	uc := NewUpdateAppointmentStatus(repo, auditDispatcher(db))
	_, err = uc.Execute(context.Background(), ap.ID, "finalizado")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	// O valor rejeitado não altera o status gravado.
	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", stored.Status)
}

func TestConfirmAppointmentSetsStatus(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeSmall, "")
	svc := seedService(t, db, "Banho", 50, true)

	create := NewCreateAppointment(repo, auditDispatcher(db))
	ap, err := create.Execute(context.Background(), CreateAppointmentInput{
		PetID:      pet.ID,
		ServiceIDs: []uint{svc.ID},
		Date:       "2026-09-01",
		Time:       "09:00",
	})
	require.NoError(t, err)

	confirm := NewConfirmAppointment(repo, notifyDispatcher(), auditDispatcher(db))
	confirmed, err := confirm.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", stored.Status)
}

// --------------------------------------------------
// Catálogo público
// --------------------------------------------------

func TestListServicesWithoutPetHidesPrices(t *testing.T) {
	repo, db := setupRepo(t)
	seedService(t, db, "Banho", 50, true)
	seedService(t, db, "Tosa", 80, true)
	seedService(t, db, "Desativado", 30, false)

	uc := NewListServices(repo)
	views, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, 0.0, v.Price)
	}
}

func TestListServicesWithPetAdjustsPrices(t *testing.T) {
	repo, db := setupRepo(t)
	pet := seedPet(t, db, domain.SizeLarge, domain.CoatRegular)
	tosa := seedService(t, db, "Tosa", 80, true)

	require.NoError(t, db.Create(&models.ServicePricing{
		ServiceID: tosa.ID,
		Size:      domain.SizeLarge,
		BasePrice: 120,
	}).Error)

	uc := NewListServices(repo)
	views, err := uc.Execute(context.Background(), &pet.ID)
	require.NoError(t, err)

	require.Len(t, views, 1)
	// 120 * 1.2 (pelagem regular)
	assert.Equal(t, 144.0, views[0].Price)
}
