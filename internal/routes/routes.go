package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/petcareagenda/petcare-scheduler/internal/audit"
	"github.com/petcareagenda/petcare-scheduler/internal/config"
	"github.com/petcareagenda/petcare-scheduler/internal/handlers"
	infraRepo "github.com/petcareagenda/petcare-scheduler/internal/infra/repository"
	"github.com/petcareagenda/petcare-scheduler/internal/middleware"
	"github.com/petcareagenda/petcare-scheduler/internal/notify"
	"github.com/petcareagenda/petcare-scheduler/internal/otp"
	"github.com/petcareagenda/petcare-scheduler/internal/storage"
	"github.com/petcareagenda/petcare-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	notifyDispatcher := notify.NewDispatcher(notify.NewWhatsAppNotifier(log), log)

	var otpStore otp.CodeStore
	if cfg.RedisAddr != "" {
		otpStore = otp.NewRedisStore(cfg.RedisAddr)
	} else {
		otpStore = otp.NewMemoryStore()
	}

	objectStorage := storage.NewS3Storage(cfg)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := booking.NewCreateAppointment(schedulingRepo, auditDispatcher)
	confirmAppointmentUC := booking.NewConfirmAppointment(schedulingRepo, notifyDispatcher, auditDispatcher)
	updateStatusUC := booking.NewUpdateAppointmentStatus(schedulingRepo, auditDispatcher)
	updateNotesUC := booking.NewUpdateAppointmentNotes(schedulingRepo)
	availableSlotsUC := booking.NewGetAvailableSlots(schedulingRepo)
	listServicesUC := booking.NewListServices(schedulingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	petHandler := handlers.NewPetHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, listServicesUC)
	pricingHandler := handlers.NewPricingHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	businessConfigHandler := handlers.NewBusinessConfigHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		confirmAppointmentUC,
		updateStatusUC,
		updateNotesUC,
		availableSlotsUC,
	)

	otpHandler := handlers.NewOTPHandler(otpStore, cfg, log)
	uploadHandler := handlers.NewUploadHandler(objectStorage, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (fluxo do tutor)
		// ------------------------------
		api.GET("/services", serviceHandler.ListPublic)
		api.GET("/available-slots", appointmentHandler.AvailableSlots)

		api.GET("/pets", petHandler.List)
		api.POST("/pets", petHandler.Create)

		api.POST("/appointments",
			middleware.RateLimit(db, log, middleware.RuleAppointment),
			appointmentHandler.Create,
		)
		api.GET("/appointments", appointmentHandler.List)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)

		api.POST("/otp/send",
			middleware.RateLimit(db, log, middleware.RuleOTP),
			otpHandler.Send,
		)
		api.POST("/otp/verify",
			middleware.RateLimit(db, log, middleware.RuleOTPVerify),
			otpHandler.Verify,
		)

		api.POST("/upload-pet-photo", uploadHandler.UploadPetPhoto)
		api.GET("/files/*key", uploadHandler.ServeFile)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register",
			middleware.RateLimit(db, log, middleware.RuleRegister),
			authHandler.Register,
		)
		api.POST("/auth/login",
			middleware.RateLimit(db, log, middleware.RuleLogin),
			authHandler.Login,
		)

		// ------------------------------
		// 🔐 API PRIVADA (painel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Me)

			admin := secured.Group("/admin")
			{
				admin.GET("/services", serviceHandler.ListAdmin)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/service-pricing", pricingHandler.List)
				admin.POST("/service-pricing", pricingHandler.Upsert)

				admin.GET("/working-hours", workingHoursHandler.List)
				admin.POST("/working-hours", workingHoursHandler.Replace)

				admin.GET("/business-config", businessConfigHandler.Get)
				admin.POST("/business-config", businessConfigHandler.Save)

				admin.POST("/upload-business-logo", uploadHandler.UploadBusinessLogo)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
