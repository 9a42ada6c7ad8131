package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/petcareagenda/petcare-scheduler/internal/config"
	dbpkg "github.com/petcareagenda/petcare-scheduler/internal/db"
	"github.com/petcareagenda/petcare-scheduler/internal/logger"
	"github.com/petcareagenda/petcare-scheduler/internal/middleware"
	"github.com/petcareagenda/petcare-scheduler/internal/routes"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zlog := logger.New(cfg.Environment)
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, zlog)

	// Janelas de rate limit vencidas não se apagam sozinhas.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := middleware.CleanupRateLimits(db); err != nil {
				zlog.Warn("rate limit cleanup failed", zap.Error(err))
			}
		}
	}()

	zlog.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("env", cfg.Environment),
	)

	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
