package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nagi609/Clinic-Management-System/internal/config"
	"github.com/Nagi609/Clinic-Management-System/internal/email"
	"github.com/Nagi609/Clinic-Management-System/internal/handler"
	activityHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/activity"
	authHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/auth"
	contactHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/contact"
	dashboardHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/dashboard"
	patientHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/patient"
	userHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/user"
	visitHandler "github.com/Nagi609/Clinic-Management-System/internal/handler/visit"
	"github.com/Nagi609/Clinic-Management-System/internal/middleware"
	"github.com/Nagi609/Clinic-Management-System/internal/repository/postgres"
	"github.com/Nagi609/Clinic-Management-System/internal/router"
	activityService "github.com/Nagi609/Clinic-Management-System/internal/service/activity"
	authService "github.com/Nagi609/Clinic-Management-System/internal/service/auth"
	contactService "github.com/Nagi609/Clinic-Management-System/internal/service/contact"
	dashboardService "github.com/Nagi609/Clinic-Management-System/internal/service/dashboard"
	patientService "github.com/Nagi609/Clinic-Management-System/internal/service/patient"
	userService "github.com/Nagi609/Clinic-Management-System/internal/service/user"
	visitService "github.com/Nagi609/Clinic-Management-System/internal/service/visit"
	"github.com/Nagi609/Clinic-Management-System/internal/worker"
	"github.com/Nagi609/Clinic-Management-System/pkg/authn"
	"github.com/Nagi609/Clinic-Management-System/pkg/messaging/redis"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	clinicContactRepo := postgres.NewClinicContactRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)

	// Optional event publishing
	var publisher activityService.Publisher
	if cfg.Redis.Enabled {
		redisPub, err := redis.NewPublisher(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisPub.Close()
		publisher = redisPub
	}

	// Optional outbound email
	var emailSvc email.Service
	if cfg.SMTP.Enabled {
		emailSvc = email.NewSMTPService(cfg.SMTP)
	}

	// Services
	tokens := authn.NewService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	activitySvc := activityService.NewService(activityRepo, publisher)
	authSvc := authService.NewService(userRepo, tokens, emailSvc)
	patientSvc := patientService.NewService(patientRepo, activitySvc)
	visitSvc := visitService.NewService(visitRepo, patientRepo, activitySvc)
	contactSvc := contactService.NewService(contactRepo, clinicContactRepo)
	userSvc := userService.NewService(userRepo)
	dashboardSvc := dashboardService.NewService(dashboardRepo, cfg.Dashboard.CacheTTL)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(tokens)
	healthH := handler.NewHealthHandler(db)

	r := router.NewRouter(
		authMiddleware,
		healthH,
		authHandler.NewHandler(authSvc),
		[]router.Handler{
			patientHandler.NewHandler(patientSvc),
			visitHandler.NewHandler(visitSvc),
			contactHandler.NewHandler(contactSvc),
			activityHandler.NewHandler(activitySvc),
			dashboardHandler.NewHandler(dashboardSvc),
			userHandler.NewHandler(userSvc),
		},
		router.Config{
			RateLimit: middleware.RateLimiterConfig{
				RPS:   cfg.RateLimit.RequestsPerSecond,
				Burst: cfg.RateLimit.Burst,
			},
			CORSConfig: middleware.DefaultCORSConfig(),
		},
	)
	r.Setup()

	// Background retention worker
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()
	cleanupWorker := worker.NewActivityCleanupWorker(activityRepo, cfg.Activity.RetentionDays, cfg.Activity.CleanupInterval)
	go cleanupWorker.Start(workerCtx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancelWorker()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownWindow)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
