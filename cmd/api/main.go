package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/mediblues/directory-api/internal/config"
	"github.com/mediblues/directory-api/internal/email"
	"github.com/mediblues/directory-api/internal/handler"
	appointmentHandler "github.com/mediblues/directory-api/internal/handler/appointment"
	authHandler "github.com/mediblues/directory-api/internal/handler/auth"
	bannerHandler "github.com/mediblues/directory-api/internal/handler/banner"
	contactHandler "github.com/mediblues/directory-api/internal/handler/contact"
	departmentHandler "github.com/mediblues/directory-api/internal/handler/department"
	doctorHandler "github.com/mediblues/directory-api/internal/handler/doctor"
	locationHandler "github.com/mediblues/directory-api/internal/handler/location"
	packageHandler "github.com/mediblues/directory-api/internal/handler/packages"
	statisticsHandler "github.com/mediblues/directory-api/internal/handler/statistics"
	"github.com/mediblues/directory-api/internal/middleware"
	"github.com/mediblues/directory-api/internal/repository/postgres"
	"github.com/mediblues/directory-api/internal/router"
	appointmentService "github.com/mediblues/directory-api/internal/service/appointment"
	authService "github.com/mediblues/directory-api/internal/service/auth"
	bannerService "github.com/mediblues/directory-api/internal/service/banner"
	contactService "github.com/mediblues/directory-api/internal/service/contact"
	departmentService "github.com/mediblues/directory-api/internal/service/department"
	doctorService "github.com/mediblues/directory-api/internal/service/doctor"
	locationService "github.com/mediblues/directory-api/internal/service/location"
	packageService "github.com/mediblues/directory-api/internal/service/packages"
	statisticsService "github.com/mediblues/directory-api/internal/service/statistics"
	"github.com/mediblues/directory-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})
	log := appLogger.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := postgres.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed defaults")
	}

	if err := handler.RegisterValidations(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validations")
	}

	// Repositories
	locationRepo := postgres.NewLocationRepository(db)
	departmentRepo := postgres.NewDepartmentRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	packageRepo := postgres.NewPackageRepository(db)
	bannerRepo := postgres.NewBannerRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	// Services
	notifier := email.NewService(cfg.SMTP, log)
	locationSvc := locationService.NewService(locationRepo)
	departmentSvc := departmentService.NewService(departmentRepo, locationRepo)
	doctorSvc := doctorService.NewService(doctorRepo, departmentRepo)
	appointmentSvc := appointmentService.NewService(
		appointmentRepo, locationRepo, departmentRepo, doctorRepo, packageRepo, notifier, log,
	)
	packageSvc := packageService.NewService(packageRepo)
	bannerSvc := bannerService.NewService(bannerRepo)
	contactSvc := contactService.NewService(contactRepo)
	statisticsSvc := statisticsService.NewService(
		appointmentRepo, locationRepo, departmentRepo, doctorRepo, packageRepo,
	)
	authSvc := authService.NewService(cfg.JWT, cfg.Admin, log)

	// Handlers
	authH := authHandler.NewHandler(authSvc)
	locationH := locationHandler.NewHandler(locationSvc)
	departmentH := departmentHandler.NewHandler(departmentSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	packageH := packageHandler.NewHandler(packageSvc)
	bannerH := bannerHandler.NewHandler(bannerSvc)
	contactH := contactHandler.NewHandler(contactSvc)
	statisticsH := statisticsHandler.NewHandler(statisticsSvc)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	if len(cfg.CORS.AllowedMethods) > 0 {
		corsCfg.AllowMethods = cfg.CORS.AllowedMethods
	}
	if len(cfg.CORS.AllowedHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.CORS.AllowedHeaders
	}

	r := router.NewRouter(
		middleware.NewAuthMiddleware(authSvc),
		handler.NewHealthHandler(db),
		log,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimit:        rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:        cfg.RateLimit.Burst,
			CORS:             corsCfg,
		},
		[]router.PublicHandler{
			authH, locationH, departmentH, doctorH, appointmentH, packageH, bannerH, contactH,
		},
		[]router.AdminHandler{
			authH, locationH, departmentH, doctorH, appointmentH, packageH, bannerH, contactH, statisticsH,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownSec)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
