package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minimal_api/internal/config"
	"minimal_api/internal/handler"
	"minimal_api/internal/logger"
	"minimal_api/internal/metrics"
	"minimal_api/internal/repository"
	"minimal_api/internal/seed"
	"minimal_api/internal/service"
	"minimal_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "minimal-api"
	version         = "v1"
	shutdownTimeout = 5 * time.Second
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(logger.Config{
		Env:         cfg.LogEnv,
		Level:       cfg.LogLevel,
		ServiceName: serviceName,
		Version:     version,
	})
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server stopped with error", zap.Error(err))
	}
	logg.Info("server exiting")
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.JWTSecret == "" {
		logg.Warn("JWT_SECRET_KEY is empty, logins will fail and every token will be rejected")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// --- Migrations ---
	if cfg.AutoMigrate {
		if err := config.RunMigrations(ctx, dbPool, logg); err != nil {
			return err
		}
	}

	// --- Repositories & Services ---
	adminService := service.NewAdministratorService(repository.NewAdministratorRepository(dbPool), cfg.PasswordHashing)
	vehicleService := service.NewVehicleService(repository.NewVehicleRepository(dbPool))

	if cfg.SeedFile != "" {
		if err := seed.Run(ctx, adminService, cfg.SeedFile, logg); err != nil {
			return err
		}
	}

	// --- Router ---
	router := handler.NewRouter(handler.RouterDeps{
		Logger:         logg,
		Metrics:        metrics.New(),
		JWT:            utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours),
		DB:             dbPool,
		Administrators: adminService,
		Vehicles:       vehicleService,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
