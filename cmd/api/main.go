package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shareit/config"
	_ "shareit/docs" // Swagger docs
	"shareit/internal/httpserver"
	"shareit/internal/middleware"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
	"shareit/pkg/postgres"
	"shareit/pkg/scope"
)

// @title       ShareIt API
// @description Peer-to-peer item sharing: users, items, item requests and bookings.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ShareIt...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clock
	clock, err := datemath.NewClock(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		clock, _ = datemath.NewClock("UTC")
	}

	// 4. PostgreSQL
	db, err := postgres.Connect(ctx, postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		applied, err := postgres.Migrate(ctx, db)
		if err != nil {
			logger.Error(ctx, "Failed to migrate database: ", err)
			return
		}
		logger.Infof(ctx, "Migrations applied: %v", applied)
	}

	// 5. Bearer tokens (optional)
	var jwtManager scope.Manager
	if cfg.JWT.Secret != "" {
		jwtManager = scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
		logger.Info(ctx, "Bearer token identity enabled")
	} else {
		logger.Info(ctx, "JWT secret not configured, accepting X-Sharer-User-Id only")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		Clock:       clock,
		JWTManager:  jwtManager,
		Middleware: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			AllowedOrigins:  cfg.CORS.AllowedOrigins,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
