package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/datemath"
	"shareit/pkg/log"
	"shareit/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB *sql.DB
	clock      *datemath.Clock
	jwtManager scope.Manager
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Clock      *datemath.Clock

	// JWTManager is optional. Without it only the identity header is accepted.
	JWTManager scope.Manager
	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		clock:       cfg.Clock,
		jwtManager:  cfg.JWTManager,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.clock == nil {
		return errors.New("clock is required")
	}
	return nil
}
