package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"focusflow/internal/focus"
	"focusflow/internal/task"
	"focusflow/pkg/log"
)

// DefaultShutdownTimeout bounds graceful shutdown when Config leaves it unset.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage, pinged by /ready
	db *sql.DB

	// Domains
	taskUC  task.UseCase
	focusUC focus.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB      *sql.DB
	TaskUC  task.UseCase
	FocusUC focus.UseCase
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		taskUC:          cfg.TaskUC,
		focusUC:         cfg.FocusUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = DefaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
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
	if srv.taskUC == nil || srv.focusUC == nil {
		return errors.New("task and focus use cases are required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
