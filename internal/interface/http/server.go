// Package http exposes the REST API of the school events hub.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mergington-hub/school-events-hub/config"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

// Server wraps the HTTP server with graceful lifecycle management.
type Server struct {
	srv    *http.Server
	log    *logger.Logger
	engine *gin.Engine
}

// ServerConfig contains the server dependencies and settings.
type ServerConfig struct {
	HTTP     config.HTTPConfig
	App      config.AppConfig
	Handlers *Handlers
	Logger   *logger.Logger
}

// NewServer builds the router and wraps it in an HTTP server.
func NewServer(cfg ServerConfig) *Server {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	log = log.With(logger.Component("http"))

	engine := gin.New()
	engine.Use(
		RequestID(),
		Logging(log),
		Recovery(log),
		CORS(cfg.HTTP.AllowedOrigins),
	)

	registerRoutes(engine, cfg.Handlers, cfg.App)

	return &Server{
		srv: &http.Server{
			Addr:         cfg.HTTP.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
		},
		log:    log,
		engine: engine,
	}
}

func registerRoutes(engine *gin.Engine, h *Handlers, app config.AppConfig) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Mergington High School API",
			"version": app.Version,
		})
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	v1 := engine.Group("/api/v1")
	{
		v1.GET("/events", h.listEvents)
		v1.GET("/events/:id", h.getEvent)
		v1.POST("/events/:id/register", h.registerParticipant)
		v1.DELETE("/events/:id/unregister", h.unregisterParticipant)
		v1.POST("/events/:id/attendance", h.markAttendance)
		v1.POST("/events/:id/complete", h.completeEvent)

		v1.GET("/leaderboard", h.getLeaderboard)
		v1.GET("/leaderboard/users/:email", h.getUserRanking)

		v1.GET("/badges", h.listBadges)
		v1.GET("/users/:email/badges", h.getUserBadges)
	}
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start serves requests until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("http server starting", logger.String("addr", s.srv.Addr))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("http server stopping")
	return s.srv.Shutdown(ctx)
}
