// Package server exposes the tutoring pipeline over HTTP.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/metrics"
	"github.com/abhisek/mathcoach/internal/tutor"
)

// Server holds the HTTP surface of the service.
type Server struct {
	svc     *tutor.Service
	metrics *metrics.Metrics
	logger  *zap.Logger
	engine  *gin.Engine
}

// New builds the server with all routes and middleware registered.
// corsOrigins may be empty (no cross-origin access). m may be nil.
func New(svc *tutor.Service, m *metrics.Metrics, logger *zap.Logger, corsOrigins []string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		svc:     svc,
		metrics: m,
		logger:  logger,
		engine:  gin.New(),
	}

	s.engine.Use(recovery(logger), requestLogger(logger))

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
		s.engine.Use(cors.New(corsCfg))
	}

	s.registerRoutes()
	return s
}

// Handler returns the root HTTP handler, for http.Server and tests.
func (s *Server) Handler() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.healthz)
	if s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := s.engine.Group("/api")
	{
		api.POST("/problems", s.generateProblem)
		api.POST("/hints", s.requestHint)

		api.POST("/sessions", s.createSession)
		api.GET("/sessions", s.listSessions)
		api.GET("/sessions/:id", s.getSession)
		api.POST("/sessions/:id/submissions", s.submitAnswer)
		api.PUT("/sessions/:id/hint", s.attachHint)
	}
}
