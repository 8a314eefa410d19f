// Package web serves the portfolio page and streams preloader runs to browsers.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/content"
	"github.com/arliss/portfolio/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP host.
type Server struct {
	config  *config.Config
	profile content.Profile
	engine  *gin.Engine
	log     *zap.Logger
}

// New builds the router.
func New(cfg *config.Config) (*Server, error) {
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	gin.SetMode(cfg.Server.GinMode)
	s := &Server{
		config:  cfg,
		profile: content.ProfileFrom(cfg.Profile),
		engine:  gin.New(),
		log:     logger.Named("web"),
	}

	s.engine.SetHTMLTemplate(page)
	s.engine.Use(gin.Recovery(), requestLogger(s.log), cors())

	s.engine.GET("/", handleIndex(s))
	s.engine.GET("/healthz", handleHealthCheck())

	v1 := s.engine.Group("/api/v1")
	{
		v1.GET("/preloader/stream", handlePreloaderStream(s))
		v1.GET("/colors/random", handleRandomColors())
		v1.GET("/contrast", handleContrast())
		v1.GET("/patterns", handlePatternList())
		v1.GET("/patterns/:id", handlePattern())
	}
	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Next()
	}
}
