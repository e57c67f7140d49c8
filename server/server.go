// Package server exposes a Planner over HTTP with gin.
//
// Routes:
//
//	POST /api/v1/route   {"start":{"x":..,"y":..},"end":{"x":..,"y":..}} in percent
//	GET  /api/v1/stats   model size, metric scale, neighbor cache fill
//	GET  /health         liveness
//
// Every response carries an X-Request-ID header, echoed from the request or
// generated.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/planner"
)

// HeaderRequestID is the request correlation header.
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "request_id"

// Options configures a Server.
type Options struct {
	Logger          *slog.Logger
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions allows every origin and discards logs.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSOrigins:     []string{"*"},
		ShutdownTimeout: 5 * time.Second,
	}
}

// WithLogger sets the access and error logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithCORSOrigins restricts cross-origin requests; "*" allows all.
func WithCORSOrigins(origins ...string) Option {
	return func(o *Options) {
		o.CORSOrigins = origins
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.ShutdownTimeout = d
	}
}

// Server serves route queries.
type Server struct {
	planner *planner.Planner
	options Options
	engine  *gin.Engine
}

// New wires the routes for p.
func New(p *planner.Planner, opts ...Option) *Server {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{planner: p, options: cfg, engine: gin.New()}
	s.engine.Use(gin.Recovery(), requestID(), s.accessLog())
	s.engine.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	api := s.engine.Group("/api/v1")
	api.POST("/route", s.handleRoute)
	api.GET("/stats", s.handleStats)

	return s
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", HeaderRequestID}
	config.ExposeHeaders = []string{HeaderRequestID}

	return config
}

// Handler returns the HTTP handler, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.options.Logger.Info("server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
	defer cancel()
	s.options.Logger.Info("server stopping")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}

// requestID echoes or generates X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.options.Logger.InfoContext(c.Request.Context(), "http request",
			"request_id", c.GetString(ctxRequestID),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(started),
		)
	}
}
