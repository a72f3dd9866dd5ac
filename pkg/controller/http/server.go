// Package http serves downloaded artifacts as a local channel for pixi.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// config holds internal HTTP server configuration
type config struct {
	addr       string
	channelDir string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithChannelDir sets the directory served as the artifact channel
func WithChannelDir(dir string) Option {
	return func(c *config) {
		c.channelDir = dir
	}
}

// Server represents the channel HTTP server
type Server struct {
	*http.Server

	// ChannelDir is the directory being served
	ChannelDir string
}

// NewServer creates a server exposing the artifact channel directory. pixi
// consumes it as a conda channel during integration tests.
func NewServer(ctx context.Context, opts ...Option) (*Server, error) {
	cfg := &config{
		addr:       "localhost:8000",
		channelDir: "artifacts",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", healthHandler(cfg.channelDir))

	// Read-only channel file server (repodata.json and conda packages)
	router.Method(http.MethodGet, "/*", http.FileServer(http.Dir(cfg.channelDir)))

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		ChannelDir: cfg.channelDir,
	}

	return server, nil
}
