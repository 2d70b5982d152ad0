package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/terraformer/internal/config"
)

// DefaultMaxBodyBytes limits the size of request documents.
const DefaultMaxBodyBytes = 8 << 20

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config       *config.Config
	MaxBodyBytes int64
}

// NewServerContext initializes the context from the loaded configuration.
func NewServerContext(cfg *config.Config, maxBodyBytes int64) *ServerContext {
	if cfg == nil {
		cfg = config.Default()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	log.Info().
		Int("circle_steps", cfg.CircleSteps).
		Int64("max_body_bytes", maxBodyBytes).
		Msg("Server context initialized")

	return &ServerContext{
		Config:       cfg,
		MaxBodyBytes: maxBodyBytes,
	}
}

// Routes registers the API handlers.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/bbox", s.HandleBBox)
	mux.HandleFunc("POST /api/mercator", s.HandleMercator)
	mux.HandleFunc("POST /api/geographic", s.HandleGeographic)
	mux.HandleFunc("POST /api/circle", s.HandleCircle)
	mux.HandleFunc("GET /healthz", s.HandleHealth)

	return RequestLogger(mux)
}
