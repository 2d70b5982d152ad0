// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/woozymasta/terraformer/internal/config"
	"github.com/woozymasta/terraformer/internal/geo"
	"github.com/woozymasta/terraformer/internal/processor"
)

const contentTypeGeoJSON = "application/geo+json"

// BBoxResponse is the body returned by HandleBBox.
type BBoxResponse struct {
	Type   string       `json:"type"`
	BBox   []float64    `json:"bbox"`
	Center geo.Position `json:"center,omitempty"`
}

// CircleRequest is the body accepted by HandleCircle.
type CircleRequest struct {
	Position geo.Position `json:"position"`
	Radius   float64      `json:"radius"`
	Steps    int          `json:"steps,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleHealth reports liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// HandleBBox returns the bounding box of the posted document and its center.
// An empty document yields a null bbox.
func (s *ServerContext) HandleBBox(w http.ResponseWriter, r *http.Request) {
	o, ok := s.readObject(w, r)
	if !ok {
		return
	}

	resp := BBoxResponse{Type: string(o.Type())}
	if box := o.BBox(); box.Valid() {
		resp.BBox = box.Slice()
		resp.Center = box.Center()
	}

	writeJSON(w, http.StatusOK, "application/json", resp)
}

// HandleMercator projects the posted document to Web Mercator.
func (s *ServerContext) HandleMercator(w http.ResponseWriter, r *http.Request) {
	s.handleProjection(w, r, geo.ToMercatorInPlace)
}

// HandleGeographic projects the posted document to geographic coordinates.
func (s *ServerContext) HandleGeographic(w http.ResponseWriter, r *http.Request) {
	s.handleProjection(w, r, geo.ToGeographicInPlace)
}

// The decoded document is request-owned, so projecting in place is safe.
func (s *ServerContext) handleProjection(w http.ResponseWriter, r *http.Request, project func(geo.Object) error) {
	o, ok := s.readObject(w, r)
	if !ok {
		return
	}

	if err := project(o); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contentTypeGeoJSON, o)
}

// HandleCircle builds a circle polygon feature.
func (s *ServerContext) HandleCircle(w http.ResponseWriter, r *http.Request) {
	var req CircleRequest
	if err := processor.DecodeJSON(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes), &req); err != nil {
		writeError(w, err)
		return
	}

	steps := req.Steps
	if steps == 0 {
		steps = s.Config.CircleSteps
	}

	circle, err := geo.NewCircle(req.Position, req.Radius, steps)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contentTypeGeoJSON, circle)
}

func (s *ServerContext) readObject(w http.ResponseWriter, r *http.Request) (geo.Object, bool) {
	o, err := processor.Decode(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes), config.FormatJSON)
	if err != nil {
		writeError(w, err)
		return nil, false
	}

	return o, true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, geo.ErrUnsupportedType),
		errors.Is(err, geo.ErrInvalidInput),
		errors.Is(err, geo.ErrInvalidArgument):
	default:
		log.Debug().Err(err).Msg("Request body rejected")
	}

	writeJSON(w, status, "application/json", errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
