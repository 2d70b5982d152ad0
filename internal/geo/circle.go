package geo

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

// DefaultCircleSteps is the vertex count used when none is given.
const DefaultCircleSteps = 64

// NewCircle approximates a circle of radius meters around a geographic
// center. The ring is built in Web Mercator space with steps vertices, then
// projected back to geographic coordinates. steps 0 means DefaultCircleSteps.
//
// The ring is left open: its last vertex is not a repeat of the first.
func NewCircle(center Position, radius float64, steps int) (*Feature, error) {
	if steps == 0 {
		steps = DefaultCircleSteps
	}

	if steps < 3 {
		return nil, fmt.Errorf("%w: circle needs at least 3 steps, got %d", ErrInvalidArgument, steps)
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: circle radius must be positive, got %v", ErrInvalidArgument, radius)
	}
	if len(center) < 2 {
		return nil, fmt.Errorf("%w: circle center needs at least 2 components, got %d", ErrInvalidArgument, len(center))
	}

	origin := PositionToMercator(center)
	ring := make([]Position, 0, steps)

	for i := 1; i <= steps; i++ {
		radians := float64(i) * (360.0 / float64(steps)) * radiansPerDegree
		ring = append(ring, Position{
			origin[0] + radius*math.Cos(radians),
			origin[1] + radius*math.Sin(radians),
		})
	}

	polygon := &Polygon{
		CRS:         MercatorCRS(),
		Coordinates: [][]Position{ring},
	}
	if err := ToGeographicInPlace(polygon); err != nil {
		return nil, err
	}

	log.Trace().
		Float64("radius", radius).
		Int("steps", steps).
		Msg("Circle synthesized")

	return &Feature{
		Geometry: polygon,
		Properties: map[string]any{
			"radius":   radius,
			"position": copyPosition(center),
			"steps":    steps,
		},
	}, nil
}
