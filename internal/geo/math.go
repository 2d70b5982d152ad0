package geo

import "math"

const (
	// EarthRadius is the WGS84 equatorial radius in meters, used as the
	// sphere radius of Web Mercator.
	EarthRadius = 6378137.0

	// MaxLatitude clamps latitudes before projection to avoid the pole asymptote.
	MaxLatitude = 89.99999

	degreesPerRadian = 180.0 / math.Pi
	radiansPerDegree = math.Pi / 180.0
)

// PositionToMercator converts a geographic position (lng, lat in degrees)
// to Web Mercator meters. Components past Y are copied unchanged.
func PositionToMercator(p Position) Position {
	out := copyPosition(p)
	if len(p) < 2 {
		return out
	}

	lng := p[0]
	lat := math.Max(math.Min(p[1], MaxLatitude), -MaxLatitude)
	sinLat := math.Sin(lat * radiansPerDegree)

	out[0] = lng * radiansPerDegree * EarthRadius
	out[1] = EarthRadius / 2.0 * math.Log((1.0+sinLat)/(1.0-sinLat))

	return out
}

// PositionToGeographic converts a Web Mercator position (meters) back to
// longitude/latitude in degrees. Longitude is wrapped into (-180, 180].
// Components past Y are copied unchanged.
func PositionToGeographic(p Position) Position {
	out := copyPosition(p)
	if len(p) < 2 {
		return out
	}

	lng := wrapLongitude(p[0] / EarthRadius * degreesPerRadian)

	// Inverse Mercator projection
	lat := (math.Pi/2.0 - 2.0*math.Atan(math.Exp(-p[1]/EarthRadius))) * degreesPerRadian

	out[0] = lng
	out[1] = lat

	return out
}

// wrapLongitude subtracts the multiple of 360 that brings lng into (-180, 180].
func wrapLongitude(lng float64) float64 {
	return lng - math.Ceil((lng-180.0)/360.0)*360.0
}

func copyPosition(p Position) Position {
	if p == nil {
		return nil
	}

	out := make(Position, len(p))
	copy(out, p)

	return out
}
