package geo

import (
	"github.com/rs/zerolog/log"
)

// Converter rewrites a single position.
type Converter func(Position) Position

// ApplyConverter rewrites every position of o in place, recursing through
// features and collections. The CRS tag is left untouched.
func ApplyConverter(o Object, fn Converter) error {
	if err := checkObject(o); err != nil {
		return err
	}

	switch g := o.(type) {
	case *Point:
		g.Coordinates = fn(g.Coordinates)
	case *MultiPoint:
		convertPositions(g.Coordinates, fn)
	case *LineString:
		convertPositions(g.Coordinates, fn)
	case *MultiLineString:
		convertLines(g.Coordinates, fn)
	case *Polygon:
		convertLines(g.Coordinates, fn)
	case *MultiPolygon:
		for _, polygon := range g.Coordinates {
			convertLines(polygon, fn)
		}
	case *GeometryCollection:
		for _, geom := range g.Geometries {
			if isNil(geom) {
				continue
			}
			if err := ApplyConverter(geom, fn); err != nil {
				return err
			}
		}
	case *Feature:
		if !isNil(g.Geometry) {
			return ApplyConverter(g.Geometry, fn)
		}
	case *FeatureCollection:
		for _, f := range g.Features {
			if f == nil {
				continue
			}
			if err := ApplyConverter(f, fn); err != nil {
				return err
			}
		}
	default:
		return unsupported(o)
	}

	return nil
}

func convertPositions(positions []Position, fn Converter) {
	for i := range positions {
		positions[i] = fn(positions[i])
	}
}

func convertLines(lines [][]Position, fn Converter) {
	for _, line := range lines {
		convertPositions(line, fn)
	}
}

// ToMercatorInPlace projects o to Web Mercator and tags it with MercatorCRS.
func ToMercatorInPlace(o Object) error {
	if err := ApplyConverter(o, PositionToMercator); err != nil {
		return err
	}

	log.Trace().Str("type", string(o.Type())).Msg("Projected to mercator")

	return setCRS(o, MercatorCRS())
}

// ToGeographicInPlace projects o back to geographic coordinates and removes
// its CRS tag.
func ToGeographicInPlace(o Object) error {
	if err := ApplyConverter(o, PositionToGeographic); err != nil {
		return err
	}

	log.Trace().Str("type", string(o.Type())).Msg("Projected to geographic")

	return setCRS(o, nil)
}

// ToMercator returns a Web Mercator copy of o. The argument is not modified.
func ToMercator[T Object](o T) (T, error) {
	return projectCopy(o, ToMercatorInPlace)
}

// ToGeographic returns a geographic copy of o. The argument is not modified.
func ToGeographic[T Object](o T) (T, error) {
	return projectCopy(o, ToGeographicInPlace)
}

func projectCopy[T Object](o T, project func(Object) error) (T, error) {
	var zero T

	clone, err := Clone(o)
	if err != nil {
		return zero, err
	}

	if err := project(clone); err != nil {
		return zero, err
	}

	return clone.(T), nil
}
