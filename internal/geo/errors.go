package geo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a value matches no GeoJSON shape.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType is returned for a discriminant outside the GeoJSON types.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidArgument is returned for out of range numeric arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)

func unsupported(o Object) error {
	if o == nil {
		return fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedType, o.Type())
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// isNil reports whether o is nil or a nil pointer of one of the package types.
func isNil(o Object) bool {
	switch g := o.(type) {
	case nil:
		return true
	case *Point:
		return g == nil
	case *MultiPoint:
		return g == nil
	case *LineString:
		return g == nil
	case *MultiLineString:
		return g == nil
	case *Polygon:
		return g == nil
	case *MultiPolygon:
		return g == nil
	case *GeometryCollection:
		return g == nil
	case *Feature:
		return g == nil
	case *FeatureCollection:
		return g == nil
	}

	return false
}

// checkObject rejects nil objects: untyped nil is unsupported, a typed nil
// pointer is invalid input.
func checkObject(o Object) error {
	if o == nil {
		return unsupported(o)
	}
	if isNil(o) {
		return invalidInput("nil %s", o.Type())
	}

	return nil
}
