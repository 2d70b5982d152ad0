package geo

import "fmt"

// payloadMember returns the member holding the payload of a variant.
func payloadMember(kind Type) string {
	switch kind {
	case TypeGeometryCollection:
		return "geometries"
	case TypeFeature:
		return "geometry"
	case TypeFeatureCollection:
		return "features"
	default:
		return "coordinates"
	}
}

// construct builds a value of the given variant from nil, an existing value
// of the same variant, a raw object of the same variant, or a bare payload.
func construct(kind Type, input any, fromPayload func(any) (Object, error)) (Object, error) {
	if input == nil {
		return emptyOf(kind), nil
	}

	if o, ok := input.(Object); ok {
		if o.Type() != kind {
			return nil, invalidInput("%s: got a %s", kind, o.Type())
		}
		return o, nil
	}

	if obj, ok := asObject(input); ok {
		if t, _ := obj["type"].(string); Type(t) != kind {
			return nil, invalidInput("%s: got an object of type %q", kind, t)
		}
		if obj[payloadMember(kind)] == nil {
			return nil, invalidInput("%s: missing %s", kind, payloadMember(kind))
		}
		return Decode(obj)
	}

	o, err := fromPayload(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return o, nil
}

func emptyOf(kind Type) Object {
	switch kind {
	case TypePoint:
		return &Point{}
	case TypeMultiPoint:
		return &MultiPoint{}
	case TypeLineString:
		return &LineString{}
	case TypeMultiLineString:
		return &MultiLineString{}
	case TypePolygon:
		return &Polygon{}
	case TypeMultiPolygon:
		return &MultiPolygon{}
	case TypeGeometryCollection:
		return &GeometryCollection{}
	case TypeFeature:
		return &Feature{}
	case TypeFeatureCollection:
		return &FeatureCollection{}
	}

	return nil
}

func coordinatesPayload(kind Type) func(any) (Object, error) {
	return func(input any) (Object, error) {
		return geometryFromCoordinates(kind, input)
	}
}

// NewPoint builds a Point from nil, a Point, a raw Point object or a position.
func NewPoint(input any) (*Point, error) {
	o, err := construct(TypePoint, input, coordinatesPayload(TypePoint))
	if err != nil {
		return nil, err
	}

	return o.(*Point), nil
}

// NewMultiPoint builds a MultiPoint from nil, a MultiPoint, a raw object or
// an array of positions.
func NewMultiPoint(input any) (*MultiPoint, error) {
	o, err := construct(TypeMultiPoint, input, coordinatesPayload(TypeMultiPoint))
	if err != nil {
		return nil, err
	}

	return o.(*MultiPoint), nil
}

// NewLineString builds a LineString from nil, a LineString, a raw object or
// an array of positions.
func NewLineString(input any) (*LineString, error) {
	o, err := construct(TypeLineString, input, coordinatesPayload(TypeLineString))
	if err != nil {
		return nil, err
	}

	return o.(*LineString), nil
}

// NewMultiLineString builds a MultiLineString from nil, a MultiLineString,
// a raw object or an array of position arrays.
func NewMultiLineString(input any) (*MultiLineString, error) {
	o, err := construct(TypeMultiLineString, input, coordinatesPayload(TypeMultiLineString))
	if err != nil {
		return nil, err
	}

	return o.(*MultiLineString), nil
}

// NewPolygon builds a Polygon from nil, a Polygon, a raw object or an array
// of rings.
func NewPolygon(input any) (*Polygon, error) {
	o, err := construct(TypePolygon, input, coordinatesPayload(TypePolygon))
	if err != nil {
		return nil, err
	}

	return o.(*Polygon), nil
}

// NewMultiPolygon builds a MultiPolygon from nil, a MultiPolygon, a raw
// object or an array of polygons.
func NewMultiPolygon(input any) (*MultiPolygon, error) {
	o, err := construct(TypeMultiPolygon, input, coordinatesPayload(TypeMultiPolygon))
	if err != nil {
		return nil, err
	}

	return o.(*MultiPolygon), nil
}

// NewGeometryCollection builds a GeometryCollection from nil, a
// GeometryCollection, a raw object or an array of geometries.
func NewGeometryCollection(input any) (*GeometryCollection, error) {
	o, err := construct(TypeGeometryCollection, input, func(input any) (Object, error) {
		switch v := input.(type) {
		case []Geometry:
			return &GeometryCollection{Geometries: v}, nil
		case []any:
			geometries, err := decodeEach(v, func(item any) (Geometry, error) {
				if g, ok := item.(Geometry); ok {
					return g, nil
				}
				return DecodeGeometry(item)
			})
			if err != nil {
				return nil, err
			}
			return &GeometryCollection{Geometries: geometries}, nil
		}
		return nil, invalidInput("expected an array of geometries, got %T", input)
	})
	if err != nil {
		return nil, err
	}

	return o.(*GeometryCollection), nil
}

// NewFeature builds a Feature from nil, a Feature, a raw Feature object or
// a geometry (typed or raw), which becomes the feature geometry.
func NewFeature(input any) (*Feature, error) {
	if g, ok := input.(Geometry); ok {
		return &Feature{Geometry: g}, nil
	}

	if obj, ok := asObject(input); ok {
		if t, _ := obj["type"].(string); Type(t) != TypeFeature && obj["coordinates"] != nil {
			g, err := DecodeGeometry(obj)
			if err != nil {
				return nil, err
			}
			return &Feature{Geometry: g}, nil
		}
	}

	o, err := construct(TypeFeature, input, func(input any) (Object, error) {
		return nil, invalidInput("expected a feature or a geometry, got %T", input)
	})
	if err != nil {
		return nil, err
	}

	return o.(*Feature), nil
}

// NewFeatureCollection builds a FeatureCollection from nil, a
// FeatureCollection, a raw object or an array of features.
func NewFeatureCollection(input any) (*FeatureCollection, error) {
	o, err := construct(TypeFeatureCollection, input, func(input any) (Object, error) {
		switch v := input.(type) {
		case []*Feature:
			return &FeatureCollection{Features: v}, nil
		case []any:
			features, err := decodeEach(v, func(item any) (*Feature, error) {
				if f, ok := item.(*Feature); ok {
					return f, nil
				}
				o, err := Decode(item)
				if err != nil {
					return nil, err
				}
				f, ok := o.(*Feature)
				if !ok {
					return nil, invalidInput("expected a Feature, got %s", o.Type())
				}
				return f, nil
			})
			if err != nil {
				return nil, err
			}
			return &FeatureCollection{Features: features}, nil
		}
		return nil, invalidInput("expected an array of features, got %T", input)
	})
	if err != nil {
		return nil, err
	}

	return o.(*FeatureCollection), nil
}
