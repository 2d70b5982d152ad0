package geo

import (
	"encoding/json"
	"fmt"
	"math"
)

// Unmarshal parses a GeoJSON document.
func Unmarshal(data []byte) (Object, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return Decode(raw)
}

// Decode converts a structured value, as produced by a JSON or YAML decoder,
// into a GeoJSON object. The "type" member selects the variant.
func Decode(raw any) (Object, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, invalidInput("expected an object, got %T", raw)
	}

	kind, ok := obj["type"].(string)
	if !ok {
		return nil, invalidInput("missing type member")
	}

	var (
		o   Object
		err error
	)

	switch Type(kind) {
	case TypeFeature:
		o, err = decodeFeature(obj)
	case TypeFeatureCollection:
		o, err = decodeFeatureCollection(obj)
	default:
		return decodeGeometry(obj)
	}
	if err != nil {
		return nil, err
	}

	if err := applyCRS(o, obj["crs"]); err != nil {
		return nil, err
	}

	return o, nil
}

// DecodeGeometry is Decode restricted to the seven geometry variants.
func DecodeGeometry(raw any) (Geometry, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, invalidInput("expected a geometry object, got %T", raw)
	}

	return decodeGeometry(obj)
}

// decodeGeometry decodes any geometry variant together with its own crs member.
func decodeGeometry(obj map[string]any) (Geometry, error) {
	g, err := decodeGeometryPayload(obj)
	if err != nil {
		return nil, err
	}

	if err := applyCRS(g, obj["crs"]); err != nil {
		return nil, err
	}

	return g, nil
}

func decodeGeometryPayload(obj map[string]any) (Geometry, error) {
	kind, _ := obj["type"].(string)

	if Type(kind) == TypeGeometryCollection {
		members, ok := obj["geometries"].([]any)
		if !ok {
			return nil, invalidInput("%s: missing geometries", kind)
		}

		g := &GeometryCollection{Geometries: make([]Geometry, 0, len(members))}
		for i, member := range members {
			geom, err := DecodeGeometry(member)
			if err != nil {
				return nil, fmt.Errorf("geometries[%d]: %w", i, err)
			}
			g.Geometries = append(g.Geometries, geom)
		}

		return g, nil
	}

	switch Type(kind) {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString, TypePolygon, TypeMultiPolygon:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}

	coordinates, ok := obj["coordinates"]
	if !ok || coordinates == nil {
		return nil, invalidInput("%s: missing coordinates", kind)
	}

	g, err := geometryFromCoordinates(Type(kind), coordinates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return g, nil
}

func geometryFromCoordinates(kind Type, coordinates any) (Geometry, error) {
	switch kind {
	case TypePoint:
		p, err := decodePosition(coordinates)
		if err != nil {
			return nil, err
		}
		return &Point{Coordinates: p}, nil

	case TypeMultiPoint:
		ps, err := decodePositions(coordinates)
		if err != nil {
			return nil, err
		}
		return &MultiPoint{Coordinates: ps}, nil

	case TypeLineString:
		ps, err := decodePositions(coordinates)
		if err != nil {
			return nil, err
		}
		return &LineString{Coordinates: ps}, nil

	case TypeMultiLineString:
		lines, err := decodeLines(coordinates)
		if err != nil {
			return nil, err
		}
		return &MultiLineString{Coordinates: lines}, nil

	case TypePolygon:
		rings, err := decodeLines(coordinates)
		if err != nil {
			return nil, err
		}
		return &Polygon{Coordinates: rings}, nil

	case TypeMultiPolygon:
		polygons, err := decodePolygons(coordinates)
		if err != nil {
			return nil, err
		}
		return &MultiPolygon{Coordinates: polygons}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
}

func decodeFeature(obj map[string]any) (*Feature, error) {
	f := &Feature{ID: obj["id"]}

	if raw, ok := obj["geometry"]; ok && raw != nil {
		geom, err := DecodeGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("geometry: %w", err)
		}
		f.Geometry = geom
	}

	if raw, ok := obj["properties"]; ok && raw != nil {
		props, ok := asObject(raw)
		if !ok {
			return nil, invalidInput("properties: expected an object, got %T", raw)
		}
		f.Properties = props
	}

	return f, nil
}

func decodeFeatureCollection(obj map[string]any) (*FeatureCollection, error) {
	members, ok := obj["features"].([]any)
	if !ok {
		return nil, invalidInput("FeatureCollection: missing features")
	}

	fc := &FeatureCollection{Features: make([]*Feature, 0, len(members))}
	for i, member := range members {
		o, err := Decode(member)
		if err != nil {
			return nil, fmt.Errorf("features[%d]: %w", i, err)
		}

		f, ok := o.(*Feature)
		if !ok {
			return nil, invalidInput("features[%d]: expected a Feature, got %s", i, o.Type())
		}
		fc.Features = append(fc.Features, f)
	}

	return fc, nil
}

func applyCRS(o Object, raw any) error {
	crs, err := decodeCRS(raw)
	if err != nil || crs == nil {
		return err
	}

	return setCRS(o, crs)
}

func decodeCRS(raw any) (*CRS, error) {
	if raw == nil {
		return nil, nil
	}

	obj, ok := asObject(raw)
	if !ok {
		return nil, invalidInput("crs: expected an object, got %T", raw)
	}

	crs := &CRS{}
	crs.Type, _ = obj["type"].(string)
	if props, ok := asObject(obj["properties"]); ok {
		crs.Properties.Href, _ = props["href"].(string)
		crs.Properties.Type, _ = props["type"].(string)
		crs.Properties.Name, _ = props["name"].(string)
	}

	return crs, nil
}

func decodePosition(raw any) (Position, error) {
	switch v := raw.(type) {
	case Position:
		if len(v) < 2 {
			return nil, invalidInput("position needs at least 2 components, got %d", len(v))
		}
		for i, n := range v {
			if math.IsNaN(n) || math.IsInf(n, 0) {
				return nil, invalidInput("position component %d: %v is not finite", i, n)
			}
		}
		return copyPosition(v), nil
	case []float64:
		return decodePosition(Position(v))
	case []any:
		if len(v) < 2 {
			return nil, invalidInput("position needs at least 2 components, got %d", len(v))
		}
		p := make(Position, len(v))
		for i, item := range v {
			n, ok := toFloat(item)
			if !ok {
				return nil, invalidInput("position component %d: expected a number, got %T", i, item)
			}
			p[i] = n
		}
		return decodePosition(p)
	}

	return nil, invalidInput("expected a position, got %T", raw)
}

func decodePositions(raw any) ([]Position, error) {
	switch v := raw.(type) {
	case []Position:
		return decodeEach(v, decodePosition)
	case [][]float64:
		return decodeEach(v, decodePosition)
	case []any:
		return decodeEach(v, decodePosition)
	}

	return nil, invalidInput("expected an array of positions, got %T", raw)
}

func decodeLines(raw any) ([][]Position, error) {
	switch v := raw.(type) {
	case [][]Position:
		return decodeEach(v, decodePositions)
	case []any:
		return decodeEach(v, decodePositions)
	}

	return nil, invalidInput("expected an array of position arrays, got %T", raw)
}

func decodePolygons(raw any) ([][][]Position, error) {
	switch v := raw.(type) {
	case [][][]Position:
		return decodeEach(v, decodeLines)
	case []any:
		return decodeEach(v, decodeLines)
	}

	return nil, invalidInput("expected an array of polygons, got %T", raw)
}

func decodeEach[S ~[]E, E any, T any](items S, decode func(any) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, item := range items {
		v, err := decode(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = item
		}
		return out, true
	}

	return nil, false
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	}

	return 0, false
}
