package geo

import "encoding/json"

// Plain projects o onto the plain GeoJSON object model used for
// serialization. The bbox member is recomputed on every call and omitted
// when o holds no position; crs is emitted only when set.
func Plain(o Object) (map[string]any, error) {
	if err := checkObject(o); err != nil {
		return nil, err
	}

	out := map[string]any{"type": string(o.Type())}

	switch g := o.(type) {
	case *Point:
		out["coordinates"] = g.Coordinates
	case *MultiPoint:
		out["coordinates"] = g.Coordinates
	case *LineString:
		out["coordinates"] = g.Coordinates
	case *MultiLineString:
		out["coordinates"] = g.Coordinates
	case *Polygon:
		out["coordinates"] = g.Coordinates
	case *MultiPolygon:
		out["coordinates"] = g.Coordinates

	case *GeometryCollection:
		geometries := make([]any, 0, len(g.Geometries))
		for _, geom := range g.Geometries {
			if isNil(geom) {
				continue
			}
			plain, err := Plain(geom)
			if err != nil {
				return nil, err
			}
			geometries = append(geometries, plain)
		}
		out["geometries"] = geometries

	case *Feature:
		out["geometry"] = nil
		if !isNil(g.Geometry) {
			plain, err := Plain(g.Geometry)
			if err != nil {
				return nil, err
			}
			out["geometry"] = plain
		}
		out["properties"] = g.Properties
		if g.ID != nil {
			out["id"] = g.ID
		}

	case *FeatureCollection:
		features := make([]any, 0, len(g.Features))
		for _, f := range g.Features {
			if f == nil {
				continue
			}
			plain, err := Plain(f)
			if err != nil {
				return nil, err
			}
			features = append(features, plain)
		}
		out["features"] = features

	default:
		return nil, unsupported(o)
	}

	if box := o.BBox(); box.Valid() {
		out["bbox"] = box.Slice()
	}
	if crs := CRSOf(o); crs != nil {
		out["crs"] = crs
	}

	return out, nil
}

func marshalJSON(o Object) ([]byte, error) {
	plain, err := Plain(o)
	if err != nil {
		return nil, err
	}

	return json.Marshal(plain)
}

// unmarshalInto decodes data and stores it into target when the variants match.
func unmarshalInto[T any, PT interface {
	*T
	Object
}](data []byte, target PT) error {
	o, err := Unmarshal(data)
	if err != nil {
		return err
	}

	v, ok := o.(PT)
	if !ok {
		return invalidInput("expected %s, got %s", target.Type(), o.Type())
	}
	*target = *v

	return nil
}

func (g *Point) MarshalJSON() ([]byte, error)              { return marshalJSON(g) }
func (g *MultiPoint) MarshalJSON() ([]byte, error)         { return marshalJSON(g) }
func (g *LineString) MarshalJSON() ([]byte, error)         { return marshalJSON(g) }
func (g *MultiLineString) MarshalJSON() ([]byte, error)    { return marshalJSON(g) }
func (g *Polygon) MarshalJSON() ([]byte, error)            { return marshalJSON(g) }
func (g *MultiPolygon) MarshalJSON() ([]byte, error)       { return marshalJSON(g) }
func (g *GeometryCollection) MarshalJSON() ([]byte, error) { return marshalJSON(g) }
func (f *Feature) MarshalJSON() ([]byte, error)            { return marshalJSON(f) }
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) { return marshalJSON(fc) }

func (g *Point) UnmarshalJSON(data []byte) error              { return unmarshalInto(data, g) }
func (g *MultiPoint) UnmarshalJSON(data []byte) error         { return unmarshalInto(data, g) }
func (g *LineString) UnmarshalJSON(data []byte) error         { return unmarshalInto(data, g) }
func (g *MultiLineString) UnmarshalJSON(data []byte) error    { return unmarshalInto(data, g) }
func (g *Polygon) UnmarshalJSON(data []byte) error            { return unmarshalInto(data, g) }
func (g *MultiPolygon) UnmarshalJSON(data []byte) error       { return unmarshalInto(data, g) }
func (g *GeometryCollection) UnmarshalJSON(data []byte) error { return unmarshalInto(data, g) }
func (f *Feature) UnmarshalJSON(data []byte) error            { return unmarshalInto(data, f) }
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error { return unmarshalInto(data, fc) }

// MarshalYAML implements yaml.Marshaler with the same projection as MarshalJSON.
func (g *Point) MarshalYAML() (any, error)              { return Plain(g) }
func (g *MultiPoint) MarshalYAML() (any, error)         { return Plain(g) }
func (g *LineString) MarshalYAML() (any, error)         { return Plain(g) }
func (g *MultiLineString) MarshalYAML() (any, error)    { return Plain(g) }
func (g *Polygon) MarshalYAML() (any, error)            { return Plain(g) }
func (g *MultiPolygon) MarshalYAML() (any, error)       { return Plain(g) }
func (g *GeometryCollection) MarshalYAML() (any, error) { return Plain(g) }
func (f *Feature) MarshalYAML() (any, error)            { return Plain(f) }
func (fc *FeatureCollection) MarshalYAML() (any, error) { return Plain(fc) }
