package geo

// Clone returns a deep copy of o, including its CRS tag and properties.
func Clone(o Object) (Object, error) {
	if err := checkObject(o); err != nil {
		return nil, err
	}

	switch g := o.(type) {
	case *Feature:
		return cloneFeature(g), nil
	case *FeatureCollection:
		out := &FeatureCollection{CRS: cloneCRS(g.CRS)}
		if g.Features != nil {
			out.Features = make([]*Feature, len(g.Features))
			for i, f := range g.Features {
				out.Features[i] = cloneFeature(f)
			}
		}
		return out, nil
	case Geometry:
		if clone := cloneGeometry(g); clone != nil {
			return clone, nil
		}
	}

	return nil, unsupported(o)
}

func cloneGeometry(g Geometry) Geometry {
	if isNil(g) {
		return nil
	}

	switch g := g.(type) {
	case *Point:
		return &Point{CRS: cloneCRS(g.CRS), Coordinates: copyPosition(g.Coordinates)}
	case *MultiPoint:
		return &MultiPoint{CRS: cloneCRS(g.CRS), Coordinates: clonePositions(g.Coordinates)}
	case *LineString:
		return &LineString{CRS: cloneCRS(g.CRS), Coordinates: clonePositions(g.Coordinates)}
	case *MultiLineString:
		return &MultiLineString{CRS: cloneCRS(g.CRS), Coordinates: cloneLines(g.Coordinates)}
	case *Polygon:
		return &Polygon{CRS: cloneCRS(g.CRS), Coordinates: cloneLines(g.Coordinates)}
	case *MultiPolygon:
		out := &MultiPolygon{CRS: cloneCRS(g.CRS)}
		if g.Coordinates != nil {
			out.Coordinates = make([][][]Position, len(g.Coordinates))
			for i, polygon := range g.Coordinates {
				out.Coordinates[i] = cloneLines(polygon)
			}
		}
		return out
	case *GeometryCollection:
		out := &GeometryCollection{CRS: cloneCRS(g.CRS)}
		if g.Geometries != nil {
			out.Geometries = make([]Geometry, len(g.Geometries))
			for i, geom := range g.Geometries {
				out.Geometries[i] = cloneGeometry(geom)
			}
		}
		return out
	}

	return nil
}

func cloneFeature(f *Feature) *Feature {
	if f == nil {
		return nil
	}

	out := &Feature{
		ID:  cloneValue(f.ID),
		CRS: cloneCRS(f.CRS),
	}
	out.Geometry = cloneGeometry(f.Geometry)
	if f.Properties != nil {
		out.Properties = cloneValue(f.Properties).(map[string]any)
	}

	return out
}

func clonePositions(positions []Position) []Position {
	if positions == nil {
		return nil
	}

	out := make([]Position, len(positions))
	for i, p := range positions {
		out[i] = copyPosition(p)
	}

	return out
}

func cloneLines(lines [][]Position) [][]Position {
	if lines == nil {
		return nil
	}

	out := make([][]Position, len(lines))
	for i, line := range lines {
		out[i] = clonePositions(line)
	}

	return out
}

func cloneCRS(c *CRS) *CRS {
	if c == nil {
		return nil
	}

	out := *c
	return &out
}

// cloneValue copies the maps and slices produced by JSON and YAML decoders.
// Other values are returned as is.
func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case Position:
		return copyPosition(v)
	case []float64:
		return append([]float64(nil), v...)
	default:
		return v
	}
}
