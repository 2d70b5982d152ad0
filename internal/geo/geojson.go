// Package geo handles GeoJSON data structures, bounding boxes and coordinate
// conversions between geographic (EPSG:4326) and Web Mercator (EPSG:3857).
package geo

// Type is the GeoJSON discriminant ("type" member).
type Type string

// Supported GeoJSON types.
const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// Position is a coordinate tuple [x, y, (z), (m)].
// Only X and Y take part in bounding box and projection math.
type Position []float64

// X returns the first component (longitude or easting).
func (p Position) X() float64 { return p[0] }

// Y returns the second component (latitude or northing).
func (p Position) Y() float64 { return p[1] }

// Object is implemented by every GeoJSON value of this package.
type Object interface {
	// Type reports the GeoJSON discriminant.
	Type() Type

	// BBox computes the bounding box. It is recomputed on every call.
	BBox() BBox
}

// Geometry is one of the seven GeoJSON geometry shapes.
type Geometry interface {
	Object
	geometry()
}

// Point is a single position.
type Point struct {
	CRS         *CRS
	Coordinates Position
}

// MultiPoint is an unordered set of positions.
type MultiPoint struct {
	CRS         *CRS
	Coordinates []Position
}

// LineString is a sequence of two or more positions.
type LineString struct {
	CRS         *CRS
	Coordinates []Position
}

// MultiLineString is a set of line strings.
type MultiLineString struct {
	CRS         *CRS
	Coordinates [][]Position
}

// Polygon is a set of linear rings, the first being the exterior ring
// and the rest holes.
type Polygon struct {
	CRS         *CRS
	Coordinates [][]Position
}

// MultiPolygon is a set of polygons.
type MultiPolygon struct {
	CRS         *CRS
	Coordinates [][][]Position
}

// GeometryCollection is a heterogeneous set of geometries.
type GeometryCollection struct {
	CRS        *CRS
	Geometries []Geometry
}

// Feature is a geometry with arbitrary properties and an optional identifier.
type Feature struct {
	ID         any
	CRS        *CRS
	Geometry   Geometry
	Properties map[string]any
}

// FeatureCollection is an ordered list of features.
type FeatureCollection struct {
	CRS      *CRS
	Features []*Feature
}

func (*Point) Type() Type              { return TypePoint }
func (*MultiPoint) Type() Type         { return TypeMultiPoint }
func (*LineString) Type() Type         { return TypeLineString }
func (*MultiLineString) Type() Type    { return TypeMultiLineString }
func (*Polygon) Type() Type            { return TypePolygon }
func (*MultiPolygon) Type() Type       { return TypeMultiPolygon }
func (*GeometryCollection) Type() Type { return TypeGeometryCollection }
func (*Feature) Type() Type            { return TypeFeature }
func (*FeatureCollection) Type() Type  { return TypeFeatureCollection }

func (*Point) geometry()              {}
func (*MultiPoint) geometry()         {}
func (*LineString) geometry()         {}
func (*MultiLineString) geometry()    {}
func (*Polygon) geometry()            {}
func (*MultiPolygon) geometry()       {}
func (*GeometryCollection) geometry() {}

// Len returns the number of points.
func (g *MultiPoint) Len() int { return len(g.Coordinates) }

// Len returns the number of line strings.
func (g *MultiLineString) Len() int { return len(g.Coordinates) }

// Len returns the number of polygons.
func (g *MultiPolygon) Len() int { return len(g.Coordinates) }

// Len returns the number of geometries.
func (g *GeometryCollection) Len() int { return len(g.Geometries) }

// Len returns the number of features.
func (fc *FeatureCollection) Len() int { return len(fc.Features) }

// ForEach calls fn for every point in order.
func (g *MultiPoint) ForEach(fn func(i int, p Position)) {
	for i, p := range g.Coordinates {
		fn(i, p)
	}
}

// ForEach calls fn for every line string in order.
func (g *MultiLineString) ForEach(fn func(i int, line []Position)) {
	for i, line := range g.Coordinates {
		fn(i, line)
	}
}

// ForEach calls fn for every polygon in order.
func (g *MultiPolygon) ForEach(fn func(i int, polygon [][]Position)) {
	for i, polygon := range g.Coordinates {
		fn(i, polygon)
	}
}

// ForEach calls fn for every geometry in order.
func (g *GeometryCollection) ForEach(fn func(i int, geom Geometry)) {
	for i, geom := range g.Geometries {
		fn(i, geom)
	}
}

// ForEach calls fn for every feature in order.
func (fc *FeatureCollection) ForEach(fn func(i int, f *Feature)) {
	for i, f := range fc.Features {
		fn(i, f)
	}
}
