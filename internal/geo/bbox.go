package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// BBox is an axis-aligned extent [minX, minY, maxX, maxY].
// A box without any position is all NaN, see EmptyBBox.
type BBox [4]float64

// EmptyBBox returns the box of a value holding no position.
func EmptyBBox() BBox {
	nan := math.NaN()
	return BBox{nan, nan, nan, nan}
}

// BBoxFromBound converts an orb.Bound.
func BBoxFromBound(b orb.Bound) BBox {
	return BBox{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
}

// Valid reports whether the box encloses at least one position.
func (b BBox) Valid() bool {
	for _, v := range b {
		if math.IsNaN(v) {
			return false
		}
	}

	return b[0] <= b[2] && b[1] <= b[3]
}

// Union returns the smallest box enclosing b and other.
// Empty boxes are ignored.
func (b BBox) Union(other BBox) BBox {
	if !other.Valid() {
		return b
	}
	if !b.Valid() {
		return other
	}

	return BBox{
		math.Min(b[0], other[0]),
		math.Min(b[1], other[1]),
		math.Max(b[2], other[2]),
		math.Max(b[3], other[3]),
	}
}

// Slice returns the box as the 4-element GeoJSON bbox array.
func (b BBox) Slice() []float64 {
	return []float64{b[0], b[1], b[2], b[3]}
}

// Bound converts the box to an orb.Bound. An empty box yields the zero bound.
func (b BBox) Bound() orb.Bound {
	if !b.Valid() {
		return orb.Bound{}
	}

	return orb.Bound{
		Min: orb.Point{b[0], b[1]},
		Max: orb.Point{b[2], b[3]},
	}
}

// Center returns the middle of the box, or nil for an empty box.
func (b BBox) Center() Position {
	if !b.Valid() {
		return nil
	}

	c := b.Bound().Center()
	return Position{c[0], c[1]}
}

// Polygon returns the box outline as a closed counterclockwise ring
// starting at the minimum corner, or nil for an empty box.
func (b BBox) Polygon() *Polygon {
	if !b.Valid() {
		return nil
	}

	ring := b.Bound().ToRing()
	positions := make([]Position, len(ring))
	for i, p := range ring {
		positions[i] = Position{p[0], p[1]}
	}

	return &Polygon{Coordinates: [][]Position{positions}}
}

// empty reports whether no position was added to b yet.
func (b BBox) empty() bool {
	return math.IsNaN(b[0]) && math.IsNaN(b[1]) && math.IsNaN(b[2]) && math.IsNaN(b[3])
}

// extend adds p to b. Positions with a NaN X or Y are skipped.
func (b BBox) extend(p Position) BBox {
	if len(p) < 2 || math.IsNaN(p[0]) || math.IsNaN(p[1]) {
		return b
	}
	if b.empty() {
		return BBox{p[0], p[1], p[0], p[1]}
	}

	return BBox{
		math.Min(b[0], p[0]),
		math.Min(b[1], p[1]),
		math.Max(b[2], p[0]),
		math.Max(b[3], p[1]),
	}
}

// CalculateBounds computes the bounding box of any GeoJSON object.
// Objects not defined by this package fail with ErrUnsupportedType.
func CalculateBounds(o Object) (BBox, error) {
	if isNil(o) {
		return EmptyBBox(), checkObject(o)
	}

	switch g := o.(type) {
	case *Point, *MultiPoint, *LineString, *MultiLineString, *Polygon, *MultiPolygon,
		*GeometryCollection, *Feature, *FeatureCollection:
		return g.BBox(), nil
	default:
		return EmptyBBox(), unsupported(o)
	}
}

func boundsOfPositions(positions []Position) BBox {
	box := EmptyBBox()
	for _, p := range positions {
		box = box.extend(p)
	}

	return box
}

func boundsOfLines(lines [][]Position) BBox {
	box := EmptyBBox()
	for _, line := range lines {
		box = box.Union(boundsOfPositions(line))
	}

	return box
}

func boundsOfPolygons(polygons [][][]Position) BBox {
	box := EmptyBBox()
	for _, polygon := range polygons {
		box = box.Union(boundsOfLines(polygon))
	}

	return box
}

// BBox returns the degenerate box [x, y, x, y].
func (g *Point) BBox() BBox {
	return EmptyBBox().extend(g.Coordinates)
}

func (g *MultiPoint) BBox() BBox { return boundsOfPositions(g.Coordinates) }

func (g *LineString) BBox() BBox { return boundsOfPositions(g.Coordinates) }

func (g *MultiLineString) BBox() BBox { return boundsOfLines(g.Coordinates) }

func (g *Polygon) BBox() BBox { return boundsOfLines(g.Coordinates) }

func (g *MultiPolygon) BBox() BBox { return boundsOfPolygons(g.Coordinates) }

// BBox returns the union of the member boxes.
func (g *GeometryCollection) BBox() BBox {
	box := EmptyBBox()
	for _, geom := range g.Geometries {
		if !isNil(geom) {
			box = box.Union(geom.BBox())
		}
	}

	return box
}

// BBox returns the box of the feature geometry, empty when there is none.
func (f *Feature) BBox() BBox {
	if isNil(f.Geometry) {
		return EmptyBBox()
	}

	return f.Geometry.BBox()
}

// BBox returns the union of the feature boxes.
func (fc *FeatureCollection) BBox() BBox {
	box := EmptyBBox()
	for _, f := range fc.Features {
		if f != nil {
			box = box.Union(f.BBox())
		}
	}

	return box
}
