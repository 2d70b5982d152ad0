package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/terraformer/internal/geo"
)

// blob is an Object this package knows nothing about.
type blob struct{}

func (blob) Type() geo.Type { return "Blob" }
func (blob) BBox() geo.BBox { return geo.EmptyBBox() }

func TestCalculateBounds(t *testing.T) {
	testCases := []struct {
		desc     string
		in       geo.Object
		expected geo.BBox
	}{
		{
			desc:     "point",
			in:       &geo.Point{Coordinates: geo.Position{10, 20}},
			expected: geo.BBox{10, 20, 10, 20},
		},
		{
			desc:     "multipoint",
			in:       &geo.MultiPoint{Coordinates: []geo.Position{{5, -1}, {-3, 4}, {2, 2}}},
			expected: geo.BBox{-3, -1, 5, 4},
		},
		{
			desc:     "linestring",
			in:       &geo.LineString{Coordinates: []geo.Position{{0, 0}, {10, 10}}},
			expected: geo.BBox{0, 0, 10, 10},
		},
		{
			desc: "polygon",
			in: &geo.Polygon{Coordinates: [][]geo.Position{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
			}},
			expected: geo.BBox{0, 0, 10, 10},
		},
		{
			desc: "polygon with hole",
			in: &geo.Polygon{Coordinates: [][]geo.Position{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{2, 2}, {3, 2}, {3, 3}, {2, 2}},
			}},
			expected: geo.BBox{0, 0, 10, 10},
		},
		{
			desc: "multilinestring",
			in: &geo.MultiLineString{Coordinates: [][]geo.Position{
				{{0, 0}, {1, 1}},
				{{-5, 3}, {2, 8}},
			}},
			expected: geo.BBox{-5, 0, 2, 8},
		},
		{
			desc: "multipolygon",
			in: &geo.MultiPolygon{Coordinates: [][][]geo.Position{
				{{{102, 2}, {103, 2}, {103, 3}, {102, 3}, {102, 2}}},
				{{{100, 0}, {101, 0}, {101, 1}, {100, 1}, {100, 0}}},
			}},
			expected: geo.BBox{100, 0, 103, 3},
		},
		{
			desc: "geometrycollection",
			in: &geo.GeometryCollection{Geometries: []geo.Geometry{
				&geo.Point{Coordinates: geo.Position{100, 0}},
				&geo.LineString{Coordinates: []geo.Position{{101, 0}, {102, 1}}},
			}},
			expected: geo.BBox{100, 0, 102, 1},
		},
		{
			desc:     "feature",
			in:       &geo.Feature{Geometry: &geo.Point{Coordinates: geo.Position{-1, -2}}},
			expected: geo.BBox{-1, -2, -1, -2},
		},
		{
			desc: "featurecollection",
			in: &geo.FeatureCollection{Features: []*geo.Feature{
				{Geometry: &geo.Point{Coordinates: geo.Position{1, 1}}},
				{Geometry: &geo.LineString{Coordinates: []geo.Position{{-4, 7}, {3, 2}}}},
				{Geometry: nil},
			}},
			expected: geo.BBox{-4, 1, 3, 7},
		},
		{
			desc:     "third component ignored",
			in:       &geo.LineString{Coordinates: []geo.Position{{0, 0, -100}, {1, 1, 100}}},
			expected: geo.BBox{0, 0, 1, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			box, err := geo.CalculateBounds(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.expected, box)
			require.True(t, box.Valid())
		})
	}
}

func TestCalculateBoundsEmpty(t *testing.T) {
	for _, o := range []geo.Object{
		&geo.Point{},
		&geo.LineString{},
		&geo.Polygon{Coordinates: [][]geo.Position{{}}},
		&geo.Feature{},
		&geo.FeatureCollection{},
		&geo.GeometryCollection{},
	} {
		box, err := geo.CalculateBounds(o)
		require.NoError(t, err, o.Type())
		require.False(t, box.Valid(), o.Type())
	}
}

func TestCalculateBoundsUnsupported(t *testing.T) {
	_, err := geo.CalculateBounds(blob{})
	require.True(t, errors.Is(err, geo.ErrUnsupportedType))
	require.Contains(t, err.Error(), "Blob")

	_, err = geo.CalculateBounds(nil)
	require.ErrorIs(t, err, geo.ErrUnsupportedType)
}

func TestCalculateBoundsTypedNil(t *testing.T) {
	_, err := geo.CalculateBounds((*geo.Point)(nil))
	require.ErrorIs(t, err, geo.ErrInvalidInput)

	gc := &geo.GeometryCollection{Geometries: []geo.Geometry{
		(*geo.Point)(nil),
		&geo.Point{Coordinates: geo.Position{1, 2}},
	}}
	box, err := geo.CalculateBounds(gc)
	require.NoError(t, err)
	require.Equal(t, geo.BBox{1, 2, 1, 2}, box)

	f := &geo.Feature{Geometry: (*geo.Polygon)(nil)}
	require.False(t, f.BBox().Valid())
}

func TestBBoxSkipsNaNPositions(t *testing.T) {
	line := &geo.LineString{Coordinates: []geo.Position{{0, 0}, {math.NaN(), 5}, {10, 10}}}
	require.Equal(t, geo.BBox{0, 0, 10, 10}, line.BBox())

	only := &geo.MultiPoint{Coordinates: []geo.Position{{math.NaN(), math.NaN()}}}
	require.False(t, only.BBox().Valid())
}

func TestFeatureCollectionBoundsOrderIndependent(t *testing.T) {
	a := &geo.Feature{Geometry: &geo.Point{Coordinates: geo.Position{-10, 5}}}
	b := &geo.Feature{Geometry: &geo.Polygon{Coordinates: [][]geo.Position{{{0, 0}, {3, 0}, {3, 40}}}}}
	c := &geo.Feature{Geometry: &geo.LineString{Coordinates: []geo.Position{{7, -8}, {1, 1}}}}

	forward := (&geo.FeatureCollection{Features: []*geo.Feature{a, b, c}}).BBox()
	backward := (&geo.FeatureCollection{Features: []*geo.Feature{c, b, a}}).BBox()

	require.Equal(t, geo.BBox{-10, -8, 7, 40}, forward)
	require.Equal(t, forward, backward)
	require.Equal(t, a.BBox().Union(b.BBox()).Union(c.BBox()), forward)
}

func TestBBoxRecomputedAfterMutation(t *testing.T) {
	line := &geo.LineString{Coordinates: []geo.Position{{0, 0}, {1, 1}}}
	require.Equal(t, geo.BBox{0, 0, 1, 1}, line.BBox())

	line.Coordinates[1] = geo.Position{5, -5}
	require.Equal(t, geo.BBox{0, -5, 5, 0}, line.BBox())
}

func TestBBoxUnion(t *testing.T) {
	box := geo.BBox{0, 0, 1, 1}

	require.Equal(t, box, box.Union(geo.EmptyBBox()))
	require.Equal(t, box, geo.EmptyBBox().Union(box))
	require.False(t, geo.EmptyBBox().Union(geo.EmptyBBox()).Valid())
	require.Equal(t, geo.BBox{-1, 0, 1, 3}, box.Union(geo.BBox{-1, 2, 0, 3}))
}

func TestBBoxBound(t *testing.T) {
	box := geo.BBox{1, 2, 3, 4}

	bound := box.Bound()
	require.Equal(t, orb.Point{1, 2}, bound.Min)
	require.Equal(t, orb.Point{3, 4}, bound.Max)
	require.Equal(t, box, geo.BBoxFromBound(bound))

	require.Equal(t, orb.Bound{}, geo.EmptyBBox().Bound())
	require.Equal(t, []float64{1, 2, 3, 4}, box.Slice())
}

func TestBBoxCenterAndPolygon(t *testing.T) {
	box := geo.BBox{-10, 0, 30, 20}

	require.Equal(t, geo.Position{10, 10}, box.Center())
	require.Equal(t, &geo.Polygon{Coordinates: [][]geo.Position{
		{{-10, 0}, {30, 0}, {30, 20}, {-10, 20}, {-10, 0}},
	}}, box.Polygon())
	require.Equal(t, box, box.Polygon().BBox())

	require.Nil(t, geo.EmptyBBox().Center())
	require.Nil(t, geo.EmptyBBox().Polygon())
}
