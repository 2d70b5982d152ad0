package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/terraformer/internal/geo"
)

const epsilon = 1e-9

func TestPositionOrigin(t *testing.T) {
	merc := geo.PositionToMercator(geo.Position{0, 0})
	require.InDelta(t, 0, merc[0], epsilon)
	require.InDelta(t, 0, merc[1], epsilon)

	lngLat := geo.PositionToGeographic(geo.Position{0, 0})
	require.InDelta(t, 0, lngLat[0], epsilon)
	require.InDelta(t, 0, lngLat[1], epsilon)
}

func TestPositionToMercatorKnownValues(t *testing.T) {
	merc := geo.PositionToMercator(geo.Position{180, 0})
	require.InDelta(t, math.Pi*geo.EarthRadius, merc[0], 1e-6)

	// 85.05112877980659 is the latitude at which Web Mercator becomes square.
	merc = geo.PositionToMercator(geo.Position{-180, 85.05112877980659})
	require.InDelta(t, -20037508.342789244, merc[0], 1e-6)
	require.InDelta(t, 20037508.342789244, merc[1], 1e-3)
}

func TestPositionToMercatorClamp(t *testing.T) {
	require.Equal(t,
		geo.PositionToMercator(geo.Position{0, geo.MaxLatitude}),
		geo.PositionToMercator(geo.Position{0, 95}))

	require.Equal(t,
		geo.PositionToMercator(geo.Position{0, -geo.MaxLatitude}),
		geo.PositionToMercator(geo.Position{0, -90}))

	merc := geo.PositionToMercator(geo.Position{0, 90})
	require.False(t, math.IsInf(merc[1], 0))
}

func TestPositionRoundTrip(t *testing.T) {
	testCases := []struct {
		desc string
		in   geo.Position
	}{
		{desc: "origin", in: geo.Position{0, 0}},
		{desc: "paris", in: geo.Position{2.3522, 48.8566}},
		{desc: "sydney", in: geo.Position{151.2093, -33.8688}},
		{desc: "west", in: geo.Position{-122.6764, 45.5165}},
		{desc: "near antimeridian", in: geo.Position{179.5, -10}},
		{desc: "high latitude", in: geo.Position{-45, 80}},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			out := geo.PositionToGeographic(geo.PositionToMercator(tc.in))
			require.Len(t, out, len(tc.in))
			require.InDelta(t, tc.in[0], out[0], epsilon)
			require.InDelta(t, tc.in[1], out[1], epsilon)
		})
	}
}

func TestPositionExtraComponents(t *testing.T) {
	in := geo.Position{10, 20, 300, 4}

	merc := geo.PositionToMercator(in)
	require.Len(t, merc, 4)
	require.Equal(t, 300.0, merc[2])
	require.Equal(t, 4.0, merc[3])

	back := geo.PositionToGeographic(merc)
	require.Equal(t, 300.0, back[2])
	require.Equal(t, 4.0, back[3])

	require.Equal(t, geo.Position{10, 20, 300, 4}, in, "input must not be modified")
}

func TestPositionToGeographicWrapsLongitude(t *testing.T) {
	out := geo.PositionToGeographic(geo.PositionToMercator(geo.Position{370, 0}))
	require.InDelta(t, 10, out[0], epsilon)

	out = geo.PositionToGeographic(geo.PositionToMercator(geo.Position{-190, 0}))
	require.InDelta(t, 170, out[0], epsilon)
}
