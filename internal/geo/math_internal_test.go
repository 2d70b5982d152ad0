package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapLongitude(t *testing.T) {
	testCases := []struct {
		in, expected float64
	}{
		{in: 0, expected: 0},
		{in: 180, expected: 180},
		{in: -180, expected: 180},
		{in: 179.5, expected: 179.5},
		{in: -179.5, expected: -179.5},
		{in: 190, expected: -170},
		{in: -190, expected: 170},
		{in: 540, expected: 180},
		{in: 720, expected: 0},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, wrapLongitude(tc.in), tc.in)
	}
}
