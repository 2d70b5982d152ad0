package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/terraformer/internal/config"
	"github.com/woozymasta/terraformer/internal/geo"
)

const pointJSON = `{"type":"Point","coordinates":[1.123456789,2.987654321]}`

func TestFormatOf(t *testing.T) {
	require.Equal(t, config.FormatYAML, FormatOf("zones.yaml"))
	require.Equal(t, config.FormatYAML, FormatOf("https://example.com/zones.YML?rev=2"))
	require.Equal(t, config.FormatJSON, FormatOf("zones.geojson"))
	require.Equal(t, config.FormatJSON, FormatOf(""))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "point.geojson")
	require.NoError(t, os.WriteFile(jsonPath, []byte(pointJSON), 0o644))

	yamlPath := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("type: LineString\ncoordinates: [[0, 0], [3, 4]]\n"), 0o644))

	o, err := Read(context.Background(), nil, jsonPath)
	require.NoError(t, err)
	require.Equal(t, geo.TypePoint, o.Type())

	o, err = Read(context.Background(), nil, yamlPath)
	require.NoError(t, err)
	require.Equal(t, geo.BBox{0, 0, 3, 4}, o.BBox())

	_, err = Read(context.Background(), nil, filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/point":
			w.Header().Set("Content-Type", "application/geo+json")
			_, _ = w.Write([]byte(pointJSON))
		case "/line":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("type: LineString\ncoordinates: [[0, 0], [3, 4]]\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)

	o, err := Read(context.Background(), client, srv.URL+"/point")
	require.NoError(t, err)
	require.Equal(t, geo.TypePoint, o.Type())

	o, err = Read(context.Background(), client, srv.URL+"/line")
	require.NoError(t, err)
	require.Equal(t, geo.TypeLineString, o.Type())

	_, err = Read(context.Background(), client, srv.URL+"/missing")
	require.ErrorContains(t, err, "status 404")
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"type":"Blob","coordinates":[0,0]}`), config.FormatJSON)
	require.ErrorIs(t, err, geo.ErrUnsupportedType)

	_, err = Decode(strings.NewReader(`not json`), config.FormatJSON)
	require.Error(t, err)

	_, err = Decode(strings.NewReader(`{"type":"Point","coordinates":[1,2]} junk`), config.FormatJSON)
	require.ErrorIs(t, err, geo.ErrInvalidInput)

	_, err = Decode(strings.NewReader(`{"type":"Point","coordinates":[1,2]}{"type":"Point","coordinates":[3,4]}`), config.FormatJSON)
	require.ErrorIs(t, err, geo.ErrInvalidInput)

	_, err = Decode(strings.NewReader("type: Point\ncoordinates: [1, 2]\n---\ntype: Point\ncoordinates: [3, 4]\n"), config.FormatYAML)
	require.ErrorIs(t, err, geo.ErrInvalidInput)
}

func TestDecodeTrailingWhitespace(t *testing.T) {
	o, err := Decode(strings.NewReader("{\"type\":\"Point\",\"coordinates\":[1,2]}\n\n"), config.FormatJSON)
	require.NoError(t, err)
	require.Equal(t, geo.BBox{1, 2, 1, 2}, o.BBox())
}

func TestEncode(t *testing.T) {
	point := &geo.Point{Coordinates: geo.Position{1.123456789, 2.987654321}}

	data, err := Encode(point, Output{Format: config.FormatJSON, Indent: "  "})
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  ")
	require.JSONEq(t, `{"type":"Point","coordinates":[1.123456789,2.987654321],"bbox":[1.123456789,2.987654321,1.123456789,2.987654321]}`, string(data))

	data, err = Encode(point, Output{Format: config.FormatJSON, Indent: "  ", Minify: true})
	require.NoError(t, err)
	require.Equal(t, 1, bytes.Count(data, []byte("\n")))
	require.True(t, json.Valid(data))

	data, err = Encode(point, Output{Format: config.FormatJSON, Minify: true, Precision: 3})
	require.NoError(t, err)
	require.Contains(t, string(data), "1.12")
	require.NotContains(t, string(data), "1.123456789")

	data, err = Encode(point, Output{Format: config.FormatYAML})
	require.NoError(t, err)
	require.Contains(t, string(data), "type: Point")
}

func TestWrite(t *testing.T) {
	point := &geo.Point{Coordinates: geo.Position{1, 2}}
	out := OutputFromConfig(config.Default())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", point, out))
	require.Contains(t, buf.String(), `"Point"`)

	path := filepath.Join(t.TempDir(), "nested", "point.geojson")
	require.NoError(t, Write(nil, path, point, out))

	o, err := Read(context.Background(), nil, path)
	require.NoError(t, err)
	require.Equal(t, geo.BBox{1, 2, 1, 2}, o.BBox())
}
