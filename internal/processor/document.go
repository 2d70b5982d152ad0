// Package processor handles reading and writing of GeoJSON documents.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/terraformer/internal/config"
	"github.com/woozymasta/terraformer/internal/geo"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	jsonmin "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

const mimeJSON = "application/json"

// Output controls how documents are written.
type Output struct {
	Format string
	Indent string
	Minify bool

	// Precision is the number of significant digits kept by the minifier.
	// Zero keeps numbers as they are.
	Precision int
}

// OutputFromConfig builds the output settings from the loaded configuration.
func OutputFromConfig(cfg *config.Config) Output {
	return Output{
		Format: cfg.Format,
		Indent: cfg.Indent,
		Minify: cfg.Minify,
	}
}

// FormatOf guesses the document format from a path or URL extension.
func FormatOf(source string) string {
	ext := strings.ToLower(filepath.Ext(strings.SplitN(source, "?", 2)[0]))
	if ext == ".yaml" || ext == ".yml" {
		return config.FormatYAML
	}

	return config.FormatJSON
}

// Read loads a GeoJSON document from stdin ("" or "-"), an HTTP(S) URL or a file.
func Read(ctx context.Context, client *http.Client, source string) (geo.Object, error) {
	switch {
	case source == "" || source == "-":
		log.Debug().Msg("Reading document from stdin")
		return Decode(os.Stdin, config.FormatJSON)

	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		log.Debug().Str("source", source).Msg("Fetching document")
		return fetch(ctx, client, source)

	default:
		log.Debug().Str("source", source).Msg("Reading document from file")

		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		// Explicitly ignore close error as it's a read-only operation
		defer func() { _ = f.Close() }()

		return Decode(f, FormatOf(source))
	}
}

// Decode parses a JSON or YAML GeoJSON document.
func Decode(r io.Reader, format string) (geo.Object, error) {
	var raw any

	switch format {
	case config.FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", trailingData(err))
		}
	default:
		if err := DecodeJSON(r, &raw); err != nil {
			return nil, err
		}
	}

	return geo.Decode(raw)
}

// DecodeJSON decodes exactly one JSON value from r into v.
// Anything but whitespace after the value is an error.
func DecodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode json: %w", trailingData(err))
	}

	return nil
}

// trailingData reports what followed the first document. Read errors such as
// *http.MaxBytesError are kept as is.
func trailingData(err error) error {
	if err != nil {
		var syntaxErr *json.SyntaxError
		if !errors.As(err, &syntaxErr) {
			return err
		}
	}

	return fmt.Errorf("%w: trailing data after document", geo.ErrInvalidInput)
}

// Encode serializes v, a geo.Object or any plain value, in the requested format.
func Encode(v any, out Output) ([]byte, error) {
	if out.Format == config.FormatYAML {
		return yaml.Marshal(v)
	}

	var (
		data []byte
		err  error
	)
	if out.Indent != "" && !out.Minify {
		data, err = json.MarshalIndent(v, "", out.Indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, err
	}

	if out.Minify {
		return minifyJSON(data, out.Precision)
	}

	return append(data, '\n'), nil
}

func minifyJSON(data []byte, precision int) ([]byte, error) {
	m := minify.New()
	m.Add(mimeJSON, &jsonmin.Minifier{Precision: precision})

	var buf bytes.Buffer
	if err := m.Minify(mimeJSON, &buf, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("minify: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Write encodes v to path, or to w when path is empty.
func Write(w io.Writer, path string, v any, out Output) error {
	data, err := Encode(v, out)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = w.Write(data)
		return err
	}

	return save(path, data)
}

// save writes data to path, creating parent directories.
func save(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Document saved")

	return nil
}
