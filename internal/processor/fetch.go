package processor

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/woozymasta/terraformer/internal/config"
	"github.com/woozymasta/terraformer/internal/geo"
)

// NewClient returns the HTTP client used to fetch remote documents.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
		},
		Timeout: timeout,
	}
}

// fetch downloads and decodes a remote GeoJSON document.
// YAML is selected by the Content-Type header or the URL extension.
func fetch(ctx context.Context, client *http.Client, url string) (geo.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/geo+json, application/json, application/yaml;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	// Explicitly ignore close error as it's a read-only operation
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}

	format := FormatOf(url)
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		if strings.Contains(mediaType, "yaml") {
			format = config.FormatYAML
		} else if strings.Contains(mediaType, "json") {
			format = config.FormatJSON
		}
	}

	return Decode(resp.Body, format)
}
