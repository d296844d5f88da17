package ipc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"wallet-settings/internal/core/ports"
)

var countryCode = regexp.MustCompile(`^[a-z]{2}$`)

// GeoIPLocale resolves the user's country from a plain-text GeoIP endpoint
// that answers with an ISO 3166 alpha-2 code.
type GeoIPLocale struct {
	http ports.HTTPClient
	url  string
}

func NewGeoIPLocale(httpClient ports.HTTPClient, url string) *GeoIPLocale {
	return &GeoIPLocale{http: httpClient, url: url}
}

// Country returns the lower-case country code. It has the Handler signature
// so it can be registered on a Bus directly.
func (g *GeoIPLocale) Country(ctx context.Context, _ ...string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return "", fmt.Errorf("geoip: create request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("geoip: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("geoip: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return "", fmt.Errorf("geoip: read response: %w", err)
	}

	country := strings.ToLower(strings.TrimSpace(string(raw)))
	if !countryCode.MatchString(country) {
		return "", fmt.Errorf("geoip: malformed country code %q", country)
	}
	return country, nil
}

// StaticLocale answers every request with the same country code.
func StaticLocale(country string) Handler {
	country = strings.ToLower(strings.TrimSpace(country))
	return func(context.Context, ...string) (string, error) {
		return country, nil
	}
}
