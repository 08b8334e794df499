// Package provider holds adapters for the flight data provider that backs the
// flight lookup endpoints.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/flightasset/internal/domain"
)

var ErrUpstream = errors.New("flight provider unavailable")

// UpstreamError is returned when the upstream API answers with a non-2xx status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("flight provider returned %d: %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

const maxErrorBody = 512

// HTTPProvider calls the upstream flight API, forwarding the caller's access token.
type HTTPProvider struct {
	baseURL *url.URL
	client  *http.Client
}

func NewHTTPProvider(baseURL string, timeout time.Duration) (*HTTPProvider, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("provider url %q must be absolute", baseURL)
	}
	return &HTTPProvider{baseURL: u, client: &http.Client{Timeout: timeout}}, nil
}

func (p *HTTPProvider) Counts(ctx context.Context, accessToken, place string, date domain.Date) (*domain.FlightCounts, error) {
	q := url.Values{}
	if place != "" {
		q.Set("place", place)
	}
	q.Set("date", date.String())

	var counts domain.FlightCounts
	if err := p.get(ctx, "/flights", q, accessToken, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (p *HTTPProvider) Summary(ctx context.Context, accessToken string, date domain.Date) ([]domain.FlightCounts, error) {
	q := url.Values{}
	q.Set("date", date.String())

	var summary []domain.FlightCounts
	if err := p.get(ctx, "/flights/summary", q, accessToken, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (p *HTTPProvider) get(ctx context.Context, path string, query url.Values, accessToken string, dst any) error {
	u := *p.baseURL
	u.Path += path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
