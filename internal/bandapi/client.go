// Package bandapi provides a client for the band site REST API.
package bandapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when the band does not exist.
var ErrNotFound = errors.New("band not found")

const (
	// DefaultBaseURL is the API root of a locally served site.
	DefaultBaseURL = "http://127.0.0.1:8000/api/v1"

	userAgent = "turntable/1.0"
)

// Client is a band API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Bands lists every band.
func (c *Client) Bands(ctx context.Context) ([]Band, error) {
	var bands []Band
	if err := c.get(ctx, "/bands/", &bands); err != nil {
		return nil, err
	}
	return bands, nil
}

// Band fetches one band by id.
func (c *Client) Band(ctx context.Context, id int) (*Band, error) {
	var band Band
	if err := c.get(ctx, "/bands/"+strconv.Itoa(id), &band); err != nil {
		return nil, err
	}
	return &band, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
