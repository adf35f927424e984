package redelex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when Redelex has no process for the request.
	ErrNotFound = errors.New("proceso not found")
	// ErrUnauthorized is returned when Redelex rejects the API key.
	ErrUnauthorized = errors.New("redelex rejected credentials")
)

// Client calls the Redelex REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// GetProceso fetches the detail of a process.
func (c *Client) GetProceso(ctx context.Context, id int) (*Proceso, error) {
	var p Proceso
	if err := c.get(ctx, "/procesos/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProcesosPorIdentificacion lists the processes where identificacion is the plaintiff.
func (c *Client) ProcesosPorIdentificacion(ctx context.Context, identificacion string) ([]Proceso, error) {
	var out []Proceso
	q := url.Values{"identificacion": {identificacion}}
	if err := c.get(ctx, "/procesos", q, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Proceso{}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dst any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build redelex request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("redelex request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 300:
		return fmt.Errorf("redelex returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode redelex response: %w", err)
	}
	return nil
}
