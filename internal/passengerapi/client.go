// Package passengerapi talks to the passenger REST API (GET/PUT /user/passengers/{id}).
package passengerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SHAREMYTRIP_WEB/internal/dto"
)

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 4 << 10

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) passengerURL(id string) string {
	return c.BaseURL + "/user/passengers/" + url.PathEscape(id)
}

// GetPassenger fetches the profile for id. Keys missing from the body decode to "".
func (c *Client) GetPassenger(ctx context.Context, id string) (*dto.PassengerProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.passengerURL(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(req, resp); err != nil {
		return nil, err
	}

	var profile dto.PassengerProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode passenger %s: %w", id, err)
	}
	return &profile, nil
}

// UpdatePassenger sends the full profile and returns the response status.
// Non-2xx answers come back as *StatusError alongside the status code.
func (c *Client) UpdatePassenger(ctx context.Context, id string, profile dto.PassengerProfile) (int, error) {
	body, err := json.Marshal(profile)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.passengerURL(id), bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(req, resp); err != nil {
		return resp.StatusCode, err
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// Ping checks that the API host answers at all; any HTTP status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.BaseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func checkStatus(req *http.Request, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(b)),
	}
}
