// Package client is the typed Go client for the freelancedesk API. Each list
// page owns a Mirror kept in sync with the server by refetching after every
// mutation; the server stays the sole source of truth and the client never
// patches a list from a mutation response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client

	session *Session
	subs    []func(*Session)
}

// APIError carries the status code and server-provided message of a failed
// request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
			message = payload.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
