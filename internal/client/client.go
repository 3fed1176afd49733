// Package client talks to the event service's REST API on behalf of the
// listing UI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/Eursukkul/event-manager/internal/dto"
	"github.com/Eursukkul/event-manager/internal/models"
	"github.com/imroc/req"
)

var (
	ErrNotFound = errors.New("event not found")

	// ErrRequestInFlight is returned when a mutation is attempted while
	// another one from the same Client has not settled yet.
	ErrRequestInFlight = errors.New("a request is already in progress")
)

// APIError is a non-2xx answer from the service other than 404.
type APIError struct {
	StatusCode int
	Message    string
	Cause      string
}

func (e *APIError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("event service: %d %s: %s", e.StatusCode, e.Message, e.Cause)
	}
	return fmt.Sprintf("event service: %d %s", e.StatusCode, e.Message)
}

// Client calls the six event endpoints. Reads may run concurrently; at most
// one mutation (create, update, delete) is in flight at a time.
type Client struct {
	baseURL string
	r       *req.Req
	busy    atomic.Bool
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api". A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	r := req.New()
	if httpClient != nil {
		r.SetClient(httpClient)
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), r: r}
}

func (c *Client) ListAll(ctx context.Context) ([]models.Event, error) {
	return c.list(ctx, "/get-all")
}

// ListByStatus returns events whose status contains status, ignoring case.
func (c *Client) ListByStatus(ctx context.Context, status string) ([]models.Event, error) {
	return c.list(ctx, "/get-status", req.QueryParam{"status": status})
}

func (c *Client) Get(ctx context.Context, id string) (*models.Event, error) {
	var body dto.EventResponse
	if err := c.do(ctx, http.MethodGet, "/get-event/"+url.PathEscape(id), &body); err != nil {
		return nil, err
	}
	event := body.ToModel()
	return &event, nil
}

// Create validates the form locally and submits it. An incomplete form
// returns ErrIncompleteForm without contacting the service.
func (c *Client) Create(ctx context.Context, form EventForm) (*models.Event, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPost, "/create", req.BodyJSON(form.request()))
}

// Update sends the complete form as a replacement for the event's fields.
func (c *Client) Update(ctx context.Context, id string, form EventForm) (*models.Event, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return c.mutate(ctx, http.MethodPut, "/edit-event/"+url.PathEscape(id), req.BodyJSON(form.request()))
}

// Delete removes the event without showing it first. PrepareDelete is the
// two-step variant used by interactive callers.
func (c *Client) Delete(ctx context.Context, id string) (*models.Event, error) {
	return c.mutate(ctx, http.MethodDelete, "/delete-event/"+url.PathEscape(id))
}

func (c *Client) list(ctx context.Context, path string, vs ...any) ([]models.Event, error) {
	var body []dto.EventResponse
	if err := c.do(ctx, http.MethodGet, path, &body, vs...); err != nil {
		return nil, err
	}
	events := make([]models.Event, len(body))
	for i, e := range body {
		events[i] = e.ToModel()
	}
	return events, nil
}

func (c *Client) mutate(ctx context.Context, method, path string, vs ...any) (*models.Event, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer c.busy.Store(false)

	var body dto.MutationResponse
	if err := c.do(ctx, method, path, &body, vs...); err != nil {
		return nil, err
	}
	if body.Event == nil {
		return nil, fmt.Errorf("%s %s: response has no event", method, path)
	}
	event := body.Event.ToModel()
	return &event, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any, vs ...any) error {
	args := append([]any{ctx, req.Header{"Accept": "application/json"}}, vs...)

	resp, err := c.r.Do(method, c.baseURL+path, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	status := resp.Response().StatusCode
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status < 200 || status > 299:
		return decodeAPIError(status, resp.Bytes())
	}

	if err := resp.ToJSON(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		apiErr.Cause = payload.Error
	}
	return apiErr
}
