// Package lead submits validated form payloads to the remote lead
// endpoint, degrading to a fire-and-forget transport when the primary
// request is blocked or times out.
package lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// submitTimeout bounds the primary request before falling back.
	submitTimeout = 15 * time.Second
	// fallbackTimeout bounds the unconfirmed send.
	fallbackTimeout = 4 * time.Second

	// The payload is JSON but travels as a simple content type so the
	// endpoint accepts it without a preflight round-trip.
	submitContentType = "text/plain;charset=utf-8"

	submissionIDHeader = "X-Submission-Id"
)

// ErrNotConfigured is returned when no endpoint is set.
var ErrNotConfigured = errors.New("lead: endpoint not configured")

// ErrBlocked is returned when both the primary request and the fallback
// transport failed to hand the payload to the network.
var ErrBlocked = errors.New("lead: submission blocked before reaching the endpoint")

// EndpointError carries the error message the endpoint reported.
type EndpointError struct {
	Message string
}

func (e *EndpointError) Error() string { return "lead: endpoint: " + e.Message }

// Receipt describes how a submission completed.
type Receipt struct {
	SubmissionID string
	// Confirmed is true when the endpoint acknowledged with ok:true.
	// A fallback delivery is accepted but never confirmed.
	Confirmed bool
	Fallback  bool
}

// Client talks to the lead endpoint.
type Client struct {
	endpoint string
	primary  *resty.Client
	fallback *resty.Client
}

// NewClient builds a client for the configured endpoint. An empty
// endpoint yields a client whose Submit returns ErrNotConfigured, so
// pages without a wired endpoint degrade to an inactive form.
func NewClient(endpoint string) *Client {
	endpoint = strings.TrimSpace(endpoint)
	return &Client{
		endpoint: endpoint,
		primary: resty.New().
			SetTimeout(submitTimeout).
			SetHeader("Content-Type", submitContentType),
		fallback: resty.New().
			SetTimeout(fallbackTimeout).
			SetHeader("Content-Type", submitContentType),
	}
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool { return c != nil && c.endpoint != "" }

type endpointResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Submit POSTs the JSON-encoded payload. On transport failure or
// timeout it attempts the fallback transport; the fallback reports
// acceptance, not delivery.
func (c *Client) Submit(ctx context.Context, payload any) (Receipt, error) {
	if !c.Configured() {
		return Receipt{}, ErrNotConfigured
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Receipt{}, fmt.Errorf("lead: encode payload: %w", err)
	}

	receipt := Receipt{SubmissionID: uuid.NewString()}

	resp, err := c.primary.R().
		SetContext(ctx).
		SetHeader(submissionIDHeader, receipt.SubmissionID).
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		if !isTransportFailure(err) {
			return receipt, fmt.Errorf("lead: submit: %w", err)
		}
		// Blocked or timed out before an answer: one-way send, no retry.
		if ferr := c.sendFallback(ctx, receipt.SubmissionID, body); ferr != nil {
			return receipt, fmt.Errorf("%w: %v", ErrBlocked, err)
		}
		receipt.Fallback = true
		return receipt, nil
	}

	var parsed endpointResponse
	if jerr := json.Unmarshal(resp.Body(), &parsed); jerr != nil {
		return receipt, &EndpointError{Message: "Risposta non valida dal server (non JSON)."}
	}
	if !resp.IsSuccess() || !parsed.OK {
		msg := strings.TrimSpace(parsed.Error)
		if msg == "" {
			msg = "Errore sconosciuto."
		}
		return receipt, &EndpointError{Message: msg}
	}
	receipt.Confirmed = true
	return receipt, nil
}

// sendFallback performs the unconfirmable send: the response body and
// status are ignored, success only means the request left the process.
func (c *Client) sendFallback(ctx context.Context, submissionID string, body []byte) error {
	_, err := c.fallback.R().
		SetContext(ctx).
		SetHeader(submissionIDHeader, submissionID).
		SetHeader("X-Transport", "fallback").
		SetBody(body).
		Post(c.endpoint)
	return err
}

func isTransportFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}
	var operr *net.OpError
	return errors.As(err, &operr)
}
