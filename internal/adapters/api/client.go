// Package api implements the resource gateways against the CRM HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
	"go.trai.ch/zerr"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 8 << 20

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-ID"

var errMalformedBody = errors.New("response body is not valid JSON")

// Client performs single round trips against the API and decodes envelopes.
// It is shared by the product and user gateways.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	tracer     ports.Tracer
	metrics    ports.Metrics
	logger     ports.Logger
	requestID  func() string
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTracer records one span per call.
func WithTracer(t ports.Tracer) Option {
	return func(cl *Client) {
		cl.tracer = t
	}
}

// WithMetrics records per-call counters and latency.
func WithMetrics(m ports.Metrics) Option {
	return func(cl *Client) {
		cl.metrics = m
	}
}

// WithLogger logs each call at debug level.
func WithLogger(l ports.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

// WithRequestID overrides the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(cl *Client) {
		cl.requestID = fn
	}
}

// NewClient builds a client from the resolved settings.
func NewClient(settings domain.Settings, opts ...Option) *Client {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		token:      settings.Token,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     telemetry.NewNoOpTracer(),
		requestID:  uuid.NewString,
		now:        time.Now,
	}
	if settings.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(settings.RateLimit), domain.DefaultRateBurst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes one round trip.
type call struct {
	resource domain.Resource
	op       string
	method   string
	path     string
	query    url.Values
	body     any
	// want is the envelope shape the endpoint declares for success responses.
	// shapeEmpty accepts an empty body or a wrapped envelope without data.
	want shape
}

func (c call) name() string {
	return c.resource.String() + "." + c.op
}

// do performs c and returns the decoded success envelope.
func (c *Client) do(ctx context.Context, cl call) (env envelope, err error) {
	ctx, span := c.tracer.Start(ctx, "gateway."+cl.op,
		ports.WithAttribute("resource", cl.resource.String()),
		ports.WithAttribute("http.method", cl.method),
		ports.WithAttribute("http.path", cl.path),
	)
	start := c.now()
	status := 0
	reqID := c.requestID()

	defer func() {
		elapsed := c.now().Sub(start)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		if c.metrics != nil {
			c.metrics.GatewayCall(cl.resource, cl.op, err, elapsed)
		}
		if c.logger != nil {
			c.logger.Debug("gateway call",
				"op", cl.name(), "method", cl.method, "path", cl.path,
				"status", status, "elapsed", elapsed, "request_id", reqID)
		}
	}()

	if c.limiter != nil {
		if waitErr := c.limiter.Wait(ctx); waitErr != nil {
			return envelope{}, c.transportErr(cl, 0, waitErr)
		}
	}

	req, err := c.newRequest(ctx, cl, reqID)
	if err != nil {
		return envelope{}, c.transportErr(cl, 0, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, c.transportErr(cl, 0, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	status = resp.StatusCode
	span.SetAttribute("http.status_code", status)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return envelope{}, c.transportErr(cl, status, err)
	}

	env, decodeErr := decodeEnvelope(body)
	if decodeErr == nil && env.isFailure(status) {
		code := status
		if env.hasStatusCode && env.statusCode >= 400 {
			code = env.statusCode
		}
		return envelope{}, &domain.GatewayError{
			Kind:          domain.FailureApplication,
			Op:            cl.name(),
			StatusCode:    code,
			ServerMessage: env.message,
		}
	}

	if status < 200 || status > 299 {
		return envelope{}, c.transportErr(cl, status, nil)
	}
	if decodeErr != nil {
		return envelope{}, c.transportErr(cl, status, unexpected(decodeErr))
	}

	if err := checkShape(cl.want, env); err != nil {
		return envelope{}, c.transportErr(cl, status, err)
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, cl call, reqID string) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader = http.NoBody
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) transportErr(cl call, status int, err error) error {
	return &domain.GatewayError{
		Kind:       domain.FailureTransport,
		Op:         cl.name(),
		StatusCode: status,
		Err:        err,
	}
}

// checkShape enforces the shape an endpoint declares.
func checkShape(want shape, env envelope) error {
	switch want {
	case shapeWrapped:
		if env.shape == shapeWrapped && env.hasData() {
			return nil
		}
	case shapeBare:
		if env.shape == shapeBare {
			return nil
		}
	case shapeEmpty:
		if env.shape == shapeEmpty || env.shape == shapeWrapped {
			return nil
		}
	}
	err := zerr.With(zerr.Wrap(domain.ErrUnexpectedEnvelope, "check response shape"), "want", want.String())
	return zerr.With(err, "got", env.shape.String())
}

// payload returns the JSON value that carries the records of a success envelope.
func (e envelope) payload() json.RawMessage {
	if e.shape == shapeBare {
		return e.items
	}
	return e.data
}

// decodeInto unmarshals the envelope payload into v, reporting failures as unexpected envelopes.
func (c *Client) decodeInto(cl call, env envelope, v any) error {
	if err := json.Unmarshal(env.payload(), v); err != nil {
		return c.transportErr(cl, http.StatusOK, unexpected(err))
	}
	return nil
}

// unexpected keeps ErrUnexpectedEnvelope matchable while recording the decoder's complaint.
func unexpected(cause error) error {
	return zerr.With(zerr.Wrap(domain.ErrUnexpectedEnvelope, "decode response"), "cause", cause.Error())
}

func pathID(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}
