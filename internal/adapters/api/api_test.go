package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/api"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

// recorded is one request seen by the fake API.
type recorded struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   map[string]any
}

// fakeAPI serves canned responses keyed by "METHOD /path".
type fakeAPI struct {
	t         *testing.T
	mu        sync.Mutex
	responses map[string]func(w http.ResponseWriter)
	requests  []recorded
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{t: t, responses: map[string]func(http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeAPI) on(route string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[route] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	rec := recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  map[string]string{},
		Header: r.Header.Clone(),
	}
	for k := range r.URL.Query() {
		rec.Query[k] = r.URL.Query().Get(k)
	}
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		require.NoError(f.t, json.Unmarshal(data, &rec.Body))
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	respond, ok := f.responses[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	respond(w)
}

func (f *fakeAPI) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newClient(srv *httptest.Server, opts ...api.Option) *api.Client {
	settings := domain.DefaultSettings()
	settings.BaseURL = srv.URL + "/api/"
	settings.Token = "secret"
	return api.NewClient(settings, opts...)
}

func listDescriptor(t *testing.T, r domain.Resource, page int, filters map[string]string) domain.Descriptor {
	t.Helper()
	state := domain.NewListState(10)
	for k, v := range filters {
		state = state.WithFilter(k, &v)
	}
	state = state.WithPage(page)
	d, err := domain.Derive(r, state)
	require.NoError(t, err)
	return d
}

func requireGatewayError(t *testing.T, err error, kind domain.FailureKind) *domain.GatewayError {
	t.Helper()
	require.Error(t, err)
	var gwErr *domain.GatewayError
	require.True(t, errors.As(err, &gwErr), "want *domain.GatewayError, got %T: %v", err, err)
	assert.Equal(t, kind, gwErr.Kind)
	return gwErr
}

func TestClient_Headers(t *testing.T) {
	fake, srv := newFakeAPI(t)
	fake.on("DELETE /api/Product/7", http.StatusOK, "")

	gw := api.NewProducts(newClient(srv, api.WithRequestID(func() string { return "req-1" })))
	require.NoError(t, gw.Delete(context.Background(), "7"))

	got := fake.last()
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "req-1", got.Header.Get(api.RequestIDHeader))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestClient_NoTokenNoAuthorization(t *testing.T) {
	fake, srv := newFakeAPI(t)
	fake.on("DELETE /api/Product/7", http.StatusNoContent, "")

	settings := domain.DefaultSettings()
	settings.BaseURL = srv.URL + "/api"
	gw := api.NewProducts(api.NewClient(settings))
	require.NoError(t, gw.Delete(context.Background(), "7"))

	got := fake.last()
	assert.Empty(t, got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get(api.RequestIDHeader), "request id defaults to a uuid")
}

func TestClient_FailureTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		kind       domain.FailureKind
		statusCode int
		message    string
	}{
		{
			name:       "error envelope on non-2xx",
			status:     http.StatusConflict,
			body:       `{"statusCode":409,"statusMessage":"Email already exists","data":null}`,
			kind:       domain.FailureApplication,
			statusCode: 409,
			message:    "Email already exists",
		},
		{
			name:       "error envelope inside a 200",
			status:     http.StatusOK,
			body:       `{"statusCode":400,"statusMessage":"Category is inactive"}`,
			kind:       domain.FailureApplication,
			statusCode: 400,
			message:    "Category is inactive",
		},
		{
			name:       "non-2xx message without statusCode",
			status:     http.StatusBadRequest,
			body:       `{"message":"Invalid tenant"}`,
			kind:       domain.FailureApplication,
			statusCode: 400,
			message:    "Invalid tenant",
		},
		{
			name:       "non-2xx without envelope",
			status:     http.StatusInternalServerError,
			body:       `<html>oops</html>`,
			kind:       domain.FailureTransport,
			statusCode: 500,
			message:    "request failed with status 500",
		},
		{
			name:       "non-2xx empty body",
			status:     http.StatusBadGateway,
			body:       ``,
			kind:       domain.FailureTransport,
			statusCode: 502,
			message:    "request failed with status 502",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, srv := newFakeAPI(t)
			fake.on("POST /api/users/create", tt.status, tt.body)

			gw := api.NewUsers(newClient(srv))
			_, err := gw.Create(context.Background(), domain.UserInput{FullName: "A", Email: "a@example.com", RoleID: "1"})

			gwErr := requireGatewayError(t, err, tt.kind)
			assert.Equal(t, tt.statusCode, gwErr.StatusCode)
			assert.Equal(t, tt.message, gwErr.Message())
			assert.Equal(t, "users.create", gwErr.Op)
			assert.Equal(t, 1, fake.count(), "no retries")
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := newClient(srv)
	srv.Close()

	err := api.NewProducts(client).Delete(context.Background(), "1")
	gwErr := requireGatewayError(t, err, domain.FailureTransport)
	assert.Zero(t, gwErr.StatusCode)
	assert.ErrorIs(t, err, domain.ErrTransportFailure)
}

func TestClient_RateLimit(t *testing.T) {
	fake, srv := newFakeAPI(t)
	fake.on("DELETE /api/Product/1", http.StatusOK, "")

	settings := domain.DefaultSettings()
	settings.BaseURL = srv.URL + "/api"
	settings.RateLimit = 0.001
	gw := api.NewProducts(api.NewClient(settings))

	for i := 0; i < domain.DefaultRateBurst; i++ {
		require.NoError(t, gw.Delete(context.Background(), "1"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := gw.Delete(ctx, "1")
	requireGatewayError(t, err, domain.FailureTransport)
	assert.Equal(t, domain.DefaultRateBurst, fake.count())
}

func TestClient_ObservesCalls(t *testing.T) {
	fake, srv := newFakeAPI(t)
	fake.on("DELETE /api/Product/p1", http.StatusOK, "")
	fake.on("DELETE /api/Product/p2", http.StatusNotFound, `{"statusCode":404,"statusMessage":"Product not found"}`)

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMetrics(ctrl)
	log := mocks.NewMockLogger(ctrl)
	m.EXPECT().GatewayCall(domain.ResourceProducts, "delete", nil, gomock.Any())
	m.EXPECT().GatewayCall(domain.ResourceProducts, "delete", gomock.Not(gomock.Nil()), gomock.Any())
	log.EXPECT().Debug("gateway call", gomock.Any()).Times(2)

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	gw := api.NewProducts(newClient(srv,
		api.WithMetrics(m),
		api.WithLogger(log),
		api.WithTracer(telemetry.NewOTelTracerFrom(tp, "test")),
	))

	require.NoError(t, gw.Delete(context.Background(), "p1"))
	require.Error(t, gw.Delete(context.Background(), "p2"))

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "gateway.delete", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.status_code", 200))
	assert.Contains(t, spans[0].Attributes(), attribute.String("resource", "products"))
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestClient_WithHTTPClient(t *testing.T) {
	var called bool
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})}

	settings := domain.DefaultSettings()
	settings.BaseURL = "http://crm.invalid/api"
	gw := api.NewUsers(api.NewClient(settings, api.WithHTTPClient(hc)))

	require.NoError(t, gw.SetStatus(context.Background(), "1", true))
	assert.True(t, called)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
