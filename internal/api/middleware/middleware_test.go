package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
)

type observation struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	observed []observation
}

func (f *fakeMetrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	f.observed = append(f.observed, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/wizard/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wizard/sessions/abc", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, observation{
		method: http.MethodGet,
		route:  "/api/v1/wizard/sessions/{sessionId}",
		status: http.StatusConflict,
	}, m.observed[0])
}

func TestMetricsMiddleware_DefaultStatusIsOK(t *testing.T) {
	m := &fakeMetrics{}
	h := MetricsMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, unmatchedRoute, m.observed[0].route)
	assert.Equal(t, http.StatusOK, m.observed[0].status)
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	traceID := trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     trace.SpanID{0, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/sessions", nil)
	req = req.WithContext(trace.ContextWithSpanContext(req.Context(), sc))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	requestID := rec.Header().Get(RequestIDHeader)
	_, err = uuid.Parse(requestID)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "method: POST")
	assert.Contains(t, out, "status: 201")
	assert.Contains(t, out, "requestID: "+requestID)
	assert.Contains(t, out, "traceID: 4bf92f3577b34da6a3ce929d0e0e4736")
}

func TestAccessLog_ExtractsTraceparentHeader(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)

	var inner trace.SpanContext
	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wizard/sessions/x", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "traceID: 4bf92f3577b34da6a3ce929d0e0e4736")
	require.True(t, inner.IsValid())
	assert.True(t, inner.IsRemote())
	assert.Equal(t, "00f067aa0ba902b7", inner.SpanID().String())
}

func TestAccessLog_NoTraceparent(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "garbage")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "traceID: ,")
}

func TestAccessLog_KeepsIncomingRequestID(t *testing.T) {
	h := AccessLog(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)

	h := Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "boom")
}
