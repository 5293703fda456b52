package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

var traceContext = propagation.TraceContext{}

// AccessLog пишет строку access-лога на каждый запрос.
// Входящий W3C traceparent переносится в контекст запроса, его trace id попадает в лог
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()

			requestID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			r = r.WithContext(traceContext.Extract(r.Context(), propagation.HeaderCarrier(r.Header)))

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			var traceID string
			if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
				traceID = sc.TraceID().String()
			}

			log.Info("type: access, method: %s, url: %s, status: %d, proto: %s, userAgent: %s, requestID: %s, traceID: %s, latency: %s",
				r.Method,
				r.URL.Path,
				rec.status,
				r.Proto,
				r.Header.Get("User-Agent"),
				requestID,
				traceID,
				time.Since(start),
			)
		})
	}
}
