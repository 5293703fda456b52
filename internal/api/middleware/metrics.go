package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// unmatchedRoute метка для запросов вне зарегистрированных маршрутов
const unmatchedRoute = "unmatched"

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
func MetricsMiddleware(m MetricsCollector) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
