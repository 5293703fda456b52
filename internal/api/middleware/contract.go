package middleware

import "time"

// MetricsCollector метрики HTTP запросов
type MetricsCollector interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
