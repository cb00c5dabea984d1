package middleware

import "time"

// Metrics HTTP метрики
type Metrics interface {
	ObserveHTTP(route, method string, status int, elapsed time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
