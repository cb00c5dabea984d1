package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку на каждый запрос
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			default:
				log.Info("%s %s - %d (%s)", r.Method, r.URL.Path, rec.status, elapsed)
			}
		})
	}
}
