package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/studio-booking/internal/api/handlers"
)

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					log.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					handlers.RespondInternalError(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
