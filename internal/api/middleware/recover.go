package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
)

// Recover перехватывает панику в обработчике и отвечает 500
func Recover(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if re := recover(); re != nil {
					err, ok := re.(error)
					if !ok {
						err = fmt.Errorf("%v: %w", re, ErrPanic)
					}
					log.Error("type: panic, method: %s, url: %s, error: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
