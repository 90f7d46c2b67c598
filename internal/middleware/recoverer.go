package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Recoverer turns a panicking handler into a 500 response with the fixed
// generic body. The panic value and stack are logged in full; the caller
// only ever sees the generic message.
func Recoverer(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error().
						Interface("panic", rvr).
						Bytes("stack", debug.Stack()).
						Str("path", r.URL.Path).
						Msg("Panic in HTTP handler")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"message": "Something went wrong"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
