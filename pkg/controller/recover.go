package controller

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"skillmatch/pkg/logger"

	"go.uber.org/zap"
)

// WithRecover logs a panicking handler and answers 500 instead of dropping
// the connection. http.ErrAbortHandler is re-raised.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler { //nolint: errorlint
				panic(v)
			}

			logger.Error(r.Context(), "Recovered from handler panic",
				zap.String("panic", fmt.Sprint(v)),
				zap.ByteString("stack", debug.Stack()),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
