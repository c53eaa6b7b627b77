package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nikitanikist/saleshub/pkg/logger"
)

// HealthCheckHandler builds a probe endpoint. With no checks it is a
// liveness probe answering 200 "ALIVE". With checks it is a readiness
// probe: all checks pass → 200 "READY", any failure → 500 "NOT_READY".
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
