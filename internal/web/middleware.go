package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"showbill/internal/logger"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// RequestLogger tags every request with a short id and logs method, path,
// status and duration once the handler returns.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.New().String()[:8]
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			log.LogAPI(r.Method, r.URL.Path,
				fmt.Sprintf("%d [%s]", ww.status, requestID),
				time.Since(start).String())
		})
	}
}
