package middleware

import (
	"net/http"
	"time"

	"atn-virtual/crewcenter/internal/logging"
)

type respLogger struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (l *respLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *respLogger) Write(b []byte) (int, error) {
	n, err := l.ResponseWriter.Write(b)
	l.bytes += n
	return n, err
}

// Logging writes a debug line per request with headers and response size.
// It is only mounted outside production.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Debug("→ request",
			"method", r.Method,
			"url", r.URL.String(),
			"user_agent", r.UserAgent(),
			"remote_addr", r.RemoteAddr,
		)

		lw := &respLogger{ResponseWriter: w, status: http.StatusOK}

		start := time.Now()
		next.ServeHTTP(lw, r)

		logging.Debug("← response",
			"method", r.Method,
			"path", r.URL.Path,
			"status", lw.status,
			"bytes", lw.bytes,
			"duration", time.Since(start).String(),
		)
	})
}
