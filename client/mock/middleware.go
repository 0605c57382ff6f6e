package mock

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/viant/clinic/internal/logctx"
)

// statusWriter captures the response status.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(p)
}

// recoverer turns a handler panic into a 500 answer.
func (s *Service) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logctx.From(r.Context()).Error("panic", slog.String("path", r.URL.Path), slog.Any("reason", rec))
				writeMessage(w, http.StatusInternalServerError, "Server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logging puts a request-scoped logger into the context, logs and counts the request.
func (s *Service) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger
		if id := r.Header.Get("X-Request-Id"); id != "" {
			logger = logger.With(slog.String("request_id", id))
		}
		r = r.WithContext(logctx.Into(r.Context(), logger))
		sw := &statusWriter{ResponseWriter: w}
		start := time.Now()
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		s.requests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		logger.Debug("http",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.status),
			slog.Duration("dur", time.Since(start)),
		)
	})
}
