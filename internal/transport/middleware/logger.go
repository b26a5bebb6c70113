package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/pkg/ctxutil"
)

// IdempotencyKeyHeader is the out-of-band idempotency token.
const IdempotencyKeyHeader = "Idempotency-Key"

// Logger writes one "http.request" record per request. Responses with a 5xx
// status are logged at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			aw := &accessWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(aw, r)

			level := slog.LevelInfo
			if aw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", aw.attrs(r, time.Since(start))...)
		})
	}
}

// accessWriter records what the access log needs: the status written and,
// since Auth runs further in, the user the request was authenticated as.
type accessWriter struct {
	http.ResponseWriter
	status  int
	written bool
	user    uuid.UUID
}

func (w *accessWriter) WriteHeader(code int) {
	if !w.written {
		w.status, w.written = code, true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *accessWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *accessWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *accessWriter) attrs(r *http.Request, elapsed time.Duration) []slog.Attr {
	ctx := r.Context()
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", w.status),
		slog.Duration("duration", elapsed),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	user := w.user
	if user == uuid.Nil {
		user, _ = ctxutil.UserIDFromCtx(ctx)
	}
	if user != uuid.Nil {
		attrs = append(attrs, slog.String("user_id", user.String()))
	}
	if key := r.Header.Get(IdempotencyKeyHeader); key != "" {
		attrs = append(attrs, slog.String("idempotency_key", key))
	}
	return attrs
}
