package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

// requestLog collects fields that are only known once the request has been
// authenticated and routed, which happens on copies of the request below Logger.
type requestLog struct {
	userID    string
	route     string
	invoiceID string
}

type requestLogKey struct{}

// Logger returns middleware that logs each HTTP request with its method, path,
// status and duration, plus request_id. Route, user_id and invoice_id are
// included when an inner Route middleware recorded them.
// Chain failures answered with 502 or 504 log at warn level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			info := &requestLog{}
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				info.userID = userID.String()
			}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, info)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if info.route != "" {
				attrs = append(attrs, slog.String("route", info.route))
			}
			if info.userID != "" {
				attrs = append(attrs, slog.String("user_id", info.userID))
			}
			if info.invoiceID != "" {
				attrs = append(attrs, slog.String("invoice_id", info.invoiceID))
			}

			level := slog.LevelInfo
			switch {
			case sw.status == http.StatusBadGateway, sw.status == http.StatusGatewayTimeout:
				level = slog.LevelWarn
			case sw.status >= 500:
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// Route records the matched route, the caller and the {id} path value for
// the enclosing Logger. It must run after the mux has matched the request.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := r.Context().Value(requestLogKey{}).(*requestLog); ok {
			info.route = r.Pattern
			info.invoiceID = r.PathValue("id")
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				info.userID = userID.String()
			}
		}
		next.ServeHTTP(w, r)
	})
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
