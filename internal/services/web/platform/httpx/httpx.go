// Package httpx provides HTTP middleware helpers used by web modules.
package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
)

// RequestIDHeader carries the correlation id across the web request.
const RequestIDHeader = "X-Request-ID"

const refreshHeader = "Refresh"

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in declaration order; the first one sees the
// request first. Nil entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	wrapped := orNotFound(handler)
	for _, mw := range slices.Backward(middleware) {
		if mw != nil {
			wrapped = mw(wrapped)
		}
	}
	return wrapped
}

func orNotFound(h http.Handler) http.Handler {
	if h == nil {
		return http.NotFoundHandler()
	}
	return h
}

// RequestID reuses an incoming X-Request-ID or mints a UUID, and echoes it on
// the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(RequestIDHeader, id)
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverPanic logs a panicking handler with its stack and answers 500.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				method, path, id := requestLabel(r)
				logger.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					method, path, id, recovered, bytes.TrimSpace(debug.Stack()))
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// requestLabel names a request for log lines, using "-" for missing parts.
func requestLabel(r *http.Request) (method, path, id string) {
	method, path, id = "-", "-", "-"
	if r == nil {
		return method, path, id
	}
	if m := strings.TrimSpace(r.Method); m != "" {
		method = m
	}
	if r.URL != nil && r.URL.Path != "" {
		path = r.URL.Path
	}
	if v := strings.TrimSpace(r.Header.Get(RequestIDHeader)); v != "" {
		id = v
	}
	return method, path, id
}

// WriteError answers with the status mapped from err. Server faults get the
// generic status text so internal detail stays in the logs.
func WriteError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	switch {
	case err == nil:
		w.WriteHeader(status)
	case status >= http.StatusInternalServerError:
		http.Error(w, http.StatusText(status), status)
	default:
		http.Error(w, err.Error(), status)
	}
}

// RequestContext returns r.Context() with a nil-safe fallback to context.Background().
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// WriteHTML writes an HTML payload with the provided status code.
func WriteHTML(w http.ResponseWriter, status int, payload string) error {
	if w == nil {
		return fmt.Errorf("response writer is required")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, payload)
	return err
}

// WriteRedirect writes a 302 redirect response.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if r == nil {
		w.Header().Set("Location", location)
		w.WriteHeader(http.StatusFound)
		return
	}
	http.Redirect(w, r, location, http.StatusFound)
}

// SetDelayedNavigation asks the browser to load location once delay has
// elapsed. It must be called before the response status is written.
func SetDelayedNavigation(w http.ResponseWriter, location string, delay time.Duration) {
	if w == nil || strings.TrimSpace(location) == "" {
		return
	}
	w.Header().Set(refreshHeader, RefreshValue(location, delay))
}

// RefreshValue formats a Refresh header or meta refresh content value.
func RefreshValue(location string, delay time.Duration) string {
	seconds := int64((delay + time.Second - 1) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d; url=%s", seconds, location)
}
