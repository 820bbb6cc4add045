// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// statusByKind is the response status each kind is served with. Kinds not
// listed are internal failures.
var statusByKind = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindUnavailable:  http.StatusServiceUnavailable,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
}

// kindByUpstreamStatus classifies Student API response codes that are not the
// canonical status of a kind.
var kindByUpstreamStatus = map[int]Kind{
	http.StatusUnprocessableEntity: KindInvalidInput,
	http.StatusBadGateway:          KindUnavailable,
	http.StatusGatewayTimeout:      KindUnavailable,
}

func asError(err error) (Error, bool) {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return Error{}, false
	}
	return appErr, true
}

// KindOf returns the error kind, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	if appErr, ok := asError(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	appErr, _ := asError(err)
	return strings.TrimSpace(appErr.Key)
}

// KindFromStatus classifies a Student API response status.
func KindFromStatus(code int) Kind {
	if kind, ok := kindByUpstreamStatus[code]; ok {
		return kind
	}
	for kind, status := range statusByKind {
		if status == code {
			return kind
		}
	}
	return KindUnknown
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
