// Package module defines the contract between feature modules and web
// composition.
package module

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Mount is the subtree a module serves. Prefix is an absolute path ending in
// a slash, and never the root itself.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Validate reports whether the mount can be registered.
func (m Mount) Validate() error {
	if reason := prefixProblem(m.Prefix); reason != "" {
		return fmt.Errorf("invalid prefix %q: %s", m.Prefix, reason)
	}
	if m.Handler == nil {
		return errors.New("handler is required")
	}
	return nil
}

func prefixProblem(prefix string) string {
	switch {
	case prefix == "":
		return "prefix is required"
	case strings.TrimSpace(prefix) != prefix:
		return "surrounding whitespace"
	case !strings.HasPrefix(prefix, "/"):
		return "must begin with /"
	case !strings.HasSuffix(prefix, "/"):
		return "must end with /"
	case prefix == "/":
		return "root path is reserved"
	}
	return ""
}

// Module is one feature area served under its own prefix.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is implemented by modules whose remote dependency can be
// missing; composition logs unhealthy modules at startup.
type HealthReporter interface {
	Healthy() bool
}
