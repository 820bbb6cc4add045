// Package students serves the student list and detail screens.
package students

import (
	"net/http"

	"github.com/louisbranch/studentadmin/internal/services/web/module"
	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

// Module provides the student record routes.
type Module struct {
	gateway studentapp.Gateway
	base    modulehandler.Base
}

// New returns a students module with no gateway (degraded mode).
func New() Module {
	return Module{base: modulehandler.NewBase(nil)}
}

// NewWithGateway returns a students module backed by gateway.
func NewWithGateway(gateway studentapp.Gateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "students" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	return studentapp.IsGatewayHealthy(m.gateway)
}

// Mount wires student route handlers.
func (m Module) Mount() (module.Mount, error) {
	gateway := m.gateway
	if gateway == nil {
		gateway = studentapp.NewUnavailableGateway()
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(gateway, m.base))
	return module.Mount{Prefix: routepath.StudentsPrefix, Handler: mux}, nil
}
