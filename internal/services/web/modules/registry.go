package modules

import (
	"github.com/louisbranch/studentadmin/internal/services/web/module"
	"github.com/louisbranch/studentadmin/internal/services/web/modules/students"
	studentgateway "github.com/louisbranch/studentadmin/internal/services/web/modules/students/gateway"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/modulehandler"
)

// DefaultPublicModules returns the web modules served without authentication.
func DefaultPublicModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.Logger)
	gateway := studentgateway.NewHTTPGateway(studentgateway.HTTPGatewayDeps{
		Client:  deps.HTTPClient,
		BaseURL: deps.StudentAPIBaseURL,
		Tokens:  deps.Tokens,
		Metrics: deps.Metrics,
	})
	return []Module{
		students.NewWithGateway(gateway, base),
	}
}

// ModuleHealth reports availability per module id. Modules that do not
// report health are treated as available.
func ModuleHealth(mods []Module) map[string]bool {
	health := make(map[string]bool, len(mods))
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		healthy := true
		if reporter, ok := mod.(module.HealthReporter); ok {
			healthy = reporter.Healthy()
		}
		health[mod.ID()] = healthy
	}
	return health
}
