// Package modules defines web module registry helpers.
package modules

import (
	"log"

	module "github.com/louisbranch/studentadmin/internal/services/web/module"
	studentgateway "github.com/louisbranch/studentadmin/internal/services/web/modules/students/gateway"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the Student API transport and shared services required
// to compose the web module registry.
type Dependencies struct {
	StudentAPIBaseURL string
	HTTPClient        studentgateway.HTTPDoer
	Tokens            studentgateway.TokenSource
	Metrics           studentgateway.APIObserver
	Logger            *log.Logger
}
