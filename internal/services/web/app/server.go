package app

import (
	"net/http"

	"github.com/louisbranch/studentadmin/internal/services/web/platform/httpx"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

// BuildRootHandler composes the module routes and sends the site root to the
// student list.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	composed, err := Compose(ComposeInput{
		PublicModules:       cfg.PublicModules,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
	if err != nil {
		return nil, err
	}
	root := http.NewServeMux()
	root.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteRedirect(w, r, routepath.Students)
	})
	root.Handle(routepath.Root, composed)
	return root, nil
}
