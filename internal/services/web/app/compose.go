package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/studentadmin/internal/services/web/module"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/weberror"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	PublicModules       []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from module groups. Every mutation must
// prove it comes from the same origin.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	owners := make(map[string]string)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		mount, err := feature.Mount()
		if err == nil {
			err = mount.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		for _, pattern := range []string{mount.Prefix, slashlessPrefixAlias(mount.Prefix)} {
			if pattern == "" {
				continue
			}
			if owner, taken := owners[pattern]; taken {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, owner)
			}
			owners[pattern] = feature.ID()
			root.Handle(pattern, mount.Handler)
		}
	}
	root.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusNotFound)
	})
	return requireSameOrigin(input.RequestSchemePolicy)(root), nil
}

// slashlessPrefixAlias lets "/students" reach the module mounted at "/students/"
// without a redirect.
func slashlessPrefixAlias(prefix string) string {
	alias := strings.TrimSuffix(prefix, "/")
	if alias == "" || alias == prefix {
		return ""
	}
	return alias
}

func requireSameOrigin(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requestmeta.IsMutation(r) || requestmeta.HasSameOriginProof(r, policy) {
				next.ServeHTTP(w, r)
				return
			}
			weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindForbidden, "error.web.message.cross_origin_request", "cross-origin form submission"))
		})
	}
}
