// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/studentadmin/internal/services/web/i18n"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/studentadmin/internal/services/web/templates"
)

// rendersPage reports whether status is shown as a full app-shell page rather
// than a plain text body.
func rendersPage(status int) bool {
	return status == http.StatusNotFound || status >= http.StatusInternalServerError
}

// PublicMessage returns the text a user may see for err. Internal detail never
// leaks: without a translated key the generic status text is used.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := localizedMessage(loc, apperrors.LocalizationKey(err)); ok {
		return msg
	}
	status := apperrors.HTTPStatus(err)
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	return http.StatusText(status)
}

func localizedMessage(loc webi18n.Localizer, key string) (string, bool) {
	if loc == nil || key == "" {
		return "", false
	}
	msg := strings.TrimSpace(loc.Sprintf(key))
	return msg, msg != "" && msg != key
}

// WriteAppError renders the error page for status. Statuses without a page of
// their own are reported as 500.
func WriteAppError(w http.ResponseWriter, r *http.Request, status int) {
	if w == nil {
		return
	}
	if !rendersPage(status) {
		status = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{
		DocumentTitle: webtemplates.AppErrorPageTitle(status, loc),
		StatusCode:    status,
		Fragment:      webtemplates.AppErrorState(status, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(status), status)
	}
}

// WriteModuleError answers a failed module request: missing resources and
// server faults get the error page, client errors a localized plain text body.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	if rendersPage(status) {
		WriteAppError(w, r, status)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), status)
}
