// Package modulehandler provides a composable base for web module handlers.
//
// Module handlers share localization, page rendering and error handling. This
// package holds that scaffold so modules embed it rather than duplicating it.
package modulehandler

import (
	"log"
	"net/http"

	webi18n "github.com/louisbranch/studentadmin/internal/services/web/i18n"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/pagerender"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/weberror"
)

// Base carries the shared request-scoped helpers used by module handlers.
type Base struct {
	logger *log.Logger
}

// NewBase builds a handler base that reports render failures to logger.
func NewBase(logger *log.Logger) Base {
	if logger == nil {
		logger = log.Default()
	}
	return Base{logger: logger}
}

// Logger returns the logger module code should report to.
func (b Base) Logger() *log.Logger {
	if b.logger == nil {
		return log.Default()
	}
	return b.logger
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders a full module page inside the app shell.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, loc, lang, page); err != nil {
		b.Logger().Printf("render page failed path=%s err=%v", requestPath(r), err)
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}
