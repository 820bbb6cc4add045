package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

const (
	appErrorPageTitleNotFoundKey  = "web.error.page_title_not_found"
	appErrorPageTitleServerErrKey = "web.error.page_title_server_error"
	appErrorHeadingNotFoundKey    = "web.error.title_not_found"
	appErrorHeadingServerErrKey   = "web.error.title_server_error"
	appErrorMessageNotFoundKey    = "web.error.message_not_found"
	appErrorMessageServerErrKey   = "web.error.message_server_error"
	appErrorBackToStudentsKey     = "web.error.action_back_to_students"
)

// AppErrorPageTitle returns the browser page title for app error pages.
func AppErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, appErrorPageTitleNotFoundKey)
	}
	return T(loc, appErrorPageTitleServerErrKey)
}

// AppErrorState renders the error panel shown inside the app shell.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading, message := appErrorHeadingServerErrKey, appErrorMessageServerErrKey
		if normalizeAppErrorStatus(statusCode) == http.StatusNotFound {
			heading, message = appErrorHeadingNotFoundKey, appErrorMessageNotFoundKey
		}
		h := newHTMLWriter(w)
		h.raw(`<section class="app-error" data-app-error-state`)
		h.attr("data-status", http.StatusText(normalizeAppErrorStatus(statusCode)))
		h.raw("><h1>")
		h.text(T(loc, heading))
		h.raw("</h1><p>")
		h.text(T(loc, message))
		h.raw(`</p><a class="button"`)
		h.href("href", routepath.Students)
		h.raw(">")
		h.text(T(loc, appErrorBackToStudentsKey))
		h.raw("</a></section>")
		return h.err
	})
}

func normalizeAppErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
