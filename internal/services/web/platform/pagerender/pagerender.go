// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/studentadmin/internal/services/web/i18n"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/flash"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/studentadmin/internal/services/web/templates"
)

// Navigation asks the browser to move to Location after Delay.
type Navigation struct {
	Location string
	Delay    time.Duration
}

// Page describes a module page response.
type Page struct {
	Title string
	// DocumentTitle replaces the formatted "<Title> | app" document title when set.
	DocumentTitle string
	StatusCode    int
	Fragment      templ.Component
	Notices       []flash.Notice
	Navigation    *Navigation
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes a module page inside the shared app shell.
func WritePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	title := strings.TrimSpace(page.DocumentTitle)
	if title == "" {
		title = webtemplates.T(loc, "title.page", page.Title)
	}
	chrome := webtemplates.AppChrome{
		Title:  title,
		Lang:   lang,
		Loc:    loc,
		Toasts: resolveToasts(loc, page.Notices),
	}
	if r != nil && r.URL != nil {
		for _, option := range webi18n.LanguageOptions(loc, lang, r.URL.Path, r.URL.RawQuery) {
			chrome.Languages = append(chrome.Languages, webtemplates.LanguageLink{
				Label:  option.Label,
				URL:    option.URL,
				Active: option.Active,
			})
		}
	}
	if nav := page.Navigation; nav != nil && strings.TrimSpace(nav.Location) != "" {
		chrome.Refresh = httpx.RefreshValue(nav.Location, nav.Delay)
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	if err := webtemplates.AppLayout(chrome).Render(ctx, &buf); err != nil {
		return err
	}
	if nav := page.Navigation; nav != nil {
		httpx.SetDelayedNavigation(w, nav.Location, nav.Delay)
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}

func resolveToasts(loc webi18n.Localizer, notices []flash.Notice) []webtemplates.AppToast {
	if len(notices) == 0 {
		return nil
	}
	toasts := make([]webtemplates.AppToast, 0, len(notices))
	for _, notice := range notices {
		message := strings.TrimSpace(webtemplates.T(loc, notice.Key))
		if message == "" {
			continue
		}
		toasts = append(toasts, webtemplates.AppToast{
			Kind:     string(notice.Kind),
			Message:  message,
			Duration: notice.Duration,
		})
	}
	return toasts
}
