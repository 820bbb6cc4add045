package templates

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

// AppToast is one notice rendered in the toast stack.
type AppToast struct {
	Kind     string
	Message  string
	Duration time.Duration
}

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	Label  string
	URL    string
	Active bool
}

// AppChrome carries the shared page shell state.
type AppChrome struct {
	Title     string
	Lang      string
	Loc       Localizer
	Languages []LanguageLink
	Toasts    []AppToast
	// Refresh holds a meta refresh value ("2; url=/students") for delayed navigation.
	Refresh string
}

// AppLayout renders the full document around the children in ctx.
func AppLayout(chrome AppChrome) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := chrome.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!doctype html>\n<html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		if chrome.Refresh != "" {
			h.raw(`<meta http-equiv="refresh"`)
			h.attr("content", chrome.Refresh)
			h.raw(">")
		}
		h.raw("<title>")
		h.text(chrome.Title)
		h.raw("</title>")
		h.raw(`<link rel="stylesheet" href="` + routepath.StaticPrefix + `app.css">`)
		h.raw(`<script src="` + routepath.StaticPrefix + `app.js" defer></script>`)
		h.raw(`</head><body><header class="app-header">`)
		h.raw(`<a class="app-brand"`)
		h.href("href", routepath.Students)
		h.raw(">")
		h.text(T(chrome.Loc, "app.name"))
		h.raw(`</a><nav class="app-nav">`)
		h.raw("<a")
		h.href("href", routepath.Students)
		h.raw(">")
		h.text(T(chrome.Loc, "nav.students"))
		h.raw("</a><a")
		h.href("href", routepath.NewStudent)
		h.raw(">")
		h.text(T(chrome.Loc, "nav.add_student"))
		h.raw("</a></nav>")
		if len(chrome.Languages) > 0 {
			h.raw(`<nav class="app-lang"`)
			h.attr("aria-label", T(chrome.Loc, "nav.language"))
			h.raw(">")
			for _, option := range chrome.Languages {
				h.raw("<a")
				h.href("href", option.URL)
				if option.Active {
					h.raw(` aria-current="true"`)
				}
				h.raw(">")
				h.text(option.Label)
				h.raw("</a>")
			}
			h.raw("</nav>")
		}
		h.raw("</header>")
		h.render(ctx, ToastStack(chrome.Toasts))
		h.raw(`<main class="app-main">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main></body></html>")
		return h.err
	})
}

// ToastStack renders transient notices that the page script hides after their duration.
func ToastStack(toasts []AppToast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<div class="toast-stack" role="status" aria-live="polite">`)
		for _, toast := range toasts {
			kind := toast.Kind
			if kind == "" {
				kind = "info"
			}
			h.raw(`<div data-toast`)
			h.attr("class", "toast toast-"+kind)
			h.attr("data-dismiss-after-ms", strconv.FormatInt(toast.Duration.Milliseconds(), 10))
			h.raw(">")
			h.text(toast.Message)
			h.raw("</div>")
		}
		h.raw("</div>")
		return h.err
	})
}
