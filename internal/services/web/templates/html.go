package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/studentadmin/internal/services/web/i18n"
	"golang.org/x/text/message"
)

// htmlWriter accumulates the first write error so components read linearly.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name string, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) href(name string, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) render(ctx context.Context, component templ.Component) {
	if h.err != nil || component == nil {
		return
	}
	h.err = component.Render(ctx, h.w)
}

// Localizer is the message printer components translate through.
type Localizer = webi18n.Localizer

// T translates key through loc. Pages rendered without a printer show the
// raw key, formatted with args when it is a string.
func T(loc Localizer, key message.Reference, args ...any) string {
	switch {
	case loc != nil:
		return loc.Sprintf(key, args...)
	case len(args) == 0:
		s, _ := key.(string)
		return s
	}
	format, ok := key.(string)
	if !ok {
		return ""
	}
	return fmt.Sprintf(format, args...)
}
