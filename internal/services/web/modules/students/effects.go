package students

import (
	"strings"
	"time"

	"github.com/louisbranch/studentadmin/internal/services/web/platform/flash"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/pagerender"
)

// requestEffects collects the notices and navigation raised while serving
// one request so they can be rendered into the response.
type requestEffects struct {
	notices    flash.Collector
	navigation *pagerender.Navigation
}

func (e *requestEffects) Notify(notice flash.Notice) {
	e.notices.Notify(notice)
}

func (e *requestEffects) NavigateAfter(path string, delay time.Duration) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	e.navigation = &pagerender.Navigation{Location: path, Delay: delay}
}

func (e *requestEffects) apply(page *pagerender.Page) {
	page.Notices = e.notices.Notices()
	page.Navigation = e.navigation
}
