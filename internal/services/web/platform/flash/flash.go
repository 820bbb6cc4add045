// Package flash provides transient web notices shown for a fixed window.
package flash

import (
	"strings"
	"sync"
	"time"
)

// DefaultWindow is how long a notice stays visible when no duration is set.
const DefaultWindow = 2 * time.Second

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice stores one flash message reference.
type Notice struct {
	Kind     Kind
	Key      string
	Duration time.Duration
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string, duration time.Duration) Notice {
	return Notice{Kind: KindSuccess, Key: key, Duration: duration}
}

// Collector gathers the notices raised while serving one request.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify records a notice; invalid notices are dropped.
func (c *Collector) Notify(notice Notice) {
	if c == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, normalized)
}

// Notices returns a copy of the recorded notices in arrival order.
func (c *Collector) Notices() []Notice {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notice(nil), c.notices...)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	if notice.Duration <= 0 {
		notice.Duration = DefaultWindow
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
