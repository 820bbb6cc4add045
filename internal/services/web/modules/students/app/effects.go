package app

import (
	"time"

	"github.com/louisbranch/studentadmin/internal/services/web/platform/flash"
)

// NoticeWindow is how long success notices stay visible, and how long
// navigation waits after one.
const NoticeWindow = 2 * time.Second

// Notice keys raised by the detail screen.
const (
	NoticeStudentUpdated = "student.notice.updated"
	NoticeStudentAdded   = "student.notice.added"
	NoticeStudentDeleted = "student.notice.deleted"
	NoticeImageUpdated   = "student.notice.image_updated"
)

// Notifier displays transient notices.
type Notifier interface {
	Notify(flash.Notice)
}

// Navigator moves the user to another route once delay has passed.
type Navigator interface {
	NavigateAfter(path string, delay time.Duration)
}

type discardNotifier struct{}

func (discardNotifier) Notify(flash.Notice) {}

type discardNavigator struct{}

func (discardNavigator) NavigateAfter(string, time.Duration) {}
