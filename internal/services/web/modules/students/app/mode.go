package app

import (
	"strings"

	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

// Mode is the detail screen variant, resolved once from the route id.
type Mode int

const (
	// ModeListless means no id was supplied; nothing is fetched.
	ModeListless Mode = iota
	// ModeNew edits a fresh placeholder draft.
	ModeNew
	// ModeEdit edits an existing record fetched by id.
	ModeEdit
)

// String returns a stable mode label.
func (m Mode) String() string {
	switch m {
	case ModeNew:
		return "new"
	case ModeEdit:
		return "edit"
	default:
		return "listless"
	}
}

// ResolveMode maps a route id to a mode. The new-record token matches
// case-insensitively.
func ResolveMode(routeID string) Mode {
	routeID = strings.TrimSpace(routeID)
	switch {
	case routeID == "":
		return ModeListless
	case strings.EqualFold(routeID, routepath.NewStudentToken):
		return ModeNew
	default:
		return ModeEdit
	}
}
