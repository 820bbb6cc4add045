package students

import (
	"strconv"
	"strings"
	"time"

	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/studentadmin/internal/services/web/templates"
)

func mapListView(list *studentapp.ListController) webtemplates.StudentListView {
	students := list.Students()
	rows := make([]webtemplates.StudentRow, 0, len(students))
	for _, student := range students {
		rows = append(rows, webtemplates.StudentRow{
			FirstName:   student.FirstName,
			LastName:    student.LastName,
			DateOfBirth: dateInputValue(student.DateOfBirth),
			Email:       student.Email,
			Mobile:      mobileValue(student.Mobile),
			Gender:      student.Gender.Description,
			DetailURL:   list.DetailPath(student.ID),
		})
	}
	return webtemplates.StudentListView{Rows: rows, NewURL: routepath.NewStudent}
}

func mapDetailView(detail *studentapp.DetailController) webtemplates.StudentDetailView {
	draft := detail.Draft()
	routeID := detail.RouteID()
	view := webtemplates.StudentDetailView{
		Mode:              detailMode(detail.Mode()),
		HeadingKey:        detailHeadingKey(detail.Mode()),
		BackURL:           routepath.Students,
		DisplayImageURL:   detail.DisplayImageURL(),
		ID:                draft.ID,
		FirstName:         draft.FirstName,
		LastName:          draft.LastName,
		DateOfBirth:       dateInputValue(draft.DateOfBirth),
		Email:             draft.Email,
		Mobile:            mobileValue(draft.Mobile),
		GenderID:          draft.GenderID,
		EmbeddedGenderID:  draft.Gender.ID,
		GenderDescription: draft.Gender.Description,
		ProfileImageURL:   draft.ProfileImageURL,
		AddressID:         draft.Address.ID,
		PhysicalAddress:   draft.Address.PhysicalAddress,
		PostalAddress:     draft.Address.PostalAddress,
	}
	if detail.Mode() != studentapp.ModeListless {
		view.SaveURL = routepath.Student(routeID)
		view.DeleteURL = routepath.StudentDelete(routeID)
		view.UploadURL = routepath.StudentImage(routeID)
	}
	for _, gender := range detail.Genders() {
		view.Genders = append(view.Genders, webtemplates.GenderOption{
			ID:          gender.ID,
			Description: gender.Description,
			Selected:    gender.ID == draft.GenderID,
		})
	}
	if fieldErrors := detail.FieldErrors(); len(fieldErrors) > 0 {
		view.FieldErrors = make(map[string]string, len(fieldErrors))
		for _, fieldError := range fieldErrors {
			if _, seen := view.FieldErrors[fieldError.Field]; !seen {
				view.FieldErrors[fieldError.Field] = fieldError.Key
			}
		}
	}
	return view
}

func detailMode(mode studentapp.Mode) string {
	switch mode {
	case studentapp.ModeNew:
		return webtemplates.StudentModeNew
	case studentapp.ModeEdit:
		return webtemplates.StudentModeEdit
	default:
		return webtemplates.StudentModeNone
	}
}

func detailHeadingKey(mode studentapp.Mode) string {
	switch mode {
	case studentapp.ModeNew:
		return "student.title.new"
	case studentapp.ModeEdit:
		return "student.title.edit"
	default:
		return "student.title.none"
	}
}

// dateInputValue trims API timestamps such as "1990-12-10T00:00:00" to the
// date input layout. Values that do not start with a date pass through.
func dateInputValue(raw string) string {
	raw = strings.TrimSpace(raw)
	layout := studentapp.DateInputLayout
	if len(raw) < len(layout) {
		return raw
	}
	if _, err := time.Parse(layout, raw[:len(layout)]); err != nil {
		return raw
	}
	return raw[:len(layout)]
}

func mobileValue(mobile int64) string {
	if mobile == 0 {
		return ""
	}
	return strconv.FormatInt(mobile, 10)
}
