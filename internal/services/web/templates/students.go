package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StudentRow is one row of the student table.
type StudentRow struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Mobile      string
	Gender      string
	DetailURL   string
}

// StudentListView is the list page state.
type StudentListView struct {
	Rows   []StudentRow
	NewURL string
}

// StudentListFragment renders the student table.
func StudentListFragment(view StudentListView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="students" data-student-list><div class="page-heading"><h1>`)
		h.text(T(loc, "students.title"))
		h.raw(`</h1><a class="button button-primary"`)
		h.href("href", view.NewURL)
		h.raw(">")
		h.text(T(loc, "nav.add_student"))
		h.raw("</a></div>")
		if len(view.Rows) == 0 {
			h.raw(`<p class="empty" data-student-list-empty>`)
			h.text(T(loc, "students.empty"))
			h.raw("</p></section>")
			return h.err
		}
		h.raw(`<table class="table"><thead><tr>`)
		for _, key := range []string{
			"students.column.first_name",
			"students.column.last_name",
			"students.column.date_of_birth",
			"students.column.email",
			"students.column.mobile",
			"students.column.gender",
		} {
			h.raw(`<th scope="col">`)
			h.text(T(loc, key))
			h.raw("</th>")
		}
		h.raw(`<th scope="col"></th></tr></thead><tbody>`)
		for _, row := range view.Rows {
			h.raw("<tr data-student-row>")
			for _, cell := range []string{row.FirstName, row.LastName, row.DateOfBirth, row.Email, row.Mobile, row.Gender} {
				h.raw("<td>")
				h.text(cell)
				h.raw("</td>")
			}
			h.raw("<td><a")
			h.href("href", row.DetailURL)
			h.raw(">")
			h.text(T(loc, "students.action.edit"))
			h.raw("</a></td></tr>")
		}
		h.raw("</tbody></table></section>")
		return h.err
	})
}

// Student detail screen modes.
const (
	StudentModeNone = "none"
	StudentModeNew  = "new"
	StudentModeEdit = "edit"
)

// GenderOption is one entry of the gender select.
type GenderOption struct {
	ID          string
	Description string
	Selected    bool
}

// StudentDetailView is the detail page state.
type StudentDetailView struct {
	Mode            string
	HeadingKey      string
	SaveURL         string
	DeleteURL       string
	UploadURL       string
	BackURL         string
	DisplayImageURL string

	ID                string
	FirstName         string
	LastName          string
	DateOfBirth       string
	Email             string
	Mobile            string
	GenderID          string
	EmbeddedGenderID  string
	GenderDescription string
	ProfileImageURL   string
	AddressID         string
	PhysicalAddress   string
	PostalAddress     string

	Genders []GenderOption
	// FieldErrors maps form field names to localization keys.
	FieldErrors map[string]string
}

// StudentDetailFragment renders the student profile form.
func StudentDetailFragment(view StudentDetailView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="student-detail"`)
		h.attr("data-student-mode", view.Mode)
		h.raw("><div class=\"page-heading\"><h1>")
		h.text(T(loc, view.HeadingKey))
		h.raw(`</h1><a class="button"`)
		h.href("href", view.BackURL)
		h.raw(">")
		h.text(T(loc, "student.action.back"))
		h.raw("</a></div>")
		if view.Mode == StudentModeNone {
			h.raw(`<p class="empty">`)
			h.text(T(loc, "student.none_selected"))
			h.raw("</p></section>")
			return h.err
		}

		h.raw(`<form class="student-form" method="post" enctype="multipart/form-data" data-student-form`)
		h.href("action", view.SaveURL)
		h.raw(`><div class="student-image"><img data-profile-image`)
		h.href("src", view.DisplayImageURL)
		h.attr("alt", T(loc, "student.field.profile_image"))
		h.raw(">")
		if view.Mode == StudentModeEdit {
			h.raw(`<label class="field"><span>`)
			h.text(T(loc, "student.field.profile_image"))
			h.raw(`</span><input type="file" name="profileImage" accept="image/*" data-autosubmit-upload></label>`)
			h.raw(`<button type="submit" class="button" formnovalidate data-upload-button`)
			h.href("formaction", view.UploadURL)
			h.raw(">")
			h.text(T(loc, "student.action.upload"))
			h.raw("</button>")
		}
		h.raw("</div>")

		for _, hidden := range [][2]string{
			{"id", view.ID},
			{"profileImageUrl", view.ProfileImageURL},
			{"embeddedGenderId", view.EmbeddedGenderID},
			{"genderDescription", view.GenderDescription},
			{"addressId", view.AddressID},
		} {
			h.raw(`<input type="hidden"`)
			h.attr("name", hidden[0])
			h.attr("value", hidden[1])
			h.raw(">")
		}

		writeInput(h, loc, view, "firstName", "student.field.first_name", "text", view.FirstName)
		writeInput(h, loc, view, "lastName", "student.field.last_name", "text", view.LastName)
		writeInput(h, loc, view, "dateOfBirth", "student.field.date_of_birth", "date", view.DateOfBirth)
		writeInput(h, loc, view, "email", "student.field.email", "email", view.Email)
		writeInput(h, loc, view, "mobile", "student.field.mobile", "tel", view.Mobile)

		h.raw(`<label class="field"><span>`)
		h.text(T(loc, "student.field.gender"))
		h.raw(`</span><select name="genderId" required><option value="">`)
		h.text(T(loc, "student.gender.placeholder"))
		h.raw("</option>")
		for _, option := range view.Genders {
			h.raw("<option")
			h.attr("value", option.ID)
			h.flag("selected", option.Selected)
			h.raw(">")
			h.text(option.Description)
			h.raw("</option>")
		}
		h.raw("</select>")
		writeFieldError(h, loc, view.FieldErrors["genderId"])
		h.raw("</label>")

		writeTextarea(h, loc, view, "physicalAddress", "student.field.physical_address", view.PhysicalAddress)
		writeTextarea(h, loc, view, "postalAddress", "student.field.postal_address", view.PostalAddress)

		h.raw(`<div class="form-actions">`)
		if view.Mode == StudentModeNew {
			h.raw(`<button type="submit" class="button button-primary" data-action-add>`)
			h.text(T(loc, "student.action.add"))
			h.raw("</button>")
		} else {
			h.raw(`<button type="submit" class="button button-primary" data-action-update>`)
			h.text(T(loc, "student.action.update"))
			h.raw(`</button><button type="submit" class="button button-danger" formnovalidate data-action-delete`)
			h.href("formaction", view.DeleteURL)
			h.raw(">")
			h.text(T(loc, "student.action.delete"))
			h.raw("</button>")
		}
		h.raw("</div></form></section>")
		return h.err
	})
}

func writeInput(h *htmlWriter, loc Localizer, view StudentDetailView, name string, labelKey string, inputType string, value string) {
	h.raw(`<label class="field"><span>`)
	h.text(T(loc, labelKey))
	h.raw("</span><input")
	h.attr("type", inputType)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(" required")
	if view.FieldErrors[name] != "" {
		h.raw(` aria-invalid="true"`)
	}
	h.raw(">")
	writeFieldError(h, loc, view.FieldErrors[name])
	h.raw("</label>")
}

func writeTextarea(h *htmlWriter, loc Localizer, view StudentDetailView, name string, labelKey string, value string) {
	h.raw(`<label class="field"><span>`)
	h.text(T(loc, labelKey))
	h.raw("</span><textarea")
	h.attr("name", name)
	h.raw(" required")
	if view.FieldErrors[name] != "" {
		h.raw(` aria-invalid="true"`)
	}
	h.raw(">")
	h.text(value)
	h.raw("</textarea>")
	writeFieldError(h, loc, view.FieldErrors[name])
	h.raw("</label>")
}

func writeFieldError(h *htmlWriter, loc Localizer, key string) {
	if key == "" {
		return
	}
	h.raw(`<small class="field-error" data-field-error>`)
	h.text(T(loc, key))
	h.raw("</small>")
}
