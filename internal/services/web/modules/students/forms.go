package students

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
)

const (
	maxFormMemory  = 10 << 20
	imageFieldName = "profileImage"
)

// parseDraftForm rebuilds the posted draft from the detail form.
func parseDraftForm(r *http.Request) (studentapp.Student, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return studentapp.Student{}, apperrors.EK(apperrors.KindInvalidInput, "error.web.message.invalid_form", fmt.Sprintf("parse student form: %v", err))
	}
	value := func(name string) string {
		return strings.TrimSpace(r.PostFormValue(name))
	}
	return studentapp.Student{
		ID:              value("id"),
		FirstName:       value("firstName"),
		LastName:        value("lastName"),
		DateOfBirth:     value("dateOfBirth"),
		Email:           value("email"),
		Mobile:          parseMobile(value("mobile")),
		GenderID:        value("genderId"),
		ProfileImageURL: value("profileImageUrl"),
		Gender: studentapp.Gender{
			ID:          value("embeddedGenderId"),
			Description: value("genderDescription"),
		},
		Address: studentapp.Address{
			ID:              value("addressId"),
			PhysicalAddress: value("physicalAddress"),
			PostalAddress:   value("postalAddress"),
		},
	}, nil
}

// parseMobile returns 0 for input that is not a whole number, which fails
// validation.
func parseMobile(raw string) int64 {
	raw = strings.Join(strings.Fields(raw), "")
	if raw == "" {
		return 0
	}
	mobile, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return mobile
}

// imageUpload returns the chosen profile image, if any. The caller closes the
// returned file.
func imageUpload(r *http.Request) (studentapp.ImageUpload, multipart.File, bool) {
	if r.MultipartForm == nil {
		return studentapp.ImageUpload{}, nil, false
	}
	file, header, err := r.FormFile(imageFieldName)
	if err != nil {
		return studentapp.ImageUpload{}, nil, false
	}
	return studentapp.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, file, true
}
