package app

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation message keys.
const (
	ValidationRequired = "student.validation.required"
	ValidationEmail    = "student.validation.email"
	ValidationDate     = "student.validation.date"
	ValidationMobile   = "student.validation.mobile"
	ValidationInvalid  = "student.validation.invalid"
)

// DateInputLayout is the date format accepted from the form.
const DateInputLayout = "2006-01-02"

// FieldError reports one invalid form field by its form name.
type FieldError struct {
	Field string
	Key   string
}

// FormValidator reports whether a draft may be submitted.
type FormValidator func(Student) []FieldError

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type studentForm struct {
	FirstName       string `form:"firstName" validate:"notblank"`
	LastName        string `form:"lastName" validate:"notblank"`
	DateOfBirth     string `form:"dateOfBirth" validate:"notblank,datetime=2006-01-02"`
	Email           string `form:"email" validate:"notblank,email"`
	Mobile          int64  `form:"mobile" validate:"gt=0"`
	GenderID        string `form:"genderId" validate:"notblank"`
	PhysicalAddress string `form:"physicalAddress" validate:"notblank"`
	PostalAddress   string `form:"postalAddress" validate:"notblank"`
}

// ValidateStudent checks the editable fields of a draft.
func ValidateStudent(student Student) []FieldError {
	form := studentForm{
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		DateOfBirth:     strings.TrimSpace(student.DateOfBirth),
		Email:           strings.TrimSpace(student.Email),
		Mobile:          student.Mobile,
		GenderID:        student.GenderID,
		PhysicalAddress: student.Address.PhysicalAddress,
		PostalAddress:   student.Address.PostalAddress,
	}
	err := defaultValidator.Struct(form)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Key: ValidationInvalid}}
	}
	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{Field: fe.Field(), Key: messageKey(fe)})
	}
	return fieldErrors
}

func messageKey(fe validator.FieldError) string {
	if fe.Field() == "mobile" {
		return ValidationMobile
	}
	switch fe.ActualTag() {
	case "notblank", "required":
		return ValidationRequired
	case "email":
		return ValidationEmail
	case "datetime":
		return ValidationDate
	default:
		return ValidationInvalid
	}
}
