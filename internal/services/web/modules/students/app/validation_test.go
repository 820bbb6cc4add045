package app

import "testing"

func TestValidateStudentAcceptsCompleteDraft(t *testing.T) {
	t.Parallel()

	if errs := ValidateStudent(validStudent("s-1")); len(errs) != 0 {
		t.Fatalf("ValidateStudent() = %+v, want none", errs)
	}
}

func TestValidateStudentReportsFieldKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edit  func(*Student)
		field string
		key   string
	}{
		{name: "blank first name", edit: func(s *Student) { s.FirstName = "  " }, field: "firstName", key: ValidationRequired},
		{name: "blank last name", edit: func(s *Student) { s.LastName = "" }, field: "lastName", key: ValidationRequired},
		{name: "bad email", edit: func(s *Student) { s.Email = "ada" }, field: "email", key: ValidationEmail},
		{name: "bad date", edit: func(s *Student) { s.DateOfBirth = "10/12/1990" }, field: "dateOfBirth", key: ValidationDate},
		{name: "missing date", edit: func(s *Student) { s.DateOfBirth = "" }, field: "dateOfBirth", key: ValidationRequired},
		{name: "zero mobile", edit: func(s *Student) { s.Mobile = 0 }, field: "mobile", key: ValidationMobile},
		{name: "missing gender", edit: func(s *Student) { s.GenderID = "" }, field: "genderId", key: ValidationRequired},
		{name: "missing postal address", edit: func(s *Student) { s.Address.PostalAddress = "" }, field: "postalAddress", key: ValidationRequired},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			student := validStudent("s-1")
			tc.edit(&student)
			errs := ValidateStudent(student)
			if len(errs) != 1 {
				t.Fatalf("len(errs) = %d, want 1: %+v", len(errs), errs)
			}
			if errs[0].Field != tc.field || errs[0].Key != tc.key {
				t.Fatalf("errs[0] = %+v, want field %q key %q", errs[0], tc.field, tc.key)
			}
		})
	}
}
