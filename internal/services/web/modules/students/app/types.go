package app

import "io"

// Gender is one entry of the read-only gender lookup list.
type Gender struct {
	ID          string
	Description string
}

// Address is the student's embedded address record.
type Address struct {
	ID              string
	PhysicalAddress string
	PostalAddress   string
}

// Student is the record edited by the detail screen.
//
// GenderID is the authoritative foreign key. Gender is a denormalized copy
// used for display and is not refreshed when GenderID changes.
type Student struct {
	ID              string
	FirstName       string
	LastName        string
	DateOfBirth     string
	Email           string
	Mobile          int64
	GenderID        string
	ProfileImageURL string
	Gender          Gender
	Address         Address
}

// EmptyStudent returns the all-empty placeholder draft.
func EmptyStudent() Student {
	return Student{}
}

// ImageUpload carries one profile image chosen by the user.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
