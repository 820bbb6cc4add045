package gateway

import studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"

type genderPayload struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type addressPayload struct {
	ID              string `json:"id"`
	PhysicalAddress string `json:"physicalAddress"`
	PostalAddress   string `json:"postalAddress"`
}

type studentPayload struct {
	ID              string         `json:"id"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	DateOfBirth     string         `json:"dateOfBirth"`
	Email           string         `json:"email"`
	Mobile          int64          `json:"mobile"`
	GenderID        string         `json:"genderId"`
	ProfileImageURL string         `json:"profileImageUrl"`
	Gender          genderPayload  `json:"gender"`
	Address         addressPayload `json:"address"`
}

// mutationPayload is the flattened body accepted by create and update.
type mutationPayload struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Email           string `json:"email"`
	Mobile          int64  `json:"mobile"`
	GenderID        string `json:"genderId"`
	PhysicalAddress string `json:"physicalAddress"`
	PostalAddress   string `json:"postalAddress"`
}

func (p genderPayload) toApp() studentapp.Gender {
	return studentapp.Gender{ID: p.ID, Description: p.Description}
}

func (p studentPayload) toApp() studentapp.Student {
	return studentapp.Student{
		ID:              p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		DateOfBirth:     p.DateOfBirth,
		Email:           p.Email,
		Mobile:          p.Mobile,
		GenderID:        p.GenderID,
		ProfileImageURL: p.ProfileImageURL,
		Gender:          p.Gender.toApp(),
		Address: studentapp.Address{
			ID:              p.Address.ID,
			PhysicalAddress: p.Address.PhysicalAddress,
			PostalAddress:   p.Address.PostalAddress,
		},
	}
}

func newMutationPayload(student studentapp.Student) mutationPayload {
	return mutationPayload{
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		DateOfBirth:     student.DateOfBirth,
		Email:           student.Email,
		Mobile:          student.Mobile,
		GenderID:        student.GenderID,
		PhysicalAddress: student.Address.PhysicalAddress,
		PostalAddress:   student.Address.PostalAddress,
	}
}
