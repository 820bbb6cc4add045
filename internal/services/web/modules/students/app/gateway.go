package app

import "context"

// StudentGateway is the typed access layer for student records.
type StudentGateway interface {
	ListStudents(context.Context) ([]Student, error)
	GetStudent(context.Context, string) (Student, error)
	CreateStudent(context.Context, Student) (Student, error)
	UpdateStudent(context.Context, string, Student) (Student, error)
	DeleteStudent(context.Context, string) error
	UploadProfileImage(context.Context, string, ImageUpload) (string, error)
	ResolveImageURL(string) string
}

// GenderGateway loads the gender lookup list.
type GenderGateway interface {
	ListGenders(context.Context) ([]Gender, error)
}

// Gateway combines every remote capability the student screens use.
type Gateway interface {
	StudentGateway
	GenderGateway
}
