package app

import (
	"context"

	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"github.com/louisbranch/studentadmin/internal/services/web/routepath"
)

const unavailableMessage = "student api is not configured"

type unavailableGateway struct{}

// NewUnavailableGateway returns a gateway that fails every call as unavailable.
func NewUnavailableGateway() Gateway {
	return unavailableGateway{}
}

// IsGatewayHealthy reports whether the gateway is present and operational.
func IsGatewayHealthy(gateway Gateway) bool {
	if gateway == nil {
		return false
	}
	_, unavailable := gateway.(unavailableGateway)
	return !unavailable
}

func unavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.web.message.student_api_unavailable", unavailableMessage)
}

func (unavailableGateway) ListStudents(context.Context) ([]Student, error) {
	return nil, unavailable()
}

func (unavailableGateway) GetStudent(context.Context, string) (Student, error) {
	return Student{}, unavailable()
}

func (unavailableGateway) CreateStudent(context.Context, Student) (Student, error) {
	return Student{}, unavailable()
}

func (unavailableGateway) UpdateStudent(context.Context, string, Student) (Student, error) {
	return Student{}, unavailable()
}

func (unavailableGateway) DeleteStudent(context.Context, string) error {
	return unavailable()
}

func (unavailableGateway) UploadProfileImage(context.Context, string, ImageUpload) (string, error) {
	return "", unavailable()
}

func (unavailableGateway) ResolveImageURL(string) string {
	return routepath.DefaultProfileImage
}

func (unavailableGateway) ListGenders(context.Context) ([]Gender, error) {
	return nil, unavailable()
}
