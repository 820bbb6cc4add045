package students

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/modulehandler"
)

type fakeGateway struct {
	mu sync.Mutex

	students []studentapp.Student
	student  studentapp.Student
	genders  []studentapp.Gender
	created  studentapp.Student
	image    string

	getErr    error
	updateErr error

	calls      []string
	updated    []studentapp.Student
	uploadBody string
}

func (g *fakeGateway) record(op string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, op)
}

func (g *fakeGateway) callCount(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	count := 0
	for _, call := range g.calls {
		if call == op {
			count++
		}
	}
	return count
}

func (g *fakeGateway) ListStudents(context.Context) ([]studentapp.Student, error) {
	g.record("list")
	return g.students, nil
}

func (g *fakeGateway) GetStudent(_ context.Context, id string) (studentapp.Student, error) {
	g.record("get:" + id)
	if g.getErr != nil {
		return studentapp.Student{}, g.getErr
	}
	return g.student, nil
}

func (g *fakeGateway) CreateStudent(_ context.Context, draft studentapp.Student) (studentapp.Student, error) {
	g.record("create")
	return g.created, nil
}

func (g *fakeGateway) UpdateStudent(_ context.Context, id string, draft studentapp.Student) (studentapp.Student, error) {
	g.record("update:" + id)
	g.mu.Lock()
	g.updated = append(g.updated, draft)
	g.mu.Unlock()
	return draft, g.updateErr
}

func (g *fakeGateway) DeleteStudent(_ context.Context, id string) error {
	g.record("delete:" + id)
	return nil
}

func (g *fakeGateway) UploadProfileImage(_ context.Context, id string, upload studentapp.ImageUpload) (string, error) {
	g.record("upload:" + id)
	raw, _ := io.ReadAll(upload.Body)
	g.mu.Lock()
	g.uploadBody = string(raw)
	g.mu.Unlock()
	return g.image, nil
}

func (g *fakeGateway) ResolveImageURL(path string) string {
	return "https://api.test/" + path
}

func (g *fakeGateway) ListGenders(context.Context) ([]studentapp.Gender, error) {
	g.record("genders")
	return g.genders, nil
}

var errStudentMissing = apperrors.E(apperrors.KindNotFound, "missing")

func sampleStudent() studentapp.Student {
	return studentapp.Student{
		ID:              "s-1",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		DateOfBirth:     "1990-12-10T00:00:00",
		Email:           "ada@example.com",
		Mobile:          5551234,
		GenderID:        "g-1",
		ProfileImageURL: "Resources/Images/s-1.jpg",
		Gender:          studentapp.Gender{ID: "g-1", Description: "Female"},
		Address:         studentapp.Address{ID: "addr-1", PhysicalAddress: "1 Analytical Way", PostalAddress: "PO Box 1"},
	}
}

func sampleForm() map[string]string {
	return map[string]string{
		"id":                "s-1",
		"firstName":         "Ada",
		"lastName":          "Byron",
		"dateOfBirth":       "1990-12-10",
		"email":             "ada@example.com",
		"mobile":            "5551234",
		"genderId":          "g-2",
		"embeddedGenderId":  "g-1",
		"genderDescription": "Female",
		"profileImageUrl":   "Resources/Images/s-1.jpg",
		"addressId":         "addr-1",
		"physicalAddress":   "1 Analytical Way",
		"postalAddress":     "PO Box 1",
	}
}

type testFile struct {
	name    string
	content string
}

func newMultipartRequest(t *testing.T, target string, fields map[string]string, file *testFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField(%q) error = %v", key, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(imageFieldName, file.name)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := io.WriteString(part, file.content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func serve(t *testing.T, gateway studentapp.Gateway, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mount, err := NewWithGateway(gateway, modulehandler.NewBase(discardLogger())).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}
