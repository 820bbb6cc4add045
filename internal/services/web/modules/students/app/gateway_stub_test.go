package app

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"github.com/louisbranch/studentadmin/internal/services/web/platform/flash"
)

type gatewayStub struct {
	mu sync.Mutex

	students  []Student
	student   Student
	genders   []Gender
	created   Student
	imagePath string

	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error
	uploadErr error
	genderErr error

	calls        map[string]int
	getIDs       []string
	updateIDs    []string
	deleteIDs    []string
	uploadIDs    []string
	uploadBodies []string
}

func (s *gatewayStub) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[op]++
}

func (s *gatewayStub) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *gatewayStub) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.calls {
		total += n
	}
	return total
}

func (s *gatewayStub) ListStudents(context.Context) ([]Student, error) {
	s.record("list")
	return s.students, s.listErr
}

func (s *gatewayStub) GetStudent(_ context.Context, id string) (Student, error) {
	s.record("get")
	s.mu.Lock()
	s.getIDs = append(s.getIDs, id)
	s.mu.Unlock()
	if s.getErr != nil {
		return Student{}, s.getErr
	}
	return s.student, nil
}

func (s *gatewayStub) CreateStudent(context.Context, Student) (Student, error) {
	s.record("create")
	return s.created, s.createErr
}

func (s *gatewayStub) UpdateStudent(_ context.Context, id string, student Student) (Student, error) {
	s.record("update")
	s.mu.Lock()
	s.updateIDs = append(s.updateIDs, id)
	s.mu.Unlock()
	return student, s.updateErr
}

func (s *gatewayStub) DeleteStudent(_ context.Context, id string) error {
	s.record("delete")
	s.mu.Lock()
	s.deleteIDs = append(s.deleteIDs, id)
	s.mu.Unlock()
	return s.deleteErr
}

func (s *gatewayStub) UploadProfileImage(_ context.Context, id string, upload ImageUpload) (string, error) {
	s.record("upload")
	body := ""
	if upload.Body != nil {
		raw, _ := io.ReadAll(upload.Body)
		body = string(raw)
	}
	s.mu.Lock()
	s.uploadIDs = append(s.uploadIDs, id)
	s.uploadBodies = append(s.uploadBodies, body)
	s.mu.Unlock()
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	return s.imagePath, nil
}

func (s *gatewayStub) ResolveImageURL(path string) string {
	return "https://api.test/" + strings.TrimPrefix(path, "/")
}

func (s *gatewayStub) ListGenders(context.Context) ([]Gender, error) {
	s.record("genders")
	return s.genders, s.genderErr
}

type navigationRecorder struct {
	path  string
	delay time.Duration
	calls int
}

func (r *navigationRecorder) NavigateAfter(path string, delay time.Duration) {
	r.path = path
	r.delay = delay
	r.calls++
}

type detailHarness struct {
	gateway    *gatewayStub
	notices    *flash.Collector
	navigation *navigationRecorder
	controller *DetailController
}

func newDetailHarness(gateway *gatewayStub) detailHarness {
	h := detailHarness{
		gateway:    gateway,
		notices:    &flash.Collector{},
		navigation: &navigationRecorder{},
	}
	h.controller = NewDetailController(DetailDependencies{
		Students:  gateway,
		Genders:   gateway,
		Notifier:  h.notices,
		Navigator: h.navigation,
		Logger:    discardLogger(),
	})
	return h
}

func validStudent(id string) Student {
	return Student{
		ID:          id,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1990-12-10",
		Email:       "ada@example.com",
		Mobile:      5551234,
		GenderID:    "g-1",
		Address: Address{
			ID:              "addr-1",
			PhysicalAddress: "1 Analytical Way",
			PostalAddress:   "PO Box 1",
		},
	}
}

var errNotFound = apperrors.E(apperrors.KindNotFound, "student not found")
