// Package gateway implements the student screens' access layer over the
// Student API REST endpoints.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	studentapp "github.com/louisbranch/studentadmin/internal/services/web/modules/students/app"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
)

// ImagePartName is the multipart part that carries an uploaded profile image.
const ImagePartName = "profileImage"

const maxImagePathBytes = 64 << 10

// HTTPDoer sends one HTTP request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPGatewayDeps carries the explicit dependencies for the Student API gateway.
type HTTPGatewayDeps struct {
	Client  HTTPDoer
	BaseURL string
	Tokens  TokenSource
	Metrics APIObserver
}

// HTTPGateway calls the Student API. Calls are single-shot and carry no
// timeout beyond the caller's context.
type HTTPGateway struct {
	client  HTTPDoer
	baseURL string
	tokens  TokenSource
	metrics APIObserver
}

// NewHTTPGateway builds the production gateway. A missing or malformed base
// URL yields the unavailable gateway.
func NewHTTPGateway(deps HTTPGatewayDeps) studentapp.Gateway {
	baseURL, ok := normalizeBaseURL(deps.BaseURL)
	if !ok {
		return studentapp.NewUnavailableGateway()
	}
	client := deps.Client
	if client == nil {
		client = &http.Client{}
	}
	return HTTPGateway{client: client, baseURL: baseURL, tokens: deps.Tokens, metrics: deps.Metrics}
}

func normalizeBaseURL(raw string) (string, bool) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", false
	}
	return raw, true
}

func (g HTTPGateway) ListStudents(ctx context.Context) ([]studentapp.Student, error) {
	var payload []studentPayload
	err := g.call(ctx, apiRequest{
		operation: "list_students",
		method:    http.MethodGet,
		path:      "/students",
		decode:    decodeJSON(&payload),
	})
	if err != nil {
		return nil, err
	}
	students := make([]studentapp.Student, 0, len(payload))
	for _, item := range payload {
		students = append(students, item.toApp())
	}
	return students, nil
}

// GetStudent treats every non-success status as a missing record.
func (g HTTPGateway) GetStudent(ctx context.Context, studentID string) (studentapp.Student, error) {
	var payload studentPayload
	err := g.call(ctx, apiRequest{
		operation:  "get_student",
		method:     http.MethodGet,
		path:       studentPath(studentID),
		statusKind: func(int) apperrors.Kind { return apperrors.KindNotFound },
		decode:     decodeJSON(&payload),
	})
	if err != nil {
		return studentapp.Student{}, err
	}
	return payload.toApp(), nil
}

func (g HTTPGateway) CreateStudent(ctx context.Context, draft studentapp.Student) (studentapp.Student, error) {
	body, err := encodeJSON(newMutationPayload(draft))
	if err != nil {
		return studentapp.Student{}, err
	}
	var payload studentPayload
	err = g.call(ctx, apiRequest{
		operation:   "create_student",
		method:      http.MethodPost,
		path:        "/students",
		body:        body,
		contentType: "application/json",
		decode:      decodeJSON(&payload),
	})
	if err != nil {
		return studentapp.Student{}, err
	}
	return payload.toApp(), nil
}

func (g HTTPGateway) UpdateStudent(ctx context.Context, studentID string, draft studentapp.Student) (studentapp.Student, error) {
	body, err := encodeJSON(newMutationPayload(draft))
	if err != nil {
		return studentapp.Student{}, err
	}
	var payload studentPayload
	err = g.call(ctx, apiRequest{
		operation:   "update_student",
		method:      http.MethodPut,
		path:        studentPath(studentID),
		body:        body,
		contentType: "application/json",
		decode:      decodeJSON(&payload),
	})
	if err != nil {
		return studentapp.Student{}, err
	}
	return payload.toApp(), nil
}

func (g HTTPGateway) DeleteStudent(ctx context.Context, studentID string) error {
	return g.call(ctx, apiRequest{
		operation: "delete_student",
		method:    http.MethodDelete,
		path:      studentPath(studentID),
	})
}

// UploadProfileImage posts the image as multipart form data and returns the
// stored image path.
func (g HTTPGateway) UploadProfileImage(ctx context.Context, studentID string, upload studentapp.ImageUpload) (string, error) {
	body, contentType, err := encodeImage(upload)
	if err != nil {
		return "", err
	}
	var path string
	err = g.call(ctx, apiRequest{
		operation:   "upload_profile_image",
		method:      http.MethodPost,
		path:        studentPath(studentID) + "/image",
		body:        body,
		contentType: contentType,
		decode: func(r io.Reader) error {
			decoded, err := decodeImagePath(r)
			path = decoded
			return err
		},
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// ResolveImageURL joins a stored image path onto the API base URL.
func (g HTTPGateway) ResolveImageURL(path string) string {
	return g.baseURL + "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
}

func (g HTTPGateway) ListGenders(ctx context.Context) ([]studentapp.Gender, error) {
	var payload []genderPayload
	err := g.call(ctx, apiRequest{
		operation: "list_genders",
		method:    http.MethodGet,
		path:      "/genders",
		decode:    decodeJSON(&payload),
	})
	if err != nil {
		return nil, err
	}
	genders := make([]studentapp.Gender, 0, len(payload))
	for _, item := range payload {
		genders = append(genders, item.toApp())
	}
	return genders, nil
}

func studentPath(studentID string) string {
	return "/students/" + url.PathEscape(strings.TrimSpace(studentID))
}

func encodeJSON(value any) (io.Reader, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("encode request: %v", err))
	}
	return bytes.NewReader(raw), nil
}

func decodeJSON(target any) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(target)
	}
}

func encodeImage(upload studentapp.ImageUpload) (io.Reader, string, error) {
	if upload.Body == nil {
		return nil, "", apperrors.E(apperrors.KindInvalidInput, "profile image is required")
	}
	filename := strings.TrimSpace(upload.Filename)
	if filename == "" {
		filename = "profile-image"
	}
	contentType := strings.TrimSpace(upload.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, ImagePartName, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", apperrors.E(apperrors.KindUnknown, fmt.Sprintf("create image part: %v", err))
	}
	if _, err := io.Copy(part, upload.Body); err != nil {
		return nil, "", apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("read profile image: %v", err))
	}
	if err := writer.Close(); err != nil {
		return nil, "", apperrors.E(apperrors.KindUnknown, fmt.Sprintf("close image form: %v", err))
	}
	return &buffer, writer.FormDataContentType(), nil
}

// decodeImagePath accepts either a bare text path or a JSON string.
func decodeImagePath(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxImagePathBytes))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, `"`) {
		var decoded string
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			return "", err
		}
		text = strings.TrimSpace(decoded)
	}
	return text, nil
}
