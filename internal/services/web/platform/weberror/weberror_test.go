package weberror

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webi18n "github.com/louisbranch/studentadmin/internal/services/web/i18n"
	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
)

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/students/s1/unknown", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{"data-app-error-state", "Page not found", "<title>Not Found | Student Admin Portal</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %q", marker, body)
		}
	}
}

func TestWriteModuleErrorWritesPlainTextForForbidden(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/students/s1", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.EK(apperrors.KindForbidden, "error.web.message.cross_origin_request", "origin mismatch"))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Cross-origin form submissions are not allowed.") {
		t.Fatalf("body = %q, want localized message", body)
	}
	if strings.Contains(body, "origin mismatch") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorFallsBackToStatusTextWithoutKey(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodPost, "/students/s1", nil), apperrors.E(apperrors.KindInvalidInput, "bad multipart"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if body := rr.Body.String(); strings.Contains(body, "bad multipart") || !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic status text", body)
	}
}

func TestWriteAppErrorNormalizesStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/students", nil), http.StatusTeapot)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	err := apperrors.EK(apperrors.KindUnavailable, "error.web.message.student_api_unavailable", "no base url")
	if got := PublicMessage(loc, err); got != "The student service is not configured." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}
