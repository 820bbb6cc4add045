package requestmeta

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	newPost := func(target string, host string, headers map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		req.Host = host
		for key, value := range headers {
			req.Header.Set(key, value)
		}
		return req
	}

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "origin same host and scheme",
			req:  newPost("https://admin.example.test/students/s1", "admin.example.test", map[string]string{"Origin": "https://admin.example.test"}),
			want: true,
		},
		{
			name: "referer same host and scheme",
			req:  newPost("https://admin.example.test/students/s1/delete", "admin.example.test", map[string]string{"Referer": "https://admin.example.test/students/s1"}),
			want: true,
		},
		{
			name: "plain http with explicit port",
			req:  newPost("http://localhost:8080/students/add", "localhost:8080", map[string]string{"Origin": "http://localhost:8080"}),
			want: true,
		},
		{
			name: "origin scheme mismatch",
			req:  newPost("https://admin.example.test/students/s1", "admin.example.test", map[string]string{"Origin": "http://admin.example.test"}),
			want: false,
		},
		{
			name: "origin port mismatch",
			req:  newPost("https://admin.example.test:8443/students/s1", "admin.example.test:8443", map[string]string{"Origin": "https://admin.example.test"}),
			want: false,
		},
		{
			name: "foreign origin wins over same-origin referer",
			req: newPost("https://admin.example.test/students/s1", "admin.example.test", map[string]string{
				"Origin":  "https://evil.example.test",
				"Referer": "https://admin.example.test/students/s1",
			}),
			want: false,
		},
		{
			name: "missing origin and referer",
			req:  newPost("https://admin.example.test/students/s1", "admin.example.test", nil),
			want: false,
		},
		{
			name: "untrusted forwarded proto is ignored",
			req: newPost("https://admin.example.test/students/s1", "admin.example.test", map[string]string{
				"Origin":            "http://admin.example.test",
				"X-Forwarded-Proto": "http",
			}),
			want: false,
		},
		{
			name: "trusted forwarded proto is used",
			req: newPost("https://admin.example.test/students/s1", "admin.example.test", map[string]string{
				"Origin":            "http://admin.example.test",
				"X-Forwarded-Proto": "http",
			}),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
		{
			name: "nil request",
			req:  nil,
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasSameOriginProof(tc.req, tc.policy); got != tc.want {
				t.Fatalf("HasSameOriginProof() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsMutation(t *testing.T) {
	t.Parallel()

	for method, want := range map[string]bool{
		http.MethodGet:    false,
		http.MethodHead:   false,
		http.MethodPost:   true,
		http.MethodPut:    true,
		http.MethodPatch:  true,
		http.MethodDelete: true,
	} {
		req := httptest.NewRequest(method, "/students", nil)
		if got := IsMutation(req); got != want {
			t.Fatalf("IsMutation(%s) = %v, want %v", method, got, want)
		}
	}
	if IsMutation(nil) {
		t.Fatalf("IsMutation(nil) = true, want false")
	}
}
