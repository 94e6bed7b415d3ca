package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		providedKey    string
		expectedStatus int
		expectedFails  int
	}{
		{"valid key", apiKey, http.StatusOK, 0},
		{"wrong key", "wrong-key", http.StatusUnauthorized, 1},
		{"missing key", "", http.StatusUnauthorized, 1},
		{"prefix of key", "secret", http.StatusUnauthorized, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			h := AuthMiddleware(apiKey, nil, detector)(okHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/eggs", nil)
			req.RemoteAddr = "203.0.113.9:5555"
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedFails, detector.FailedAuthCount("203.0.113.9"))
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, `{"message":"`+ErrMsgUnauthorized+`"}`, rec.Body.String())
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	detector := newDetector(3, time.Minute, func() time.Time { return now })
	h := RateLimitMiddleware(nil, detector)(okHandler)

	serve := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/game-state", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, serve("192.168.1.100"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve("192.168.1.100"))
	assert.Equal(t, 4, detector.RequestCount("192.168.1.100"))

	req := httptest.NewRequest(http.MethodGet, "/api/game-state", nil)
	req.RemoteAddr = "192.168.1.100:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"`+ErrMsgTooManyRequests+`"}`, rec.Body.String())

	// Other clients have their own budget
	assert.Equal(t, http.StatusOK, serve("192.168.1.101"))

	// A new window starts the count over
	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, serve("192.168.1.100"))
	assert.Equal(t, 1, detector.RequestCount("192.168.1.100"))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		expected   string
	}{
		{"direct", "198.51.100.7:443", "", nil, "198.51.100.7"},
		{"untrusted proxy ignored", "198.51.100.7:443", "10.1.1.1", nil, "198.51.100.7"},
		{"trusted proxy", "10.0.0.1:80", "203.0.113.5, 10.0.0.9", []string{"10.0.0.1"}, "10.0.0.9"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"no port", "198.51.100.7", "", nil, "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.expected, extractIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		allowed       []string
		method        string
		origin        string
		wantStatus    int
		wantOrigin    string
		wantPreflight bool
	}{
		{"wildcard", []string{"*"}, http.MethodGet, "https://any.example", http.StatusOK, "*", false},
		{"listed origin", []string{"https://a.example"}, http.MethodGet, "https://a.example", http.StatusOK, "https://a.example", false},
		{"unlisted origin", []string{"https://a.example"}, http.MethodGet, "https://evil.example", http.StatusOK, "", false},
		{"preflight", []string{"*"}, http.MethodOptions, "https://any.example", http.StatusNoContent, "*", true},
		{"options without origin", []string{"*"}, http.MethodOptions, "", http.StatusOK, "*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/break-egg", nil)
			if tt.origin != "" {
				req.Header.Set(HeaderOrigin, tt.origin)
			}
			rec := httptest.NewRecorder()

			CORSMiddleware(tt.allowed)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get(HeaderAllowOrigin))
			if tt.wantPreflight {
				assert.Equal(t, CORSAllowedMethods, rec.Header().Get(HeaderAllowMethods))
				assert.Contains(t, rec.Header().Get(HeaderAllowHeaders), HeaderAPIKey)
			}
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789abcdef"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
