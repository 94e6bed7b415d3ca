package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/mocks"
)

const testAPIKey = "admin-secret"

func newTestServer(t *testing.T) (*Server, *mocks.MockGameService) {
	t.Helper()
	svc := mocks.NewMockGameService(t)
	srv := NewServer(Options{
		Port:               0,
		AdminAPIKey:        testAPIKey,
		CORSAllowedOrigins: []string{"*"},
	}, nil, svc, nil)
	return srv, svc
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().GetGameState(mock.Anything, (*int)(nil)).Return(domain.GameState{
		Deadline:   1700000000000,
		BrokenEggs: []int{},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/game-state", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(1700000000000), body["deadline"])
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestServer_OpsRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServer_AdminRequiresAPIKey(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ListEggs(mock.Anything).Return([]domain.Egg{}, nil).Once()

	t.Run("without key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/eggs", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("with key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/eggs", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("player routes stay open", func(t *testing.T) {
		svc.EXPECT().GetLeaderboard(mock.Anything).Return([]domain.LeaderboardEntry{}, nil).Once()
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_AdminAliases(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().CreateLink(mock.Anything, domain.NewLink{Subdomain: "promo", EggID: 2}).
		Return(domain.CustomLink{ID: 1, EggID: 2}, nil).Twice()

	for _, path := range []string{"/api/admin/links", "/api/admin/create-link"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"subdomain":"promo","eggId":2}`))
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusCreated, rec.Code, path)
	}
}

func TestServer_Preflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/create-link", nil)
	req.Header.Set(HeaderOrigin, "https://promo.dammedaga.fun")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(HeaderAllowOrigin))
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/admin/eggs", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	req.Header.Set(HeaderRequestID, "req-42")

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler).ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "req-42")
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Empty(t, buf.String())
	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestServer_LedgerRouteOnlyWhenEnabled(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/breaks", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"`+ErrMsgNotFound+`"}`, rec.Body.String())
}

func TestServer_ErrorsCarryMessage(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ClaimRewards(mock.Anything).Return(domain.ClaimResult{}, domain.ErrNoRewardsToClaim).Once()
	svc.EXPECT().GetLink(mock.Anything, 77).Return(domain.LinkInfo{}, domain.ErrLinkNotFound).Once()

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
	}{
		{"nothing to claim", http.MethodPost, "/api/claim-rewards", http.StatusBadRequest, "There are no rewards to claim"},
		{"missing admin key", http.MethodGet, "/api/admin/eggs", http.StatusUnauthorized, ErrMsgUnauthorized},
		{"unknown link", http.MethodGet, "/api/links/77", http.StatusNotFound, "Link not found"},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound, ErrMsgNotFound},
		{"wrong method", http.MethodDelete, "/api/game-state", http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
			assert.NotContains(t, body, "error")
		})
	}
}
