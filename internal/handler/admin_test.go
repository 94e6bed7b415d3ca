package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/mocks"
)

func TestHandleUpdateEgg(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockGameService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "numeric reward",
			body: `{"eggId":2,"reward":300,"winningRate":75}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().UpdateEgg(mock.Anything, 2, domain.NumericReward(300), 75.0).
					Return(domain.Egg{ID: 2, Reward: domain.NumericReward(300), WinningRate: 75}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"reward":300`,
		},
		{
			name: "text reward",
			body: `{"eggId":4,"reward":"Free coffee","winningRate":12.5}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().UpdateEgg(mock.Anything, 4, domain.TextReward("Free coffee"), 12.5).
					Return(domain.Egg{ID: 4, Reward: domain.TextReward("Free coffee"), WinningRate: 12.5}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"reward":"Free coffee"`,
		},
		{
			name: "numeric string reward",
			body: `{"eggId":1,"reward":"150","winningRate":0}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().UpdateEgg(mock.Anything, 1, domain.NumericReward(150), 0.0).
					Return(domain.Egg{ID: 1, Reward: domain.NumericReward(150)}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"reward":150`,
		},
		{
			name:           "rate above range",
			body:           `{"eggId":1,"reward":10,"winningRate":101}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"winningRate":"Must be at most 100"`,
		},
		{
			name:           "rate below range",
			body:           `{"eggId":1,"reward":10,"winningRate":-1}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"winningRate":"Must be at least 0"`,
		},
		{
			name:           "missing rate",
			body:           `{"eggId":1,"reward":10}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"winningRate":"This field is required"`,
		},
		{
			name:           "fractional reward",
			body:           `{"eggId":1,"reward":10.5,"winningRate":50}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "unknown egg",
			body: `{"eggId":12,"reward":10,"winningRate":50}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().UpdateEgg(mock.Anything, 12, domain.NumericReward(10), 50.0).
					Return(domain.Egg{}, domain.ErrEggNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgEggNotFoundError,
		},
		{
			name: "negative reward",
			body: `{"eggId":1,"reward":-5,"winningRate":50}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().UpdateEgg(mock.Anything, 1, domain.NumericReward(-5), 50.0).
					Return(domain.Egg{}, domain.ErrInvalidReward)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRewardError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockGameService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/eggs", bytes.NewBufferString(tt.body))
			NewAdminHandler(svc).HandleUpdateEgg(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleSetEggBroken(t *testing.T) {
	t.Run("clear flag", func(t *testing.T) {
		svc := mocks.NewMockGameService(t)
		svc.EXPECT().SetEggBroken(mock.Anything, 3, false).Return(domain.Egg{ID: 3}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/set-egg-broken", bytes.NewBufferString(`{"eggId":3,"broken":false}`))
		NewAdminHandler(svc).HandleSetEggBroken(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"broken":false`)
	})

	t.Run("flag is required", func(t *testing.T) {
		svc := mocks.NewMockGameService(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/set-egg-broken", bytes.NewBufferString(`{"eggId":3}`))
		NewAdminHandler(svc).HandleSetEggBroken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"broken":"This field is required"`)
	})
}

func TestHandleListEggs(t *testing.T) {
	svc := mocks.NewMockGameService(t)
	svc.EXPECT().ListEggs(mock.Anything).Return([]domain.Egg{
		{ID: 1, Reward: domain.NumericReward(50), WinningRate: 100},
		{ID: 2, Reward: domain.TextReward("Mug"), WinningRate: 10, Broken: true, ManuallyBroken: true},
	}, nil)

	rec := httptest.NewRecorder()
	NewAdminHandler(svc).HandleListEggs(rec, httptest.NewRequest(http.MethodGet, "/api/admin/eggs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":1,"reward":50,"winningRate":100,"broken":false,"manuallyBroken":false},
		{"id":2,"reward":"Mug","winningRate":10,"broken":true,"manuallyBroken":true}
	]`, rec.Body.String())
}

func TestHandleCreateLink(t *testing.T) {
	created := domain.CustomLink{
		ID:        1,
		Domain:    "dammedaga.fun",
		Subdomain: "promo",
		Protocol:  "https",
		FullURL:   "https://promo.dammedaga.fun?linkId=1",
		EggID:     2,
		Reward:    domain.NumericReward(180),
		Active:    true,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockGameService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: `{"subdomain":"promo","eggId":2}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().CreateLink(mock.Anything, domain.NewLink{Subdomain: "promo", EggID: 2}).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"fullUrl":"https://promo.dammedaga.fun?linkId=1"`,
		},
		{
			name:           "missing subdomain",
			body:           `{"eggId":2}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"subdomain":"This field is required"`,
		},
		{
			name:           "bad protocol",
			body:           `{"subdomain":"promo","eggId":2,"protocol":"gopher"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"protocol":"Must be http or https"`,
		},
		{
			name: "unknown egg",
			body: `{"subdomain":"promo","eggId":20}`,
			setupMock: func(m *mocks.MockGameService) {
				m.EXPECT().CreateLink(mock.Anything, domain.NewLink{Subdomain: "promo", EggID: 20}).
					Return(domain.CustomLink{}, domain.ErrEggNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgEggNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockGameService(t)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/admin/links", bytes.NewBufferString(tt.body))
			NewAdminHandler(svc).HandleCreateLink(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandleListLinks(t *testing.T) {
	svc := mocks.NewMockGameService(t)
	svc.EXPECT().ListLinks(mock.Anything).Return([]domain.CustomLink{}, nil)

	rec := httptest.NewRecorder()
	NewAdminHandler(svc).HandleListLinks(rec, httptest.NewRequest(http.MethodGet, "/api/admin/links", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHandleDeleteLink(t *testing.T) {
	route := func(svc *mocks.MockGameService) http.Handler {
		r := chi.NewRouter()
		r.Delete("/api/admin/links/{id}", NewAdminHandler(svc).HandleDeleteLink)
		return r
	}

	t.Run("deleted", func(t *testing.T) {
		svc := mocks.NewMockGameService(t)
		svc.EXPECT().DeleteLink(mock.Anything, 6).Return(nil)

		rec := httptest.NewRecorder()
		route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/links/6", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgLinkDeleted)
	})

	t.Run("missing", func(t *testing.T) {
		svc := mocks.NewMockGameService(t)
		svc.EXPECT().DeleteLink(mock.Anything, 6).Return(domain.ErrLinkNotFound)

		rec := httptest.NewRecorder()
		route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/links/6", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("zero id", func(t *testing.T) {
		svc := mocks.NewMockGameService(t)

		rec := httptest.NewRecorder()
		route(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/links/0", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
