package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
)

type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) Subscribe(bus event.Bus) {
	m.Called(bus)
}

func (m *mockLedgerService) RecentBreaks(ctx context.Context, limit int) ([]ledger.BreakRecord, error) {
	args := m.Called(ctx, limit)
	records, _ := args.Get(0).([]ledger.BreakRecord)
	return records, args.Error(1)
}

func (m *mockLedgerService) CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

func TestHandleRecentBreaks(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mockLedgerService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "default limit",
			query: "",
			setupMock: func(m *mockLedgerService) {
				m.On("RecentBreaks", mock.Anything, 50).Return([]ledger.BreakRecord{{ID: 1, EggID: 4}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"egg_id":4`,
		},
		{
			name:  "limit is capped",
			query: "?limit=9000",
			setupMock: func(m *mockLedgerService) {
				m.On("RecentBreaks", mock.Anything, 500).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "invalid limit",
			query:          "?limit=zero",
			setupMock:      func(m *mockLedgerService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid limit query parameter",
		},
		{
			name:  "repository failure",
			query: "?limit=5",
			setupMock: func(m *mockLedgerService) {
				m.On("RecentBreaks", mock.Anything, 5).Return(nil, errors.New("pool closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockLedgerService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/breaks"+tt.query, nil)
			rec := httptest.NewRecorder()
			NewLedgerHandler(svc).HandleRecentBreaks(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			assert.NotContains(t, rec.Body.String(), "pool closed")
			svc.AssertExpectations(t)
		})
	}
}
