package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) RecordBreak(ctx context.Context, rec BreakRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) RecordClaim(ctx context.Context, rec ClaimRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) RecentBreaks(ctx context.Context, limit int) ([]BreakRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]BreakRecord), args.Error(1)
}

func (m *MockRepository) CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
