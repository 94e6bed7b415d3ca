package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/metrics"
)

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	bus := event.NewMemoryBus()
	NewService(mockRepo).Subscribe(bus)

	linkID := 2
	mockRepo.On("RecordBreak", mock.Anything, mock.MatchedBy(func(rec BreakRecord) bool {
		return rec.EggID == 4 && *rec.LinkID == 2 && rec.Won && rec.WinningRate == 80
	})).Return(nil).Once()
	mockRepo.On("RecordClaim", mock.Anything, mock.MatchedBy(func(rec ClaimRecord) bool {
		return rec.TotalReward == 250
	})).Return(nil).Once()

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewEggBrokenEvent(domain.BreakResult{
		EggID:       4,
		LinkID:      &linkID,
		Reward:      domain.NumericReward(250),
		Won:         true,
		Roll:        10,
		WinningRate: 80,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewRewardsClaimedEvent(250)))

	// Events the ledger does not store
	require.NoError(t, bus.Publish(ctx, event.NewLinkUsedEvent(2, 4)))
	require.NoError(t, bus.Publish(ctx, event.NewGameResetEvent(time.Now())))

	mockRepo.AssertExpectations(t)
}

func TestService_HandleEggBroken_WriteError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	mockRepo.On("RecordBreak", ctx, mock.Anything).Return(errors.New("connection refused"))
	before := testutil.ToFloat64(metrics.LedgerWriteErrors)

	err := svc.handleEggBroken(ctx, event.NewEggBrokenEvent(domain.BreakResult{EggID: 1}))

	assert.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LedgerWriteErrors))
}

func TestService_HandleEggBroken_MapPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	mockRepo.On("RecordBreak", ctx, mock.MatchedBy(func(rec BreakRecord) bool {
		return rec.EggID == 3 && rec.Reward.String() == "Free ticket" && rec.BrokenAt.Equal(time.Unix(1700000000, 0))
	})).Return(nil).Once()

	err := svc.handleEggBroken(ctx, event.Event{
		Type: event.EggBroken,
		Payload: map[string]interface{}{
			"egg_id":    3,
			"reward":    "Free ticket",
			"won":       true,
			"timestamp": 1700000000,
		},
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEggBroken_BadPayloadIsSkipped(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)

	err := svc.handleEggBroken(context.Background(), event.Event{
		Type:    event.EggBroken,
		Payload: map[string]interface{}{"egg_id": "not a number"},
	})

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "RecordBreak", mock.Anything, mock.Anything)
}

func TestService_RecentBreaks(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	want := []BreakRecord{{ID: 9, EggID: 1}}
	mockRepo.On("RecentBreaks", ctx, 20).Return(want, nil)

	got, err := svc.RecentBreaks(ctx, 20)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
