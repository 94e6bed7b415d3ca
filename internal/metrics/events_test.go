package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()

	linkID := 3
	winsViaLink := EggsBroken.WithLabelValues(OutcomeWin, SourceLink)
	lossesDirect := EggsBroken.WithLabelValues(OutcomeLoss, SourceDirect)
	beforeWins := testutil.ToFloat64(winsViaLink)
	beforeLosses := testutil.ToFloat64(lossesDirect)
	beforeAwarded := testutil.ToFloat64(RewardsAwarded)
	beforeLinks := testutil.ToFloat64(LinksUsed)
	beforeClaimed := testutil.ToFloat64(ClaimedAmount)
	beforeResets := testutil.ToFloat64(GameResets)

	require.NoError(t, bus.Publish(ctx, event.NewEggBrokenEvent(domain.BreakResult{
		EggID: 1, Reward: domain.NumericReward(250), Won: true, LinkID: &linkID,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewEggBrokenEvent(domain.BreakResult{
		EggID: 2, Reward: domain.NumericReward(0),
	})))
	require.NoError(t, bus.Publish(ctx, event.NewEggBrokenEvent(domain.BreakResult{
		EggID: 3, Reward: domain.TextReward("Sticker"), Won: true,
	})))
	require.NoError(t, bus.Publish(ctx, event.NewLinkUsedEvent(linkID, 1)))
	require.NoError(t, bus.Publish(ctx, event.NewRewardsClaimedEvent(250)))
	require.NoError(t, bus.Publish(ctx, event.NewGameResetEvent(time.Now())))

	assert.Equal(t, beforeWins+1, testutil.ToFloat64(winsViaLink))
	assert.Equal(t, beforeLosses+1, testutil.ToFloat64(lossesDirect))
	assert.Equal(t, beforeAwarded+250, testutil.ToFloat64(RewardsAwarded), "text rewards are not summed")
	assert.Equal(t, beforeLinks+1, testutil.ToFloat64(LinksUsed))
	assert.Equal(t, beforeClaimed+250, testutil.ToFloat64(ClaimedAmount))
	assert.Equal(t, beforeResets+1, testutil.ToFloat64(GameResets))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	before := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.RewardsClaimed)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.RewardsClaimed,
		Payload: "not a payload",
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.RewardsClaimed))))
}
