package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
)

func TestMemoryBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	var got []Type

	record := func(ctx context.Context, evt Event) error {
		got = append(got, evt.Type)
		return nil
	}
	bus.Subscribe(EggBroken, record)
	bus.Subscribe(EggBroken, record)
	bus.Subscribe(GameReset, record)

	require.NoError(t, bus.Publish(context.Background(), NewGameResetEvent(time.Now())))
	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: EggBroken}))

	assert.Equal(t, []Type{GameReset, EggBroken, EggBroken}, got)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewRewardsClaimedEvent(100)))
}

func TestMemoryBus_JoinsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0
	bus.Subscribe(LinkUsed, func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("ledger offline")
	})
	bus.Subscribe(LinkUsed, func(ctx context.Context, evt Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewLinkUsedEvent(3, 1))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger offline")
	assert.Equal(t, 2, calls, "a failing handler must not stop the others")
}

func TestNewEggBrokenEvent(t *testing.T) {
	linkID := 7
	evt := NewEggBrokenEvent(domain.BreakResult{
		EggID:       4,
		Reward:      domain.NumericReward(250),
		Won:         true,
		LinkID:      &linkID,
		Roll:        12.5,
		WinningRate: 80,
	})

	assert.Equal(t, EggBroken, evt.Type)
	payload, ok := evt.Payload.(EggBrokenPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 4, payload.EggID)
	assert.Equal(t, 7, *payload.LinkID)
	assert.Equal(t, 80.0, payload.WinningRate)
	assert.Equal(t, 12.5, payload.Roll)
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload", func(t *testing.T) {
		p, err := DecodePayload[RewardsClaimedPayloadV1](RewardsClaimedPayloadV1{TotalReward: 900})
		require.NoError(t, err)
		assert.Equal(t, int64(900), p.TotalReward)
	})

	t.Run("map payload", func(t *testing.T) {
		p, err := DecodePayload[EggBrokenPayloadV1](map[string]interface{}{
			"egg_id": 2,
			"reward": "Free ticket",
			"won":    true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, p.EggID)
		assert.True(t, p.Reward.IsText())
		assert.True(t, p.Won)
	})
}
