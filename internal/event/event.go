package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"`
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Game event types
const (
	EggBroken      Type = domain.EventTypeEggBroken
	LinkUsed       Type = domain.EventTypeLinkUsed
	RewardsClaimed Type = domain.EventTypeRewardsClaimed
	GameReset      Type = domain.EventTypeGameReset
)

// EggBrokenPayloadV1 is the typed payload for egg.broken events
type EggBrokenPayloadV1 struct {
	EggID       int           `json:"egg_id"`
	LinkID      *int          `json:"link_id,omitempty"`
	Reward      domain.Reward `json:"reward"`
	Won         bool          `json:"won"`
	Roll        float64       `json:"roll"`
	WinningRate float64       `json:"winning_rate"`
	Timestamp   int64         `json:"timestamp"`
}

// LinkUsedPayloadV1 is the typed payload for link.used events
type LinkUsedPayloadV1 struct {
	LinkID    int   `json:"link_id"`
	EggID     int   `json:"egg_id"`
	Timestamp int64 `json:"timestamp"`
}

// RewardsClaimedPayloadV1 is the typed payload for rewards.claimed events
type RewardsClaimedPayloadV1 struct {
	TotalReward int64 `json:"total_reward"`
	Timestamp   int64 `json:"timestamp"`
}

// GameResetPayloadV1 is the typed payload for game.reset events
type GameResetPayloadV1 struct {
	Deadline  int64 `json:"deadline"`
	Timestamp int64 `json:"timestamp"`
}

// NewEggBrokenEvent creates an egg.broken event from a resolved break
func NewEggBrokenEvent(result domain.BreakResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EggBroken,
		Payload: EggBrokenPayloadV1{
			EggID:       result.EggID,
			LinkID:      result.LinkID,
			Reward:      result.Reward,
			Won:         result.Won,
			Roll:        result.Roll,
			WinningRate: result.WinningRate,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewLinkUsedEvent creates a link.used event
func NewLinkUsedEvent(linkID, eggID int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LinkUsed,
		Payload: LinkUsedPayloadV1{
			LinkID:    linkID,
			EggID:     eggID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewRewardsClaimedEvent creates a rewards.claimed event
func NewRewardsClaimedEvent(total int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardsClaimed,
		Payload: RewardsClaimedPayloadV1{
			TotalReward: total,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewGameResetEvent creates a game.reset event
func NewGameResetEvent(deadline time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameReset,
		Payload: GameResetPayloadV1{
			Deadline:  deadline.UnixMilli(),
			Timestamp: time.Now().Unix(),
		},
	}
}

// DecodePayload decodes an event payload into T. In-process events already
// carry the struct; anything else goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously and joins
// their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
