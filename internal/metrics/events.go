package metrics

import (
	"context"

	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.EggBroken,
		event.LinkUsed,
		event.RewardsClaimed,
		event.GameReset,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Undecodable payloads are
// logged and skipped so metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.EggBroken:
		p, err := event.DecodePayload[event.EggBrokenPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		outcome, source := OutcomeLoss, SourceDirect
		if p.Won {
			outcome = OutcomeWin
		}
		if p.LinkID != nil {
			source = SourceLink
		}
		EggsBroken.WithLabelValues(outcome, source).Inc()
		if amount, ok := p.Reward.Amount(); ok && amount > 0 {
			RewardsAwarded.Add(float64(amount))
		}

	case event.LinkUsed:
		LinksUsed.Inc()

	case event.RewardsClaimed:
		p, err := event.DecodePayload[event.RewardsClaimedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		RewardsClaimed.Inc()
		ClaimedAmount.Add(float64(p.TotalReward))

	case event.GameReset:
		GameResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
