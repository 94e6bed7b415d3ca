package bootstrap

import (
	"log/slog"

	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
	"github.com/osse101/GoldenEgg_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus      event.Bus
	LedgerService ledger.Service // nil when the ledger is disabled
}

// RegisterEventHandlers sets up the metrics collector and, when enabled, the
// break ledger.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.LedgerService != nil {
		deps.LedgerService.Subscribe(deps.EventBus)
		slog.Info(LogMsgLedgerSubscribed)
	}
}
