package bootstrap

import (
	"fmt"

	"github.com/osse101/GoldenEgg_Go/internal/config"
	"github.com/osse101/GoldenEgg_Go/internal/game"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
	"github.com/osse101/GoldenEgg_Go/internal/scheduler"
)

// InitializeScheduler registers the periodic jobs. The ledger cleanup job is
// only added when ledgerService is non-nil.
func InitializeScheduler(cfg *config.Config, gameService game.Service, ledgerService ledger.Service) (*scheduler.Scheduler, error) {
	sched, err := scheduler.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateSchedule, err)
	}

	if err := sched.Every(scheduler.JobNameDeadlineRollover, cfg.DeadlineCheckInterval, true,
		scheduler.NewDeadlineJob(gameService)); err != nil {
		return nil, err
	}

	if ledgerService != nil && cfg.LedgerRetentionDays > 0 {
		if err := sched.Every(scheduler.JobNameLedgerCleanup, scheduler.DefaultCleanupInterval, true,
			ledger.NewCleanupJob(ledgerService, cfg.LedgerRetentionDays)); err != nil {
			return nil, err
		}
	}

	return sched, nil
}
