package ledger

import (
	"context"
	"time"

	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
	"github.com/osse101/GoldenEgg_Go/internal/metrics"
)

// Service writes game events to the break ledger
type Service interface {
	// Subscribe registers the ledger for break and claim events
	Subscribe(bus event.Bus)

	// RecentBreaks returns the newest ledger entries
	RecentBreaks(ctx context.Context, limit int) ([]BreakRecord, error)

	// CleanupOldRecords removes entries older than the retention period
	CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new break ledger service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.EggBroken, s.handleEggBroken)
	bus.Subscribe(event.RewardsClaimed, s.handleRewardsClaimed)
}

func (s *service) handleEggBroken(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.EggBrokenPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToDecode, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	rec := BreakRecord{
		EggID:       payload.EggID,
		LinkID:      payload.LinkID,
		Reward:      payload.Reward,
		Won:         payload.Won,
		Roll:        payload.Roll,
		WinningRate: payload.WinningRate,
		BrokenAt:    unixOrNow(payload.Timestamp),
	}
	if err := s.repo.RecordBreak(ctx, rec); err != nil {
		metrics.LedgerWriteErrors.Inc()
		log.Error(LogMsgFailedToRecord, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgBreakRecorded, LogFieldEggID, rec.EggID)
	return nil
}

func (s *service) handleRewardsClaimed(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[event.RewardsClaimedPayloadV1](evt.Payload)
	if err != nil {
		log.Warn(LogMsgFailedToDecode, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	rec := ClaimRecord{
		TotalReward: payload.TotalReward,
		ClaimedAt:   unixOrNow(payload.Timestamp),
	}
	if err := s.repo.RecordClaim(ctx, rec); err != nil {
		metrics.LedgerWriteErrors.Inc()
		log.Error(LogMsgFailedToRecord, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgClaimRecorded, "total", rec.TotalReward)
	return nil
}

func (s *service) RecentBreaks(ctx context.Context, limit int) ([]BreakRecord, error) {
	return s.repo.RecentBreaks(ctx, limit)
}

func (s *service) CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldRecords(ctx, retentionDays)
}

func unixOrNow(ts int64) time.Time {
	if ts <= 0 {
		return time.Now().UTC()
	}
	return time.Unix(ts, 0).UTC()
}
