package ledger

import (
	"context"
	"time"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
)

// BreakRecord is one persisted egg break
type BreakRecord struct {
	ID          int64         `json:"id"`
	EggID       int           `json:"egg_id"`
	LinkID      *int          `json:"link_id,omitempty"`
	Reward      domain.Reward `json:"reward"`
	Won         bool          `json:"won"`
	Roll        float64       `json:"roll"`
	WinningRate float64       `json:"winning_rate"`
	BrokenAt    time.Time     `json:"broken_at"`
}

// ClaimRecord is one persisted reward claim
type ClaimRecord struct {
	ID          int64     `json:"id"`
	TotalReward int64     `json:"total_reward"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

// Repository defines the break ledger storage
type Repository interface {
	RecordBreak(ctx context.Context, rec BreakRecord) error
	RecordClaim(ctx context.Context, rec ClaimRecord) error

	// RecentBreaks returns the newest breaks first
	RecentBreaks(ctx context.Context, limit int) ([]BreakRecord, error)

	// CleanupOldRecords removes breaks and claims older than retentionDays and
	// returns how many rows were deleted
	CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error)
}
