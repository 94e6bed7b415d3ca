package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
)

type ledgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new PostgreSQL break ledger repository
func NewLedgerRepository(db *pgxpool.Pool) ledger.Repository {
	return &ledgerRepository{db: db}
}

// RecordBreak stores one egg break. Text rewards leave reward_amount NULL.
func (r *ledgerRepository) RecordBreak(ctx context.Context, rec ledger.BreakRecord) error {
	query := `
		INSERT INTO egg_breaks (egg_id, link_id, reward, reward_amount, won, roll, winning_rate, broken_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var amount *int64
	if n, ok := rec.Reward.Amount(); ok {
		amount = &n
	}

	_, err := r.db.Exec(ctx, query,
		rec.EggID,
		rec.LinkID,
		rec.Reward.String(),
		amount,
		rec.Won,
		rec.Roll,
		rec.WinningRate,
		rec.BrokenAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordBreak, err)
	}
	return nil
}

// RecordClaim stores one reward claim
func (r *ledgerRepository) RecordClaim(ctx context.Context, rec ledger.ClaimRecord) error {
	query := `
		INSERT INTO reward_claims (total_reward, claimed_at)
		VALUES ($1, $2)
	`

	if _, err := r.db.Exec(ctx, query, rec.TotalReward, rec.ClaimedAt); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordClaim, err)
	}
	return nil
}

// RecentBreaks returns the newest breaks first
func (r *ledgerRepository) RecentBreaks(ctx context.Context, limit int) ([]ledger.BreakRecord, error) {
	query := `
		SELECT id, egg_id, link_id, reward, reward_amount, won, roll, winning_rate, broken_at
		FROM egg_breaks
		ORDER BY broken_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryBreaks, err)
	}
	defer rows.Close()

	return scanBreaks(rows)
}

// CleanupOldRecords removes breaks and claims older than the retention period
func (r *ledgerRepository) CleanupOldRecords(ctx context.Context, retentionDays int) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	cleanups := []struct {
		table string
		query string
	}{
		{"egg_breaks", `DELETE FROM egg_breaks WHERE broken_at < NOW() - INTERVAL '1 day' * $1`},
		{"reward_claims", `DELETE FROM reward_claims WHERE claimed_at < NOW() - INTERVAL '1 day' * $1`},
	}
	for _, c := range cleanups {
		result, err := tx.Exec(ctx, c.query, retentionDays)
		if err != nil {
			return 0, fmt.Errorf(ErrMsgFailedToCleanupTable+": %w", c.table, err)
		}
		total += result.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return total, nil
}

func scanBreaks(rows pgx.Rows) ([]ledger.BreakRecord, error) {
	var records []ledger.BreakRecord

	for rows.Next() {
		var rec ledger.BreakRecord
		var reward string
		var amount *int64

		err := rows.Scan(
			&rec.ID,
			&rec.EggID,
			&rec.LinkID,
			&reward,
			&amount,
			&rec.Won,
			&rec.Roll,
			&rec.WinningRate,
			&rec.BrokenAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanBreak, err)
		}

		if amount != nil {
			rec.Reward = domain.NumericReward(*amount)
		} else {
			rec.Reward = domain.TextReward(reward)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
