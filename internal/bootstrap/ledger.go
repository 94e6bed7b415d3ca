package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GoldenEgg_Go/internal/config"
	"github.com/osse101/GoldenEgg_Go/internal/database"
	"github.com/osse101/GoldenEgg_Go/internal/database/postgres"
	"github.com/osse101/GoldenEgg_Go/internal/ledger"
)

// InitializeLedger connects to Postgres, applies the ledger migrations and
// builds the ledger service. It returns nils when the ledger is disabled.
func InitializeLedger(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, ledger.Service, error) {
	if !cfg.LedgerEnabled {
		slog.Info(LogMsgLedgerDisabled)
		return nil, nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectLedger, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateLedger, err)
	}

	svc := ledger.NewService(postgres.NewLedgerRepository(pool))
	slog.Info(LogMsgLedgerReady, "db_host", cfg.DBHost, "db_name", cfg.DBName, "retention_days", cfg.LedgerRetentionDays)
	return pool, svc, nil
}
