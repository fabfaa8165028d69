package postgres

import (
	"context"
	"fmt"
	"time"

	"payment-log/pkg/apperror"

	"github.com/rs/zerolog"
)

const advisoryLockSQL = `SELECT pg_advisory_xact_lock($1)`

// Migrator applies the payments schema. It never retries; a failed run is
// repaired by running it again, which every step tolerates.
type Migrator struct {
	pool    Pool
	lockKey int64
	log     zerolog.Logger
}

// NewMigrator creates a Migrator. lockKey identifies the advisory lock shared
// by every process applying this schema.
func NewMigrator(pool Pool, lockKey int64, log zerolog.Logger) *Migrator {
	return &Migrator{pool: pool, lockKey: lockKey, log: log}
}

// Apply declares the namespace and the log table in a single transaction.
// The advisory lock serializes concurrent first-time runs, and transactional
// DDL means a failure on the table leaves no namespace behind.
func (m *Migrator) Apply(ctx context.Context) error {
	start := time.Now()

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return apperror.ErrSchemaSetup("begin", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, advisoryLockSQL, m.lockKey); err != nil {
		return apperror.ErrSchemaSetup("lock", err)
	}

	for _, step := range schemaSteps {
		if err := declare(ctx, tx, step); err != nil {
			m.log.Error().Err(err).Str("step", step.name).Msg("schema step failed, rolling back")
			return err
		}
		m.log.Debug().Str("step", step.name).Msg("schema step applied")
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrSchemaSetup("commit", fmt.Errorf("commit schema: %w", err))
	}

	m.log.Info().
		Str("table", LogTable).
		Dur("took", time.Since(start)).
		Msg("payments schema applied")
	return nil
}

// ApplySteps declares the namespace and then the table, each in its own
// implicit transaction. A failure between the two can leave the namespace
// without the table; re-running converges.
func (m *Migrator) ApplySteps(ctx context.Context) error {
	for _, step := range schemaSteps {
		if err := declare(ctx, m.pool, step); err != nil {
			m.log.Error().Err(err).Str("step", step.name).Msg("schema step failed")
			return err
		}
		m.log.Info().Str("step", step.name).Msg("schema step applied")
	}
	return nil
}
