package postgres

import "context"

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the payments log table is present.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var exists bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, LogTable).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errLogTableMissing
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
