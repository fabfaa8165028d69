package postgres

import (
	"context"
	"errors"

	"payment-log/pkg/apperror"
)

// Namespace and table that hold the payment log.
const (
	Namespace = "payments"
	LogTable  = Namespace + ".log"
)

// Both statements only create what is missing. An existing table is left as
// is even if its columns differ; drift is not detected.
const (
	createNamespaceSQL = `CREATE SCHEMA IF NOT EXISTS payments`

	createLogTableSQL = `CREATE TABLE IF NOT EXISTS payments.log (
	id           uuid        PRIMARY KEY,
	amount       numeric     NOT NULL,
	requested_at timestamptz NOT NULL,
	processed_by text
)`
)

var errLogTableMissing = errors.New("table " + LogTable + " does not exist")

// schemaStep is one idempotent structural declaration.
type schemaStep struct {
	name string
	sql  string
}

var (
	stepNamespace = schemaStep{name: "namespace", sql: createNamespaceSQL}
	stepLogTable  = schemaStep{name: "log_table", sql: createLogTableSQL}
)

// schemaSteps lists the declarations in dependency order.
var schemaSteps = []schemaStep{stepNamespace, stepLogTable}

// DeclareNamespace ensures the payments schema exists.
func DeclareNamespace(ctx context.Context, db Execer) error {
	return declare(ctx, db, stepNamespace)
}

// DeclareLogTable ensures payments.log exists. The namespace must already be
// present; otherwise the store rejects the statement and a setup error is returned.
func DeclareLogTable(ctx context.Context, db Execer) error {
	return declare(ctx, db, stepLogTable)
}

func declare(ctx context.Context, db Execer, step schemaStep) error {
	if _, err := db.Exec(ctx, step.sql); err != nil {
		return apperror.ErrSchemaSetup(step.name, err)
	}
	return nil
}
