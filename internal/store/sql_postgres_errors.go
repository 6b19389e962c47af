package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories which domain error a failed statement maps to.
type ErrorClassification int

const (
	// Unclassified is the default for nil errors, unrecognised codes and
	// errors that do not come from the driver.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a reference to a missing parent row.
	ForeignKeyViolation

	// NotNullViolation indicates a required column was left empty.
	NotNullViolation

	// CheckViolation indicates a CHECK constraint failure.
	CheckViolation
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Unclassified
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the class 23 (integrity constraint violation) codes.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	case pgerrcode.CheckViolation:
		return CheckViolation
	}

	return Unclassified
}
