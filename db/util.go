package db

import (
	"database/sql"

	"github.com/lib/pq"
)

// InTransaction runs a function inside a transaction and handles committing
// and rollback on error
func InTransaction(fn func(*sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return
	}
	err = fn(tx)
	if err != nil {
		tx.Rollback()
		return
	}
	return tx.Commit()
}

// IsConflictError returns if an error is a unique key conflict error
func IsConflictError(err error) bool {
	return pqErrorCode(err) == "unique_violation"
}

// IsForeignKeyError returns if an error is a foreign key violation error
func IsForeignKeyError(err error) bool {
	return pqErrorCode(err) == "foreign_key_violation"
}

// Extract error code, if error is a *pq.Error
func pqErrorCode(err error) string {
	if err, ok := err.(*pq.Error); ok {
		return err.Code.Name()
	}
	return ""
}

// Convert nullable text columns: empty strings are written as NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
