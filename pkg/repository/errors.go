package repository

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE class 08 covers connection exceptions.
const pgConnectionClass = "08"

// MapError translates database errors to domain errors. sql.ErrNoRows
// becomes notFoundErr; every other error is returned unchanged so callers
// can distinguish a missing row from a failed statement.
func MapError(err error, notFoundErr error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}

	return err
}

// IsConnectionFailure reports whether err stems from the database
// connection rather than the statement itself: a dead driver connection,
// a network error, or a PostgreSQL connection-exception SQLSTATE.
func IsConnectionFailure(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgConnectionClass {
		return true
	}

	return false
}
