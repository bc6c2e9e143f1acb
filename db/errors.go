package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrorClass buckets a storage failure for logging. Clients never see it.
type ErrorClass string

const (
	ClassNone         ErrorClass = ""
	ClassConnectivity ErrorClass = "connectivity"
	ClassConstraint   ErrorClass = "constraint"
	ClassStatement    ErrorClass = "statement"
)

// Classify inspects a (possibly wrapped) driver error.
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassNone
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53", "57":
			return ClassConnectivity
		case "23":
			return ClassConstraint
		default:
			return ClassStatement
		}
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3lib.SQLITE_CONSTRAINT:
			return ClassConstraint
		case sqlite3lib.SQLITE_CANTOPEN, sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED, sqlite3lib.SQLITE_IOERR, sqlite3lib.SQLITE_NOTADB:
			return ClassConnectivity
		default:
			return ClassStatement
		}
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return ClassConnectivity
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ClassConnectivity
	}

	return ClassStatement
}
