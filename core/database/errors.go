package database

import (
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers relevant to error classification.
const (
	// ErrNoSuchTable is returned when a statement references a table that
	// does not exist (ER_NO_SUCH_TABLE).
	ErrNoSuchTable uint16 = 1146
	// ErrTooManyConnections is returned when the server connection limit is
	// reached (ER_CON_COUNT_ERROR).
	ErrTooManyConnections uint16 = 1040
	// ErrLockWaitTimeout is returned when a lock wait exceeds
	// innodb_lock_wait_timeout (ER_LOCK_WAIT_TIMEOUT).
	ErrLockWaitTimeout uint16 = 1205
	// ErrLockDeadlock is returned when a transaction is chosen as a deadlock
	// victim (ER_LOCK_DEADLOCK).
	ErrLockDeadlock uint16 = 1213
)

// IsMissingTable reports whether err means the referenced table does not
// exist. The report feature maps this to "schema version 1" instead of
// treating it as a failure.
func IsMissingTable(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == ErrNoSuchTable
	}
	return false
}

// IsTransient reports whether err is an operational store error that is
// expected to clear on its own (dropped connection, deadlock victim, lock
// wait timeout). Only these errors are retried; everything else, including
// the missing-table condition and context cancellation, surfaces immediately.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case ErrTooManyConnections, ErrLockWaitTimeout, ErrLockDeadlock:
			return true
		}
	}
	return false
}
