// Package repository provides typed access to the persistent tables. All
// failures surface as *Error with a Kind so callers can decide between
// retrying, tolerating, and failing fast without seeing backend codes.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errEmptyKey = errors.New("empty key")

// isNoRows matches the no-rows sentinel from either pgx or database/sql.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindTransient  Kind = "transient"
	KindPermanent  Kind = "permanent"
)

type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the Kind, defaulting to permanent for foreign errors.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindPermanent
}

func IsNotFound(err error) bool  { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool  { return KindOf(err) == KindConflict }
func IsTransient(err error) bool { return KindOf(err) == KindTransient }

// classify maps a raw backend error onto the taxonomy. Throttling, resource
// exhaustion, connectivity loss, and backend-internal failures are
// retryable; everything else is not.
func classify(err error) Kind {
	if err == nil {
		return ""
	}

	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505": // unique_violation
			return KindConflict
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient_resources
			return KindTransient
		case pgErr.Code == "57P03" || pgErr.Code == "57014": // cannot_connect_now, query_canceled
			return KindTransient
		case pgErr.Code == "40001" || pgErr.Code == "40P01": // serialization, deadlock
			return KindTransient
		case strings.HasPrefix(pgErr.Code, "XX"): // internal_error
			return KindTransient
		case strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23"):
			return KindValidation
		case strings.HasPrefix(pgErr.Code, "28") || strings.HasPrefix(pgErr.Code, "42"):
			return KindPermanent
		}
		return KindPermanent
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransient
	}

	return KindPermanent
}

// wrap attaches the op and classified kind; *Error values pass through.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return re
	}
	return newError(classify(err), op, err)
}
