package repository

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "modernc.org/sqlite/lib"
)

// StoreErrorKind classifies a failed store operation independently of the driver.
type StoreErrorKind int

const (
	KindOther StoreErrorKind = iota
	KindNotFound
	KindConflict
)

func (k StoreErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "other"
	}
}

// Sentinels for errors.Is checks against a *StoreError.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

// StoreError is returned by every ResourceRepo operation that fails.
type StoreError struct {
	Kind StoreErrorKind
	Op   string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match on kind regardless of the cause.
func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrConflict:
		return e.Kind == KindConflict
	}
	return false
}

// coder is satisfied by *sqlite.Error from modernc.org/sqlite.
type coder interface {
	Code() int
}

// classify wraps a raw driver error into a *StoreError.
func classify(op string, err error) *StoreError {
	if errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Kind: KindNotFound, Op: op, Err: err}
	}
	var ce coder
	if errors.As(err, &ce) && ce.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return &StoreError{Kind: KindConflict, Op: op, Err: err}
	}
	return &StoreError{Kind: KindOther, Op: op, Err: err}
}

func notFound(op string) *StoreError {
	return &StoreError{Kind: KindNotFound, Op: op}
}
