package store

import (
	goerrors "errors"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Sentinel errors the stores report. Handlers map these onto HTTP
// statuses; raw driver errors never cross the store boundary.
var (
	ErrNotFound      = goerrors.New("record not found")
	ErrAlreadyExists = goerrors.New("record already exists")
	ErrSelfFollow    = goerrors.New("user cannot follow themselves")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateDBError maps low-level postgres failures onto the store's
// sentinels. Uniqueness violations happen when two requests race past
// the existence pre-check; the constraint keeps exactly one row and the
// loser gets ErrAlreadyExists, same as if the pre-check had caught it.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	// already one of ours, e.g. surfaced inside a transaction callback
	if goerrors.Is(err, ErrNotFound) || goerrors.Is(err, ErrAlreadyExists) || goerrors.Is(err, ErrSelfFollow) {
		return err
	}
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if goerrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrAlreadyExists
		case pgForeignKeyViolation:
			return ErrNotFound
		}
	}
	return errors.Wrap(err, "database error")
}
