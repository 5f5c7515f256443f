package store

import (
	"testing"

	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	require.NoError(t, translateDBError(nil))
	require.ErrorIs(t, translateDBError(gorm.ErrRecordNotFound), ErrNotFound)
	require.ErrorIs(t, translateDBError(&pgconn.PgError{Code: "23505"}), ErrAlreadyExists)
	require.ErrorIs(t, translateDBError(&pgconn.PgError{Code: "23503"}), ErrNotFound)

	// wrapped driver errors still translate
	wrapped := errors.Wrap(&pgconn.PgError{Code: "23505"}, "create relation")
	require.ErrorIs(t, translateDBError(wrapped), ErrAlreadyExists)

	// anything else stays an internal error, not a sentinel
	other := translateDBError(errors.New("connection reset"))
	require.Error(t, other)
	require.NotErrorIs(t, other, ErrNotFound)
	require.NotErrorIs(t, other, ErrAlreadyExists)
}
