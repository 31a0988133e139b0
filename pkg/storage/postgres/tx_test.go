package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/pkg/domain"
	"shopapi/pkg/storage"
	"shopapi/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitOutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitsOnSuccess(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	var email string
	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		user, err := tx.StoreUser(ctx, domain.User{
			Email:        "txcommit@example.com",
			PasswordHash: "x",
			Role:         domain.RoleUser,
			Status:       domain.UserStatusActive,
		})
		if err != nil {
			return err
		}
		email = user.Email

		return nil
	})
	require.NoError(t, err)

	user, err := pg.UserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestPgSQL_WithTx_RollsBackOnError(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	boom := errors.New("boom")

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.StoreUser(ctx, domain.User{
			Email:        "txrollback@example.com",
			PasswordHash: "x",
			Role:         domain.RoleUser,
			Status:       domain.UserStatusActive,
		}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	user, err := pg.UserByEmail(ctx, "txrollback@example.com")
	require.NoError(t, err)
	require.Nil(t, user)
}
