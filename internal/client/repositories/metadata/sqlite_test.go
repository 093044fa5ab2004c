package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/bookdesk/internal/client/storage"
	"github.com/dmitrijs2005/bookdesk/internal/dbx"
	"github.com/stretchr/testify/require"
)

// setupDB opens an in-memory database with the migrated schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGetMany_ReturnsPresentKeysOnly(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("jwt")))
	require.NoError(t, r.Set(ctx, "other", []byte("x")))

	got, err := r.GetMany(ctx, "token", "userInfo")
	require.NoError(t, err)
	require.Equal(t, map[string][]byte{"token": []byte("jwt")}, got)

	got, err = r.GetMany(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestGetMany_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, err := r.GetMany(context.Background(), "token", "userInfo")
	require.ErrorContains(t, err, "failed to get metadata")
}

func TestWithTx_RollbackDiscardsPairWrite(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		require.NoError(t, repo.Set(ctx, "token", []byte("jwt")))
		require.NoError(t, repo.Set(ctx, "userInfo", []byte(`{"id":1}`)))
		return sql.ErrTxDone
	})
	require.ErrorIs(t, err, sql.ErrTxDone)

	got, err := NewSQLiteRepository(db).GetMany(ctx, "token", "userInfo")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("abc.def.ghi")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("abc.def.ghi"), v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestDelete_RemovesKeys_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte{0x01}))
	require.NoError(t, r.Set(ctx, "userInfo", []byte{0x02}))
	require.NoError(t, r.Set(ctx, "other", []byte{0x03}))

	require.NoError(t, r.Delete(ctx, "token", "userInfo"))

	for _, k := range []string{"token", "userInfo"} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, v, k)
	}

	v, err := r.Get(ctx, "other")
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, v)

	require.NoError(t, r.Delete(ctx, "token", "userInfo"))
	require.NoError(t, r.Delete(ctx))
}

func TestGet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	v, err := r.Get(context.Background(), "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get metadata[k]")
}

func TestSet_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Set(context.Background(), "k", []byte("v"))
	require.ErrorContains(t, err, "failed to set metadata[k]")
}

func TestDelete_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	err := r.Delete(context.Background(), "k")
	require.ErrorContains(t, err, "failed to delete metadata")
}
