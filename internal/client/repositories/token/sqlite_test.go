package token

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestLoad_EmptySlot(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	tok, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", tok)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "abc123"))

	tok, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc123", tok)
}

func TestSave_OverwritesPreviousToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "old"))
	require.NoError(t, r.Save(ctx, "new"))

	tok, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", tok)
}

func TestClear_RemovesToken_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "abc123"))
	require.NoError(t, r.Clear(ctx))

	_, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Clear(ctx))
}

func TestLoad_EmptyStringValueIsAbsent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// A blank value must never surface as a token.
	_, err := db.Exec(`INSERT INTO session(key, value) VALUES ('authToken', '')`)
	require.NoError(t, err)

	tok, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", tok)
}

func TestEnsureDeviceID_StableAcrossCalls(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	first, err := r.EnsureDeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := r.EnsureDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsureDeviceID_DoesNotTouchTokenSlot(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.EnsureDeviceID(ctx)
	require.NoError(t, err)

	_, ok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOperations_StorageErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// Closing the database makes every driver call fail.
	require.NoError(t, db.Close())

	err := r.Save(ctx, "x")
	require.ErrorIs(t, err, ErrStorage)

	_, _, err = r.Load(ctx)
	require.ErrorIs(t, err, ErrStorage)

	err = r.Clear(ctx)
	require.ErrorIs(t, err, ErrStorage)

	_, err = r.EnsureDeviceID(ctx)
	require.ErrorIs(t, err, ErrStorage)
}
