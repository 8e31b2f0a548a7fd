package tokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestSaveAndLoad(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "T1"))

	tok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", tok)
}

func TestLoad_Empty_ReturnsEmptyString(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	tok, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestSave_ReplacesPreviousToken(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "old"))
	require.NoError(t, r.Save(ctx, "new"))

	tok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", tok)
}

func TestClear_RemovesToken_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "T1"))
	require.NoError(t, r.Clear(ctx))

	tok, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)

	require.NoError(t, r.Clear(ctx))
}

func TestLoad_QueryError_Wrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("disk gone")
	mock.ExpectQuery("SELECT value FROM session").WillReturnError(boom)

	_, err = NewSQLiteRepository(db).Load(context.Background())
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ExecError_Wrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("locked")
	mock.ExpectExec("INSERT INTO session").WillReturnError(boom)

	err = NewSQLiteRepository(db).Save(context.Background(), "T1")
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_ExecError_Wrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("locked")
	mock.ExpectExec("DELETE FROM session").WillReturnError(boom)

	err = NewSQLiteRepository(db).Clear(context.Background())
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
