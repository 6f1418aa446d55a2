package session

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gayya20/taskmanager-client/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testUser() *models.User {
	return &models.User{
		ID:        "u1",
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
		Role:      models.RoleUser,
		IsActive:  true,
	}
}

func TestSQLiteRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	got, err := repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, got, "absent key reads as nil without error")

	require.NoError(t, repo.Set(ctx, "token", []byte("T1")))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("T1"), got)

	// upsert overwrites
	require.NoError(t, repo.Set(ctx, "token", []byte("T2")))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("T2"), got)

	require.NoError(t, repo.Delete(ctx, "token"))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewSQLiteRepository(setupDB(t)))

	token, err := store.ReadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.WriteToken(ctx, "T1"))

	token, err = store.ReadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestStore_UserRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewSQLiteRepository(setupDB(t)))

	user, err := store.ReadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, store.WriteUser(ctx, testUser()))

	user, err = store.ReadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUser(), user)
}

func TestStore_ReadUser_Corruption(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))
	store := NewStore(repo)

	t.Run("not json", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "user", []byte("{not json")))
		_, err := store.ReadUser(ctx)
		assert.ErrorContains(t, err, "corrupt identity record")
	})

	t.Run("json with invalid shape", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "user", []byte(`{"id":"u1","email":"a@x.com","role":"root"}`)))
		_, err := store.ReadUser(ctx)
		assert.ErrorContains(t, err, "corrupt identity record")
	})
}

func TestStore_Purge(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewSQLiteRepository(setupDB(t)))

	require.NoError(t, store.WriteToken(ctx, "T1"))
	require.NoError(t, store.WriteUser(ctx, testUser()))

	require.NoError(t, store.Purge(ctx))

	token, err := store.ReadToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	user, err := store.ReadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// purging an empty store is fine
	require.NoError(t, store.Purge(ctx))
}

func TestSQLiteRepository_DriverErrors(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	boom := errors.New("disk I/O error")

	mock.ExpectQuery(`SELECT value FROM session`).WillReturnError(boom)
	_, err = repo.Get(ctx, "token")
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec(`INSERT INTO session`).WillReturnError(boom)
	err = repo.Set(ctx, "token", []byte("T1"))
	assert.ErrorIs(t, err, boom)

	mock.ExpectExec(`DELETE FROM session`).WillReturnError(boom)
	err = repo.Clear(ctx)
	assert.ErrorIs(t, err, boom)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, t.TempDir()+"/session.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := NewStore(NewSQLiteRepository(db))
	require.NoError(t, store.WriteToken(ctx, "T1"))

	token, err := store.ReadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}
