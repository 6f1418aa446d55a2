package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gayya20/taskmanager-client/internal/client/models"
)

// The store holds exactly two entries. Both present and well-formed means
// the session is eligible for silent restore; anything else means
// unauthenticated.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Repository is durable key/value persistence for the session entries.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SQLiteRepository implements Repository over the session table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Store is the typed surface over the repository: it owns the entry keys and
// the identity record's serialization. Only the session manager writes
// through it.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// ReadToken returns the persisted credential, or "" when absent.
func (s *Store) ReadToken(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *Store) WriteToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, keyToken, []byte(token))
}

// ReadUser returns the cached identity record, or nil when absent. A stored
// value that does not parse or fails structural validation is reported as an
// error; the caller decides whether that means corruption.
func (s *Store) ReadUser(ctx context.Context) (*models.User, error) {
	value, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("corrupt identity record: %w", err)
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("corrupt identity record: %w", err)
	}
	return &user, nil
}

func (s *Store) WriteUser(ctx context.Context, user *models.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode identity record: %w", err)
	}
	return s.repo.Set(ctx, keyUser, value)
}

// Purge removes both session entries. Safe to call on an already-empty store.
func (s *Store) Purge(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
