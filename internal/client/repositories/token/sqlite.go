package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SQLiteRepository stores the token slot in the client's SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get session[%s]: %w: %w", key, ErrStorage, err)
	}
	return value, value != "", nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w: %w", key, ErrStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, token string) error {
	return r.set(ctx, slotKey, token)
}

func (r *SQLiteRepository) Load(ctx context.Context) (string, bool, error) {
	return r.get(ctx, slotKey)
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, slotKey)
	if err != nil {
		return fmt.Errorf("clear session[%s]: %w: %w", slotKey, ErrStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) EnsureDeviceID(ctx context.Context) (string, error) {
	id, ok, err := r.get(ctx, deviceIDKey)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}
	id = uuid.NewString()
	if err := r.set(ctx, deviceIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
