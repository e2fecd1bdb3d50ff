package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// User is an account row. PasswordHash never leaves this package's callers
// except for verification.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser inserts an account and returns its ID.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		username, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUserByUsername returns the account for a username, or nil when none
// exists.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return db.getUser(ctx, `SELECT id, username, email, password_hash, created_at
		 FROM users WHERE username = $1`, username)
}

// GetUserByEmail returns the account for an email, or nil when none exists.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return db.getUser(ctx, `SELECT id, username, email, password_hash, created_at
		 FROM users WHERE email = $1`, email)
}

func (db *DB) getUser(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// UserExists reports whether a username or email is already registered.
func (db *DB) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`,
		username, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
