package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/user"
)

// CreateUser persists a new user with its roles and assigns its identity.
func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO users (username) VALUES (?)", u.Username())
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	u.SetID(id)
	for _, r := range u.Roles() {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO user_roles (user_id, role) VALUES (?, ?)", id, string(r)); err != nil {
			return fmt.Errorf("insert user role: %w", err)
		}
	}
	return nil
}

// LoadUser reconstructs a user by identity, nil when absent.
func (s *Store) LoadUser(ctx context.Context, id int64) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, username FROM users WHERE id = ?", id)
	return s.scanUser(ctx, row)
}

// LoadUserByUsername reconstructs a user by login name, nil when absent.
func (s *Store) LoadUserByUsername(ctx context.Context, username string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, username FROM users WHERE username = ?", username)
	return s.scanUser(ctx, row)
}

func (s *Store) scanUser(ctx context.Context, row *sql.Row) (*user.User, error) {
	var id int64
	var username string
	if err := row.Scan(&id, &username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	u := user.New(username)
	u.SetID(id)

	rows, err := s.db.QueryContext(ctx, "SELECT role FROM user_roles WHERE user_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("query user roles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan user role: %w", err)
		}
		u.AddRole(user.Role(role))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user roles: %w", err)
	}
	return u, nil
}
