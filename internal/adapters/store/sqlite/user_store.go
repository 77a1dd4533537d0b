package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

type userRow struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		CreatedAt: r.CreatedAt,
	}
}

// CreateUser inserts a new user, assigning its ID and creation time.
func (s *Store) CreateUser(ctx context.Context, u *domain.User) error {
	u.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?)`,
		u.Username, u.FirstName, u.LastName, u.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("username %q already taken: %w", u.Username, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	u.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading user id: %w", err)
	}
	return nil
}

// GetUser retrieves a single user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}

	u := row.toDomain()
	return &u, nil
}
