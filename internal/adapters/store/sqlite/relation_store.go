package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

type relationRow struct {
	ID        int64       `db:"id"`
	ListID    int64       `db:"list_id"`
	UserID    int64       `db:"user_id"`
	OwnerID   int64       `db:"owner_id"`
	Role      domain.Role `db:"role"`
	CreatedAt time.Time   `db:"created_at"`
}

func (r relationRow) toDomain() domain.Relation {
	return domain.Relation{
		ID:        r.ID,
		ListID:    r.ListID,
		UserID:    r.UserID,
		OwnerID:   r.OwnerID,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

// CreateRelation inserts a new share relation. The UNIQUE(user_id, list_id)
// constraint makes the duplicate check and the insert a single atomic unit,
// so two concurrent grants for the same pair cannot both succeed.
func (s *Store) CreateRelation(ctx context.Context, r *domain.Relation) error {
	r.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO user_relations (list_id, user_id, owner_id, role, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ListID, r.UserID, r.OwnerID, r.Role, r.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("relation for user %d on list %d already exists: %w",
			r.UserID, r.ListID, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("creating relation: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading relation id: %w", err)
	}
	return nil
}

// GetRelation retrieves a single relation by ID.
func (s *Store) GetRelation(ctx context.Context, id int64) (*domain.Relation, error) {
	var row relationRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM user_relations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("relation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting relation %d: %w", id, err)
	}

	r := row.toDomain()
	return &r, nil
}

// FindRelation looks up the unique relation for a (user, list) pair.
func (s *Store) FindRelation(ctx context.Context, userID, listID int64) (*domain.Relation, error) {
	var row relationRow
	err := s.db.GetContext(ctx, &row,
		"SELECT * FROM user_relations WHERE user_id = ? AND list_id = ?", userID, listID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("relation for user %d on list %d: %w",
			userID, listID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding relation for user %d on list %d: %w", userID, listID, err)
	}

	r := row.toDomain()
	return &r, nil
}

// UpdateRelation rewrites the relation's role and linked list. Re-pointing
// it at a (user, list) pair that already has a relation fails the unique
// constraint.
func (s *Store) UpdateRelation(ctx context.Context, r *domain.Relation) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE user_relations SET list_id = ?, role = ? WHERE id = ?`,
		r.ListID, r.Role, r.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("relation for user %d on list %d already exists: %w",
			r.UserID, r.ListID, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("updating relation %d: %w", r.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("relation %d: %w", r.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteRelation removes a relation by ID.
func (s *Store) DeleteRelation(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM user_relations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting relation %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("relation %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListRelationsByList returns every relation attached to the given list.
func (s *Store) ListRelationsByList(ctx context.Context, listID int64) ([]domain.Relation, error) {
	var rows []relationRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM user_relations WHERE list_id = ?", listID)
	if err != nil {
		return nil, fmt.Errorf("listing relations for list %d: %w", listID, err)
	}

	return relationRowsToDomain(rows), nil
}

// ListRelationsForUser returns every relation in which the user
// participates, as share subject or as grantor.
func (s *Store) ListRelationsForUser(ctx context.Context, userID int64) ([]domain.Relation, error) {
	var rows []relationRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM user_relations WHERE user_id = ? OR owner_id = ?", userID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing relations for user %d: %w", userID, err)
	}

	return relationRowsToDomain(rows), nil
}

func relationRowsToDomain(rows []relationRow) []domain.Relation {
	relations := make([]domain.Relation, 0, len(rows))
	for _, row := range rows {
		relations = append(relations, row.toDomain())
	}
	return relations
}
