package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

type taskListRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	OwnerID     int64     `db:"owner_id"`
	Views       int64     `db:"views"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r taskListRow) toDomain() domain.TaskList {
	return domain.TaskList{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		Views:       r.Views,
		CreatedAt:   r.CreatedAt,
	}
}

// CreateTaskList inserts a new task list, assigning its ID and creation time.
func (s *Store) CreateTaskList(ctx context.Context, l *domain.TaskList) error {
	l.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO task_lists (title, description, owner_id, views, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.Title, l.Description, l.OwnerID, l.Views, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating task list: %w", err)
	}

	l.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task list id: %w", err)
	}
	return nil
}

// GetTaskList retrieves a single task list by ID.
func (s *Store) GetTaskList(ctx context.Context, id int64) (*domain.TaskList, error) {
	var row taskListRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM task_lists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task list %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting task list %d: %w", id, err)
	}

	l := row.toDomain()
	return &l, nil
}

// UpdateTaskList rewrites the mutable fields of an existing task list.
func (s *Store) UpdateTaskList(ctx context.Context, l *domain.TaskList) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE task_lists SET title = ?, description = ? WHERE id = ?`,
		l.Title, l.Description, l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task list %d: %w", l.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task list %d: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteTaskList removes a task list. Tasks, relations, and comments
// attached to the list are removed by cascade.
func (s *Store) DeleteTaskList(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM task_lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task list %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task list %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementTaskListViews bumps the list's view counter. Missing rows are
// ignored.
func (s *Store) IncrementTaskListViews(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE task_lists SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing task list %d views: %w", id, err)
	}
	return nil
}

// ListTaskListsByOwner returns all task lists owned by the given user.
func (s *Store) ListTaskListsByOwner(ctx context.Context, ownerID int64) ([]domain.TaskList, error) {
	var rows []taskListRow
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM task_lists WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing task lists by owner %d: %w", ownerID, err)
	}

	lists := make([]domain.TaskList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.toDomain())
	}
	return lists, nil
}

// ListTaskLists returns the task lists with the given IDs. Unknown IDs are
// silently skipped.
func (s *Store) ListTaskLists(ctx context.Context, ids []int64) ([]domain.TaskList, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM task_lists WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("building task list query: %w", err)
	}

	var rows []taskListRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing task lists: %w", err)
	}

	lists := make([]domain.TaskList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, row.toDomain())
	}
	return lists, nil
}
