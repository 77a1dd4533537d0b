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

type taskRow struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Completed bool      `db:"completed"`
	ListID    int64     `db:"list_id"`
	OwnerID   int64     `db:"owner_id"`
	Views     int64     `db:"views"`
	CreatedAt time.Time `db:"created_at"`
}

func (r taskRow) toDomain() domain.Task {
	return domain.Task{
		ID:        r.ID,
		Title:     r.Title,
		Completed: r.Completed,
		ListID:    r.ListID,
		OwnerID:   r.OwnerID,
		Views:     r.Views,
		CreatedAt: r.CreatedAt,
	}
}

// CreateTask inserts a new task, assigning its ID and creation time.
func (s *Store) CreateTask(ctx context.Context, t *domain.Task) error {
	t.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (title, completed, list_id, owner_id, views, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Title, t.Completed, t.ListID, t.OwnerID, t.Views, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	return nil
}

// GetTask retrieves a single task by ID.
func (s *Store) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var row taskRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM tasks WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}

	t := row.toDomain()
	return &t, nil
}

// UpdateTask rewrites the mutable fields of an existing task, including its
// parent list so relink operations persist.
func (s *Store) UpdateTask(ctx context.Context, t *domain.Task) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, completed = ?, list_id = ? WHERE id = ?`,
		t.Title, t.Completed, t.ListID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", t.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteTask removes a task. Its comments are removed by cascade.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementTaskViews bumps the task's view counter. Missing rows are ignored.
func (s *Store) IncrementTaskViews(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing task %d views: %w", id, err)
	}
	return nil
}

// ListTasksByList returns all tasks belonging to the given task lists.
func (s *Store) ListTasksByList(ctx context.Context, listIDs []int64) ([]domain.Task, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM tasks WHERE list_id IN (?)", listIDs)
	if err != nil {
		return nil, fmt.Errorf("building task query: %w", err)
	}

	var rows []taskRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing tasks by list: %w", err)
	}

	return taskRowsToDomain(rows), nil
}

// ListTasksByOwner returns all tasks owned by the given user.
func (s *Store) ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	var rows []taskRow
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM tasks WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by owner %d: %w", ownerID, err)
	}

	return taskRowsToDomain(rows), nil
}

func taskRowsToDomain(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks
}
