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

type taskCommentRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	TaskID      int64     `db:"task_id"`
	OwnerID     int64     `db:"owner_id"`
	Views       int64     `db:"views"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r taskCommentRow) toDomain() domain.TaskComment {
	return domain.TaskComment{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TaskID:      r.TaskID,
		OwnerID:     r.OwnerID,
		Views:       r.Views,
		CreatedAt:   r.CreatedAt,
	}
}

type listCommentRow struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	ListID      int64     `db:"list_id"`
	OwnerID     int64     `db:"owner_id"`
	Views       int64     `db:"views"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r listCommentRow) toDomain() domain.ListComment {
	return domain.ListComment{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		ListID:      r.ListID,
		OwnerID:     r.OwnerID,
		Views:       r.Views,
		CreatedAt:   r.CreatedAt,
	}
}

// CreateTaskComment inserts a new task comment, assigning its ID and
// creation time.
func (s *Store) CreateTaskComment(ctx context.Context, c *domain.TaskComment) error {
	c.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO task_comments (title, description, task_id, owner_id, views, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Title, c.Description, c.TaskID, c.OwnerID, c.Views, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating task comment: %w", err)
	}

	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task comment id: %w", err)
	}
	return nil
}

// GetTaskComment retrieves a single task comment by ID.
func (s *Store) GetTaskComment(ctx context.Context, id int64) (*domain.TaskComment, error) {
	var row taskCommentRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM task_comments WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task comment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting task comment %d: %w", id, err)
	}

	c := row.toDomain()
	return &c, nil
}

// UpdateTaskComment rewrites the mutable fields of an existing task comment.
func (s *Store) UpdateTaskComment(ctx context.Context, c *domain.TaskComment) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE task_comments SET title = ?, description = ? WHERE id = ?`,
		c.Title, c.Description, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task comment %d: %w", c.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task comment %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteTaskComment removes a task comment by ID.
func (s *Store) DeleteTaskComment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM task_comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task comment %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementTaskCommentViews bumps the comment's view counter. Missing rows
// are ignored.
func (s *Store) IncrementTaskCommentViews(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE task_comments SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing task comment %d views: %w", id, err)
	}
	return nil
}

// ListTaskCommentsByOwner returns all task comments owned by the given user.
func (s *Store) ListTaskCommentsByOwner(ctx context.Context, ownerID int64) ([]domain.TaskComment, error) {
	var rows []taskCommentRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM task_comments WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing task comments by owner %d: %w", ownerID, err)
	}

	return taskCommentRowsToDomain(rows), nil
}

// ListTaskCommentsByTask returns all comments attached to the given tasks.
func (s *Store) ListTaskCommentsByTask(ctx context.Context, taskIDs []int64) ([]domain.TaskComment, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM task_comments WHERE task_id IN (?)", taskIDs)
	if err != nil {
		return nil, fmt.Errorf("building task comment query: %w", err)
	}

	var rows []taskCommentRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing task comments by task: %w", err)
	}

	return taskCommentRowsToDomain(rows), nil
}

// CreateListComment inserts a new list comment, assigning its ID and
// creation time.
func (s *Store) CreateListComment(ctx context.Context, c *domain.ListComment) error {
	c.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO list_comments (title, description, list_id, owner_id, views, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Title, c.Description, c.ListID, c.OwnerID, c.Views, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating list comment: %w", err)
	}

	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading list comment id: %w", err)
	}
	return nil
}

// GetListComment retrieves a single list comment by ID.
func (s *Store) GetListComment(ctx context.Context, id int64) (*domain.ListComment, error) {
	var row listCommentRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM list_comments WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list comment %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting list comment %d: %w", id, err)
	}

	c := row.toDomain()
	return &c, nil
}

// UpdateListComment rewrites the mutable fields of an existing list comment.
func (s *Store) UpdateListComment(ctx context.Context, c *domain.ListComment) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE list_comments SET title = ?, description = ? WHERE id = ?`,
		c.Title, c.Description, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating list comment %d: %w", c.ID, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("list comment %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteListComment removes a list comment by ID.
func (s *Store) DeleteListComment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM list_comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting list comment %d: %w", id, err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("list comment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// IncrementListCommentViews bumps the comment's view counter. Missing rows
// are ignored.
func (s *Store) IncrementListCommentViews(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE list_comments SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing list comment %d views: %w", id, err)
	}
	return nil
}

// ListListCommentsByOwner returns all list comments owned by the given user.
func (s *Store) ListListCommentsByOwner(ctx context.Context, ownerID int64) ([]domain.ListComment, error) {
	var rows []listCommentRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT * FROM list_comments WHERE owner_id = ?", ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing list comments by owner %d: %w", ownerID, err)
	}

	return listCommentRowsToDomain(rows), nil
}

// ListListCommentsByList returns all comments attached to the given lists.
func (s *Store) ListListCommentsByList(ctx context.Context, listIDs []int64) ([]domain.ListComment, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM list_comments WHERE list_id IN (?)", listIDs)
	if err != nil {
		return nil, fmt.Errorf("building list comment query: %w", err)
	}

	var rows []listCommentRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("listing list comments by list: %w", err)
	}

	return listCommentRowsToDomain(rows), nil
}

func taskCommentRowsToDomain(rows []taskCommentRow) []domain.TaskComment {
	comments := make([]domain.TaskComment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toDomain())
	}
	return comments
}

func listCommentRowsToDomain(rows []listCommentRow) []domain.ListComment {
	comments := make([]domain.ListComment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toDomain())
	}
	return comments
}
