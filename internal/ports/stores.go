package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user and fills in its server-assigned fields.
	// Returns domain.ErrConflict if the username is already taken.
	CreateUser(ctx context.Context, u *domain.User) error

	// GetUser returns a single user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// TaskListStore persists task lists. Deleting a list cascades to its tasks,
// relations, and comments (enforced by the storage engine).
type TaskListStore interface {
	CreateTaskList(ctx context.Context, l *domain.TaskList) error

	// GetTaskList returns domain.ErrNotFound if the list does not exist.
	GetTaskList(ctx context.Context, id int64) (*domain.TaskList, error)

	UpdateTaskList(ctx context.Context, l *domain.TaskList) error
	DeleteTaskList(ctx context.Context, id int64) error

	// IncrementTaskListViews bumps the view counter without touching other
	// fields. Missing rows are ignored.
	IncrementTaskListViews(ctx context.Context, id int64) error

	// ListTaskLists returns the lists with the given IDs, preserving no
	// particular order. Unknown IDs are silently skipped.
	ListTaskLists(ctx context.Context, ids []int64) ([]domain.TaskList, error)

	// ListTaskListsByOwner returns all lists owned by the given user.
	ListTaskListsByOwner(ctx context.Context, ownerID int64) ([]domain.TaskList, error)
}

// TaskStore persists tasks.
type TaskStore interface {
	CreateTask(ctx context.Context, t *domain.Task) error

	// GetTask returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	UpdateTask(ctx context.Context, t *domain.Task) error
	DeleteTask(ctx context.Context, id int64) error
	IncrementTaskViews(ctx context.Context, id int64) error

	// ListTasksByList returns all tasks belonging to the given task lists.
	ListTasksByList(ctx context.Context, listIDs []int64) ([]domain.Task, error)

	// ListTasksByOwner returns all tasks owned by the given user.
	ListTasksByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
}

// RelationStore persists share grants. The (user, list) uniqueness invariant
// is enforced by the store itself so that the duplicate check and the insert
// form a single atomic unit.
type RelationStore interface {
	// CreateRelation inserts a new relation.
	// Returns domain.ErrConflict if a relation already exists for the
	// relation's (UserID, ListID) pair.
	CreateRelation(ctx context.Context, r *domain.Relation) error

	// GetRelation returns domain.ErrNotFound if the relation does not exist.
	GetRelation(ctx context.Context, id int64) (*domain.Relation, error)

	// FindRelation looks up the unique relation for a (user, list) pair.
	// Returns domain.ErrNotFound if no such relation exists.
	FindRelation(ctx context.Context, userID, listID int64) (*domain.Relation, error)

	// UpdateRelation rewrites role and linked list. Re-pointing the relation
	// at a (user, list) pair that already has a relation returns
	// domain.ErrConflict.
	UpdateRelation(ctx context.Context, r *domain.Relation) error

	DeleteRelation(ctx context.Context, id int64) error

	// ListRelationsByList returns every relation attached to the given list.
	ListRelationsByList(ctx context.Context, listID int64) ([]domain.Relation, error)

	// ListRelationsForUser returns every relation in which the user
	// participates, as subject or as grantor.
	ListRelationsForUser(ctx context.Context, userID int64) ([]domain.Relation, error)
}

// TaskCommentStore persists comments on tasks.
type TaskCommentStore interface {
	CreateTaskComment(ctx context.Context, c *domain.TaskComment) error
	GetTaskComment(ctx context.Context, id int64) (*domain.TaskComment, error)
	UpdateTaskComment(ctx context.Context, c *domain.TaskComment) error
	DeleteTaskComment(ctx context.Context, id int64) error
	IncrementTaskCommentViews(ctx context.Context, id int64) error
	ListTaskCommentsByOwner(ctx context.Context, ownerID int64) ([]domain.TaskComment, error)
	ListTaskCommentsByTask(ctx context.Context, taskIDs []int64) ([]domain.TaskComment, error)
}

// ListCommentStore persists comments on task lists.
type ListCommentStore interface {
	CreateListComment(ctx context.Context, c *domain.ListComment) error
	GetListComment(ctx context.Context, id int64) (*domain.ListComment, error)
	UpdateListComment(ctx context.Context, c *domain.ListComment) error
	DeleteListComment(ctx context.Context, id int64) error
	IncrementListCommentViews(ctx context.Context, id int64) error
	ListListCommentsByOwner(ctx context.Context, ownerID int64) ([]domain.ListComment, error)
	ListListCommentsByList(ctx context.Context, listIDs []int64) ([]domain.ListComment, error)
}

// NotificationStore persists notifications. Rows are append-only except for
// the seen flag.
type NotificationStore interface {
	// UpsertNotification inserts the notification unless a row with the same
	// (receiver, title, deep link) already exists. Returns true when a new
	// row was created. The existing row is left untouched either way.
	UpsertNotification(ctx context.Context, n *domain.Notification) (bool, error)

	// GetNotification returns domain.ErrNotFound if the notification does
	// not exist.
	GetNotification(ctx context.Context, id int64) (*domain.Notification, error)

	// ListNotificationsByReceiver returns the receiver's notifications,
	// newest first.
	ListNotificationsByReceiver(ctx context.Context, receiverID int64) ([]domain.Notification, error)

	// MarkNotificationSeen flips seen and stamps seen_on, but only when the
	// row is still unseen. Already-seen rows are left untouched.
	MarkNotificationSeen(ctx context.Context, id int64, at time.Time) error
}
