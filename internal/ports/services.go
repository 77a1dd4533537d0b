package ports

import (
	"context"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

// Authorizer is the access policy engine's port. A nil return means allow;
// domain.ErrForbidden means deny. The engine is total and fail-closed:
// lookup failures (dangling parents, missing relations) resolve to deny,
// never to an internal error.
type Authorizer interface {
	// Authorize decides whether the actor may perform op on the referenced
	// resource.
	Authorize(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error

	// AuthorizeRelink decides whether the actor may re-point the referenced
	// child resource at a new parent. targetID is the new parent: a task
	// list for tasks, list comments, and relations; a task for task
	// comments. Authority is evaluated against the target, not the current
	// parent, so a child cannot be laundered into a list the actor does not
	// control.
	AuthorizeRelink(ctx context.Context, actorID int64, ref domain.Ref, targetID int64) error

	// VisibleTaskLists returns every list the user owns or holds a relation
	// to. The search layer derives its entire search space from this so the
	// listing and detail endpoints cannot drift apart.
	VisibleTaskLists(ctx context.Context, userID int64) ([]domain.TaskList, error)
}

// Notifier is the change notifier's port. ResourceChanged is invoked
// synchronously immediately after every successful create or update of a
// notifiable resource. Implementations must never propagate failures to the
// caller: the triggering mutation is already committed.
type Notifier interface {
	ResourceChanged(ctx context.Context, m domain.Mutation)
}

// WebhookSink delivers notification events to an external endpoint.
// Delivery is best-effort; callers log and drop errors.
type WebhookSink interface {
	Publish(ctx context.Context, m domain.Mutation) error
}

// ListService defines the service port for task list operations.
type ListService interface {
	// ListTaskLists returns the lists visible to the actor.
	ListTaskLists(ctx context.Context, actorID int64) ([]domain.TaskList, error)

	// GetTaskList returns a single list, bumping its view counter.
	// Returns domain.ErrForbidden if the actor may not read it.
	GetTaskList(ctx context.Context, actorID, id int64) (*domain.TaskList, error)

	// CreateTaskList creates a list owned by the actor.
	CreateTaskList(ctx context.Context, actorID int64, l *domain.TaskList) (*domain.TaskList, error)

	// UpdateTaskList applies the set patch fields. Owner or admin only.
	UpdateTaskList(ctx context.Context, actorID, id int64, p domain.TaskListPatch) (*domain.TaskList, error)

	// DeleteTaskList deletes the list and cascades to its children.
	DeleteTaskList(ctx context.Context, actorID, id int64) error
}

// TaskService defines the service port for task operations.
type TaskService interface {
	// ListTasks returns the tasks owned by the actor.
	ListTasks(ctx context.Context, actorID int64) ([]domain.Task, error)

	// GetTask returns a single task, bumping its view counter.
	GetTask(ctx context.Context, actorID, id int64) (*domain.Task, error)

	// CreateTask creates a task on the given list. The actor must own or
	// administer the list.
	CreateTask(ctx context.Context, actorID int64, t *domain.Task) (*domain.Task, error)

	// UpdateTask applies the set patch fields. A set ListID is a re-link
	// and is authorized against the target list.
	UpdateTask(ctx context.Context, actorID, id int64, p domain.TaskPatch) (*domain.Task, error)

	DeleteTask(ctx context.Context, actorID, id int64) error
}

// RelationService defines the service port for share-grant operations
// (the relation manager).
type RelationService interface {
	// ListRelations returns the relations the actor participates in.
	ListRelations(ctx context.Context, actorID int64) ([]domain.Relation, error)

	GetRelation(ctx context.Context, actorID, id int64) (*domain.Relation, error)

	// CreateRelation grants subjectID access to listID with the given role
	// (default "guest" when empty), owned by the actor.
	// Returns domain.ErrConflict if the (subject, list) pair already has a
	// relation, domain.ErrForbidden if the actor is neither the list owner
	// nor an admin of it.
	CreateRelation(ctx context.Context, actorID, listID, subjectID int64, role domain.Role) (*domain.Relation, error)

	// UpdateRelation updates role and/or linked list per policy rule for
	// relations; re-pointing at a new list requires authority over the new
	// list.
	UpdateRelation(ctx context.Context, actorID, id int64, r *domain.Relation) (*domain.Relation, error)

	DeleteRelation(ctx context.Context, actorID, id int64) error
}

// CommentService defines the service port for task and list comments.
type CommentService interface {
	ListTaskComments(ctx context.Context, actorID int64) ([]domain.TaskComment, error)
	GetTaskComment(ctx context.Context, actorID, id int64) (*domain.TaskComment, error)
	CreateTaskComment(ctx context.Context, actorID int64, c *domain.TaskComment) (*domain.TaskComment, error)
	UpdateTaskComment(ctx context.Context, actorID, id int64, p domain.TaskCommentPatch) (*domain.TaskComment, error)
	DeleteTaskComment(ctx context.Context, actorID, id int64) error

	ListListComments(ctx context.Context, actorID int64) ([]domain.ListComment, error)
	GetListComment(ctx context.Context, actorID, id int64) (*domain.ListComment, error)
	CreateListComment(ctx context.Context, actorID int64, c *domain.ListComment) (*domain.ListComment, error)
	UpdateListComment(ctx context.Context, actorID, id int64, p domain.ListCommentPatch) (*domain.ListComment, error)
	DeleteListComment(ctx context.Context, actorID, id int64) error
}

// NotificationService defines the service port for reading notifications.
// Retrieval is the only mutation path: the first read of a notification by
// its receiver flips seen and stamps seen_on, exactly once.
type NotificationService interface {
	// ListNotifications returns the actor's notifications newest first,
	// marking each previously unseen one as seen.
	ListNotifications(ctx context.Context, actorID int64) ([]domain.Notification, error)

	// GetNotification returns one of the actor's notifications, marking it
	// seen on first retrieval. Notifications addressed to other users
	// resolve to domain.ErrNotFound.
	GetNotification(ctx context.Context, actorID, id int64) (*domain.Notification, error)
}

// UserService defines the service port for account registration.
type UserService interface {
	// CreateUser registers a new account.
	// Returns domain.ErrConflict if the username is taken.
	CreateUser(ctx context.Context, u *domain.User) (*domain.User, error)
}

// SearchOrder is the accepted ordering of search results.
type SearchOrder string

const (
	OrderViews     SearchOrder = "views"
	OrderViewsDesc SearchOrder = "-views"
	OrderDate      SearchOrder = "date"
	OrderDateDesc  SearchOrder = "-date"
)

// SearchQuery carries the parameters of a multi-model search request.
// Page numbers start at 1; PageSize 0 means the service default.
type SearchQuery struct {
	Term     string
	Order    SearchOrder
	Page     int
	PageSize int
}

// SearchHit is a single matching resource, referenced by its canonical ref.
type SearchHit struct {
	Ref   domain.Ref
	Title string
}

// SearchResult is one page of search hits plus paging bookkeeping.
// Count is the total number of hits before paging; Page and PageSize echo
// the effective (clamped) values used.
type SearchResult struct {
	Hits     []SearchHit
	Count    int
	Page     int
	PageSize int
}

// SearchService searches every resource visible to the user. Visibility is
// derived from Authorizer.VisibleTaskLists so detail and listing authorization
// cannot diverge.
type SearchService interface {
	Search(ctx context.Context, actorID int64, q SearchQuery) (*SearchResult, error)
}
