package dto

import (
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user to its API representation.
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

// TaskListResponse represents a task list in API responses.
type TaskListResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	OwnerID     int64     `json:"owner_id"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTaskListResponse converts a domain task list to its API representation.
func NewTaskListResponse(l *domain.TaskList) TaskListResponse {
	return TaskListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		OwnerID:     l.OwnerID,
		Views:       l.Views,
		CreatedAt:   l.CreatedAt,
	}
}

// NewTaskListListResponse converts a slice of domain task lists.
func NewTaskListListResponse(lists []domain.TaskList) []TaskListResponse {
	out := make([]TaskListResponse, 0, len(lists))
	for i := range lists {
		out = append(out, NewTaskListResponse(&lists[i]))
	}
	return out
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	ListID    int64     `json:"list_id"`
	OwnerID   int64     `json:"owner_id"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTaskResponse converts a domain task to its API representation.
func NewTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		ListID:    t.ListID,
		OwnerID:   t.OwnerID,
		Views:     t.Views,
		CreatedAt: t.CreatedAt,
	}
}

// NewTaskListResponseSlice converts a slice of domain tasks.
func NewTaskListResponseSlice(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

// RelationResponse represents a share grant in API responses.
type RelationResponse struct {
	ID        int64     `json:"id"`
	ListID    int64     `json:"list_id"`
	UserID    int64     `json:"user_id"`
	OwnerID   int64     `json:"owner_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRelationResponse converts a domain relation to its API representation.
func NewRelationResponse(r *domain.Relation) RelationResponse {
	return RelationResponse{
		ID:        r.ID,
		ListID:    r.ListID,
		UserID:    r.UserID,
		OwnerID:   r.OwnerID,
		Role:      string(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

// NewRelationListResponse converts a slice of domain relations.
func NewRelationListResponse(relations []domain.Relation) []RelationResponse {
	out := make([]RelationResponse, 0, len(relations))
	for i := range relations {
		out = append(out, NewRelationResponse(&relations[i]))
	}
	return out
}

// TaskCommentResponse represents a task comment in API responses.
type TaskCommentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TaskID      int64     `json:"task_id"`
	OwnerID     int64     `json:"owner_id"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTaskCommentResponse converts a domain task comment.
func NewTaskCommentResponse(c *domain.TaskComment) TaskCommentResponse {
	return TaskCommentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		TaskID:      c.TaskID,
		OwnerID:     c.OwnerID,
		Views:       c.Views,
		CreatedAt:   c.CreatedAt,
	}
}

// NewTaskCommentListResponse converts a slice of domain task comments.
func NewTaskCommentListResponse(comments []domain.TaskComment) []TaskCommentResponse {
	out := make([]TaskCommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewTaskCommentResponse(&comments[i]))
	}
	return out
}

// ListCommentResponse represents a list comment in API responses.
type ListCommentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ListID      int64     `json:"list_id"`
	OwnerID     int64     `json:"owner_id"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewListCommentResponse converts a domain list comment.
func NewListCommentResponse(c *domain.ListComment) ListCommentResponse {
	return ListCommentResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ListID:      c.ListID,
		OwnerID:     c.OwnerID,
		Views:       c.Views,
		CreatedAt:   c.CreatedAt,
	}
}

// NewListCommentListResponse converts a slice of domain list comments.
func NewListCommentListResponse(comments []domain.ListComment) []ListCommentResponse {
	out := make([]ListCommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewListCommentResponse(&comments[i]))
	}
	return out
}

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Seen      bool       `json:"seen"`
	SeenOn    *time.Time `json:"seen_on,omitempty"`
	DeepLink  string     `json:"deep_link"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewNotificationResponse converts a domain notification. The receiver is
// implicit: notifications are only ever served to their own receiver.
func NewNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Seen:      n.Seen,
		SeenOn:    n.SeenOn,
		DeepLink:  n.DeepLink,
		CreatedAt: n.CreatedAt,
	}
}

// NewNotificationListResponse converts a slice of domain notifications.
func NewNotificationListResponse(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, NewNotificationResponse(&notifications[i]))
	}
	return out
}

// SearchHitResponse is one search result entry, carrying the canonical
// "kind/id" reference usable as a deep link.
type SearchHitResponse struct {
	Ref   string `json:"ref"`
	Kind  string `json:"kind"`
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Hits     []SearchHitResponse `json:"hits"`
	Count    int                 `json:"count"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// NewSearchResponse converts a ports search result to its API representation.
func NewSearchResponse(r *ports.SearchResult) SearchResponse {
	hits := make([]SearchHitResponse, 0, len(r.Hits))
	for _, h := range r.Hits {
		hits = append(hits, SearchHitResponse{
			Ref:   h.Ref.String(),
			Kind:  string(h.Ref.Kind),
			ID:    h.Ref.ID,
			Title: h.Title,
		})
	}
	return SearchResponse{
		Hits:     hits,
		Count:    r.Count,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
