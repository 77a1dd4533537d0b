package dto

import (
	"strings"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgMustBeSet    = "must be a positive id"
)

// CreateUserRequest represents the JSON body for registering a new account.
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		fields["username"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain entity.
func (r *CreateUserRequest) ToDomain() *domain.User {
	return &domain.User{
		Username:  r.Username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CreateTaskListRequest represents the JSON body for creating a task list.
type CreateTaskListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain entity. The owner is set by the
// service from the authenticated actor, never from the body.
func (r *CreateTaskListRequest) ToDomain() *domain.TaskList {
	return &domain.TaskList{
		Title:       r.Title,
		Description: r.Description,
	}
}

// UpdateTaskListRequest represents the JSON body for updating a task list.
// All fields are optional; nil means "do not change this field.".
type UpdateTaskListRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskListRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch. Nil fields keep the
// current values.
func (r *UpdateTaskListRequest) ToPatch() domain.TaskListPatch {
	return domain.TaskListPatch{
		Title:       r.Title,
		Description: r.Description,
	}
}

// CreateTaskRequest represents the JSON body for creating a task on a list.
type CreateTaskRequest struct {
	Title  string `json:"title"`
	ListID int64  `json:"list_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain entity.
func (r *CreateTaskRequest) ToDomain() *domain.Task {
	return &domain.Task{
		Title:  r.Title,
		ListID: r.ListID,
	}
}

// UpdateTaskRequest represents the JSON body for updating a task. Supplying
// list_id moves the task to another list, which requires authority over the
// target list.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	ListID    *int64  `json:"list_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.ListID != nil && *r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch. Nil fields keep the
// current values.
func (r *UpdateTaskRequest) ToPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:     r.Title,
		Completed: r.Completed,
		ListID:    r.ListID,
	}
}

// CreateRelationRequest represents the JSON body for granting a user access
// to a task list.
type CreateRelationRequest struct {
	ListID int64  `json:"list_id"`
	UserID int64  `json:"user_id"`
	Role   string `json:"role,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateRelationRequest) Validate() error {
	fields := make(map[string]string)

	if r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}
	if r.UserID <= 0 {
		fields["user_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateRelationRequest represents the JSON body for updating a share grant.
// Supplying list_id re-points the grant at another list.
type UpdateRelationRequest struct {
	ListID *int64  `json:"list_id,omitempty"`
	Role   *string `json:"role,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateRelationRequest) Validate() error {
	fields := make(map[string]string)

	if r.ListID != nil && *r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}
	if r.Role != nil && strings.TrimSpace(*r.Role) == "" {
		fields["role"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a sparse domain entity.
func (r *UpdateRelationRequest) ToDomain() *domain.Relation {
	rel := &domain.Relation{}
	if r.ListID != nil {
		rel.ListID = *r.ListID
	}
	if r.Role != nil {
		rel.Role = domain.Role(*r.Role)
	}
	return rel
}

// CreateTaskCommentRequest represents the JSON body for commenting on a task.
type CreateTaskCommentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TaskID      int64  `json:"task_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateTaskCommentRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.TaskID <= 0 {
		fields["task_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain entity.
func (r *CreateTaskCommentRequest) ToDomain() *domain.TaskComment {
	return &domain.TaskComment{
		Title:       r.Title,
		Description: r.Description,
		TaskID:      r.TaskID,
	}
}

// UpdateTaskCommentRequest represents the JSON body for editing a task
// comment. Supplying task_id moves the comment to another task.
type UpdateTaskCommentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	TaskID      *int64  `json:"task_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTaskCommentRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.TaskID != nil && *r.TaskID <= 0 {
		fields["task_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch. Nil fields keep the
// current values.
func (r *UpdateTaskCommentRequest) ToPatch() domain.TaskCommentPatch {
	return domain.TaskCommentPatch{
		Title:       r.Title,
		Description: r.Description,
		TaskID:      r.TaskID,
	}
}

// CreateListCommentRequest represents the JSON body for commenting on a list.
type CreateListCommentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ListID      int64  `json:"list_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateListCommentRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDomain converts the request to a domain entity.
func (r *CreateListCommentRequest) ToDomain() *domain.ListComment {
	return &domain.ListComment{
		Title:       r.Title,
		Description: r.Description,
		ListID:      r.ListID,
	}
}

// UpdateListCommentRequest represents the JSON body for editing a list
// comment. Supplying list_id moves the comment to another list.
type UpdateListCommentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ListID      *int64  `json:"list_id,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateListCommentRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.ListID != nil && *r.ListID <= 0 {
		fields["list_id"] = msgMustBeSet
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch. Nil fields keep the
// current values.
func (r *UpdateListCommentRequest) ToPatch() domain.ListCommentPatch {
	return domain.ListCommentPatch{
		Title:       r.Title,
		Description: r.Description,
		ListID:      r.ListID,
	}
}
