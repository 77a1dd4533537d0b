package domain

import (
	"strings"
	"time"
)

// Task is a single item inside exactly one TaskList. Its owner may differ
// from the list owner: any list admin can create tasks on a shared list.
type Task struct {
	ID        int64
	Title     string
	Completed bool
	ListID    int64
	OwnerID   int64
	Views     int64
	CreatedAt time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = MsgRequired
	}
	if t.ListID <= 0 {
		fields["list_id"] = MsgRequired
	}
	if t.OwnerID <= 0 {
		fields["owner_id"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TaskPatch is a partial update. Nil fields keep the current value. A set
// ListID re-links the task; callers authorize that against the target list
// before applying.
type TaskPatch struct {
	Title     *string
	Completed *bool
	ListID    *int64
}

// Apply copies the set fields onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.ListID != nil {
		t.ListID = *p.ListID
	}
}
