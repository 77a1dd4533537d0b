package domain

import (
	"strings"
	"time"
)

// TaskList is a named collection of tasks owned by one user and shareable
// with others through relations. The owner carries implicit full authority;
// everyone else's rights are derived from their Relation role.
type TaskList struct {
	ID          int64
	Title       string
	Description string
	OwnerID     int64
	Views       int64
	CreatedAt   time.Time
}

// Validate checks business rules for the TaskList entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (l *TaskList) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(l.Title) == "" {
		fields["title"] = MsgRequired
	}
	if l.OwnerID <= 0 {
		fields["owner_id"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TaskListPatch is a partial update. Nil fields keep the current value.
type TaskListPatch struct {
	Title       *string
	Description *string
}

// Apply copies the set fields onto l.
func (p TaskListPatch) Apply(l *TaskList) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
}
