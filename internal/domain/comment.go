package domain

import (
	"strings"
	"time"
)

// TaskComment is a comment attached to exactly one Task. Once posted it is
// self-administered: only its own owner may edit or delete it, regardless of
// list admin rights.
type TaskComment struct {
	ID          int64
	Title       string
	Description string
	TaskID      int64
	OwnerID     int64
	Views       int64
	CreatedAt   time.Time
}

// Validate checks business rules for the TaskComment entity.
func (c *TaskComment) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = MsgRequired
	}
	if c.TaskID <= 0 {
		fields["task_id"] = MsgRequired
	}
	if c.OwnerID <= 0 {
		fields["owner_id"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// TaskCommentPatch is a partial update. Nil fields keep the current value. A
// set TaskID re-links the comment; callers authorize that against the target
// task's list before applying.
type TaskCommentPatch struct {
	Title       *string
	Description *string
	TaskID      *int64
}

// Apply copies the set fields onto c.
func (p TaskCommentPatch) Apply(c *TaskComment) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.TaskID != nil {
		c.TaskID = *p.TaskID
	}
}

// ListComment is a comment attached to exactly one TaskList. Unlike
// TaskComment it is moderated: a list admin may edit or delete it in
// addition to the comment owner.
type ListComment struct {
	ID          int64
	Title       string
	Description string
	ListID      int64
	OwnerID     int64
	Views       int64
	CreatedAt   time.Time
}

// Validate checks business rules for the ListComment entity.
func (c *ListComment) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = MsgRequired
	}
	if c.ListID <= 0 {
		fields["list_id"] = MsgRequired
	}
	if c.OwnerID <= 0 {
		fields["owner_id"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ListCommentPatch is a partial update. Nil fields keep the current value.
type ListCommentPatch struct {
	Title       *string
	Description *string
	ListID      *int64
}

// Apply copies the set fields onto c.
func (p ListCommentPatch) Apply(c *ListComment) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ListID != nil {
		c.ListID = *p.ListID
	}
}
