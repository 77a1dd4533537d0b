package domain

import "fmt"

// Kind identifies one of the entity kinds the policy engine and change
// notifier reason about. It is an explicit tagged union: callers switch on
// the variant rather than inspecting runtime types.
type Kind string

const (
	KindTaskList    Kind = "task-lists"
	KindTask        Kind = "tasks"
	KindRelation    Kind = "relations"
	KindTaskComment Kind = "task-comments"
	KindListComment Kind = "list-comments"
)

// IsValid reports whether the kind is one of the known variants.
func (k Kind) IsValid() bool {
	switch k {
	case KindTaskList, KindTask, KindRelation, KindTaskComment, KindListComment:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used in notification titles.
func (k Kind) Label() string {
	switch k {
	case KindTaskList:
		return "task list"
	case KindTask:
		return "task"
	case KindRelation:
		return "relation"
	case KindTaskComment:
		return "task comment"
	case KindListComment:
		return "list comment"
	default:
		return string(k)
	}
}

// Ref is a canonical reference to a single resource, usable as a deep link
// in notifications and as the policy engine's resource handle.
type Ref struct {
	Kind Kind
	ID   int64
}

// String renders the reference in "kind/id" form (e.g. "relations/42").
func (r Ref) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}

// Operation is the intent a user declares against a resource. Re-link is the
// special write that changes which parent a child record belongs to; it is
// authorized against the target parent, not the current one.
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
	OpRelink Operation = "relink"
)
