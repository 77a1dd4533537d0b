package domain

import (
	"strings"
	"time"
)

// RoleAdmin is the only role value that grants elevated authority.
// Comparison is case-insensitive; every other non-empty role is a plain
// member with read access only.
const RoleAdmin = "admin"

// RoleGuest is the default role assigned when a relation is created
// without an explicit role.
const RoleGuest = "guest"

// Role is a relation's free-form role string. The two-tier authority model
// recognizes exactly one elevated value ("admin", any case); the rest are
// equivalent member roles.
type Role string

// IsAdmin reports whether the role grants admin authority.
func (r Role) IsAdmin() bool {
	return strings.EqualFold(string(r), RoleAdmin)
}

// Relation is a share grant linking one user (the subject) to one TaskList
// with a role. OwnerID records the user who created the grant, normally the
// list owner or an existing admin, and is distinct from UserID.
//
// Invariant: at most one Relation exists per (UserID, ListID) pair. The
// entity store enforces this with a unique constraint so the duplicate check
// is atomic with insertion.
type Relation struct {
	ID        int64
	ListID    int64
	UserID    int64
	OwnerID   int64
	Role      Role
	CreatedAt time.Time
}

// Validate checks business rules for the Relation entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (r *Relation) Validate() error {
	fields := make(map[string]string)

	if r.ListID <= 0 {
		fields["list_id"] = MsgRequired
	}
	if r.UserID <= 0 {
		fields["user_id"] = MsgRequired
	}
	if r.OwnerID <= 0 {
		fields["owner_id"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
