package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

func TestRelationService_CreateRelation(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	subject := e.user(t, "subject")
	list := e.list(t, owner.ID, "groceries")

	relation, err := e.relations.CreateRelation(ctx, owner.ID, list.ID, subject.ID, "")
	if err != nil {
		t.Fatalf("CreateRelation() error: %v", err)
	}
	if relation.Role != domain.RoleGuest {
		t.Errorf("Role = %q, want default %q", relation.Role, domain.RoleGuest)
	}
	if relation.OwnerID != owner.ID {
		t.Errorf("OwnerID = %d, want actor %d", relation.OwnerID, owner.ID)
	}
	if relation.UserID != subject.ID {
		t.Errorf("UserID = %d, want subject %d", relation.UserID, subject.ID)
	}

	// The subject is notified about their new grant.
	notifications, err := e.store.ListNotificationsByReceiver(ctx, subject.ID)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("subject has %d notifications, want 1", len(notifications))
	}
}

func TestRelationService_CreateRelation_Duplicate(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	subject := e.user(t, "subject")
	list := e.list(t, owner.ID, "groceries")

	if _, err := e.relations.CreateRelation(ctx, owner.ID, list.ID, subject.ID, domain.RoleGuest); err != nil {
		t.Fatalf("CreateRelation() error: %v", err)
	}

	_, err := e.relations.CreateRelation(ctx, owner.ID, list.ID, subject.ID, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("CreateRelation(duplicate) error = %v, want ErrConflict", err)
	}
}

func TestRelationService_CreateRelation_Unauthorized(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	guest := e.user(t, "guest")
	invitee := e.user(t, "invitee")
	list := e.list(t, owner.ID, "groceries")
	e.relate(t, list.ID, guest.ID, owner.ID, domain.RoleGuest)

	// A plain member cannot grant access.
	_, err := e.relations.CreateRelation(ctx, guest.ID, list.ID, invitee.ID, domain.RoleGuest)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CreateRelation(by guest) error = %v, want ErrForbidden", err)
	}

	// The invited user cannot create their own grant either.
	_, err = e.relations.CreateRelation(ctx, invitee.ID, list.ID, invitee.ID, domain.RoleGuest)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("CreateRelation(self-invite) error = %v, want ErrForbidden", err)
	}

	// An admin relation holder can.
	admin := e.user(t, "admin")
	e.relate(t, list.ID, admin.ID, owner.ID, domain.RoleAdmin)
	if _, err := e.relations.CreateRelation(ctx, admin.ID, list.ID, invitee.ID, domain.RoleGuest); err != nil {
		t.Fatalf("CreateRelation(by admin) error: %v", err)
	}
}

func TestRelationService_UpdateRelation_RelinkNeedsTargetAuthority(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	other := e.user(t, "other")
	subject := e.user(t, "subject")
	list := e.list(t, owner.ID, "groceries")
	foreignList := e.list(t, other.ID, "theirs")
	relation := e.relate(t, list.ID, subject.ID, owner.ID, domain.RoleGuest)

	// The grantor administers the source list but not the target.
	_, err := e.relations.UpdateRelation(ctx, owner.ID, relation.ID,
		&domain.Relation{ListID: foreignList.ID})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("UpdateRelation(relink to foreign list) error = %v, want ErrForbidden", err)
	}

	// Role-only changes by the grantor go through.
	updated, err := e.relations.UpdateRelation(ctx, owner.ID, relation.ID,
		&domain.Relation{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("UpdateRelation(role) error: %v", err)
	}
	if !updated.Role.IsAdmin() {
		t.Errorf("Role = %q, want admin", updated.Role)
	}
}

func TestRelationService_DeleteRelation(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	subject := e.user(t, "subject")
	list := e.list(t, owner.ID, "groceries")
	relation := e.relate(t, list.ID, subject.ID, owner.ID, domain.RoleGuest)

	// The subject of a guest grant cannot revoke it.
	if err := e.relations.DeleteRelation(ctx, subject.ID, relation.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("DeleteRelation(by subject) error = %v, want ErrForbidden", err)
	}

	if err := e.relations.DeleteRelation(ctx, owner.ID, relation.ID); err != nil {
		t.Fatalf("DeleteRelation(by grantor) error: %v", err)
	}
	if _, err := e.store.GetRelation(ctx, relation.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetRelation(deleted) error = %v, want ErrNotFound", err)
	}
}
