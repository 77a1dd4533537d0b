package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

func TestCommentService_CreateRequiresReadOnParent(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	mallory := e.user(t, "mallory")
	list := e.list(t, alice.ID, "sprint")
	task := e.task(t, list.ID, alice.ID, "review")

	if _, err := e.comments.CreateTaskComment(ctx, mallory.ID, &domain.TaskComment{Title: "drive-by", TaskID: task.ID}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("CreateTaskComment() by stranger = %v, want ErrForbidden", err)
	}
	if _, err := e.comments.CreateListComment(ctx, mallory.ID, &domain.ListComment{Title: "drive-by", ListID: list.ID}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("CreateListComment() by stranger = %v, want ErrForbidden", err)
	}

	// Any relation, even guest, satisfies the read requirement.
	e.relate(t, list.ID, mallory.ID, alice.ID, domain.RoleGuest)
	if _, err := e.comments.CreateTaskComment(ctx, mallory.ID, &domain.TaskComment{Title: "welcome now", TaskID: task.ID}); err != nil {
		t.Errorf("CreateTaskComment() by guest = %v, want nil", err)
	}
}

func TestCommentService_TaskCommentOnlyOwnerEdits(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	carol := e.user(t, "carol")
	list := e.list(t, alice.ID, "sprint")
	task := e.task(t, list.ID, alice.ID, "review")
	e.relate(t, list.ID, carol.ID, alice.ID, domain.RoleGuest)

	comment, err := e.comments.CreateTaskComment(ctx, carol.ID, &domain.TaskComment{Title: "first pass", TaskID: task.ID})
	if err != nil {
		t.Fatalf("CreateTaskComment() error: %v", err)
	}

	// The list owner cannot touch a guest's task comment.
	if _, err := e.comments.UpdateTaskComment(ctx, alice.ID, comment.ID, domain.TaskCommentPatch{Title: ptr("moderated")}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("UpdateTaskComment() by list owner = %v, want ErrForbidden", err)
	}
	if err := e.comments.DeleteTaskComment(ctx, alice.ID, comment.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("DeleteTaskComment() by list owner = %v, want ErrForbidden", err)
	}

	updated, err := e.comments.UpdateTaskComment(ctx, carol.ID, comment.ID, domain.TaskCommentPatch{Title: ptr("second pass")})
	if err != nil {
		t.Fatalf("UpdateTaskComment() by author = %v", err)
	}
	if updated.Title != "second pass" {
		t.Errorf("Title = %q, want %q", updated.Title, "second pass")
	}
}

func TestCommentService_ListCommentModeratedByAdmins(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	carol := e.user(t, "carol")
	dave := e.user(t, "dave")
	list := e.list(t, alice.ID, "announcements")
	e.relate(t, list.ID, carol.ID, alice.ID, domain.RoleGuest)
	e.relate(t, list.ID, dave.ID, alice.ID, domain.RoleGuest)

	comment, err := e.comments.CreateListComment(ctx, carol.ID, &domain.ListComment{Title: "question", ListID: list.ID})
	if err != nil {
		t.Fatalf("CreateListComment() error: %v", err)
	}

	// Another guest cannot moderate, the list owner can.
	if _, err := e.comments.UpdateListComment(ctx, dave.ID, comment.ID, domain.ListCommentPatch{Title: ptr("defaced")}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("UpdateListComment() by fellow guest = %v, want ErrForbidden", err)
	}
	if _, err := e.comments.UpdateListComment(ctx, alice.ID, comment.ID, domain.ListCommentPatch{Title: ptr("answered")}); err != nil {
		t.Errorf("UpdateListComment() by list owner = %v, want nil", err)
	}
	if err := e.comments.DeleteListComment(ctx, alice.ID, comment.ID); err != nil {
		t.Errorf("DeleteListComment() by list owner = %v, want nil", err)
	}
}

func TestCommentService_GetBumpsViews(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	list := e.list(t, alice.ID, "sprint")
	task := e.task(t, list.ID, alice.ID, "review")

	comment, err := e.comments.CreateTaskComment(ctx, alice.ID, &domain.TaskComment{Title: "note", TaskID: task.ID})
	if err != nil {
		t.Fatalf("CreateTaskComment() error: %v", err)
	}

	got, err := e.comments.GetTaskComment(ctx, alice.ID, comment.ID)
	if err != nil {
		t.Fatalf("GetTaskComment() error: %v", err)
	}
	if got.Views != 1 {
		t.Errorf("Views = %d, want 1", got.Views)
	}
}

func TestCommentService_NotifiesListRelations(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	carol := e.user(t, "carol")
	list := e.list(t, alice.ID, "sprint")
	task := e.task(t, list.ID, alice.ID, "review")
	grant := e.relate(t, list.ID, carol.ID, alice.ID, domain.RoleGuest)

	if _, err := e.comments.CreateTaskComment(ctx, alice.ID, &domain.TaskComment{Title: "heads up", TaskID: task.ID}); err != nil {
		t.Fatalf("CreateTaskComment() error: %v", err)
	}

	ns, err := e.store.ListNotificationsByReceiver(ctx, carol.ID)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(ns) != 1 {
		t.Fatalf("len(notifications) = %d, want 1", len(ns))
	}
	wantLink := domain.Ref{Kind: domain.KindRelation, ID: grant.ID}.String()
	if ns[0].DeepLink != wantLink {
		t.Errorf("DeepLink = %q, want receiver's relation %q", ns[0].DeepLink, wantLink)
	}
}
