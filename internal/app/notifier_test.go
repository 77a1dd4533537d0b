package app_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/app"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

func TestNotifier_FansOutToAllRelations(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	list := e.list(t, owner.ID, "groceries")

	var receivers []*domain.User
	grants := make(map[int64]*domain.Relation)
	for _, name := range []string{"a", "b", "c"} {
		u := e.user(t, name)
		grants[u.ID] = e.relate(t, list.ID, u.ID, owner.ID, domain.RoleGuest)
		receivers = append(receivers, u)
	}

	e.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTaskList,
		ID:     list.ID,
		Title:  list.Title,
		ListID: list.ID,
	})

	for _, u := range receivers {
		notifications, err := e.store.ListNotificationsByReceiver(ctx, u.ID)
		if err != nil {
			t.Fatalf("listing notifications for %q: %v", u.Username, err)
		}
		if len(notifications) != 1 {
			t.Fatalf("user %q has %d notifications, want 1", u.Username, len(notifications))
		}
		n := notifications[0]
		if n.Seen {
			t.Errorf("notification for %q born seen", u.Username)
		}
		want := `A change has been made to the task list called "groceries"`
		if n.Title != want {
			t.Errorf("title = %q, want %q", n.Title, want)
		}
		// Each receiver's deep link is their own relation to the list.
		wantLink := domain.Ref{Kind: domain.KindRelation, ID: grants[u.ID].ID}.String()
		if n.DeepLink != wantLink {
			t.Errorf("deep link = %q, want %q", n.DeepLink, wantLink)
		}
	}

	// The list owner holds no relation and is not notified.
	ownerNotifications, err := e.store.ListNotificationsByReceiver(ctx, owner.ID)
	if err != nil {
		t.Fatalf("listing owner notifications: %v", err)
	}
	if len(ownerNotifications) != 0 {
		t.Fatalf("owner has %d notifications, want 0", len(ownerNotifications))
	}
}

func TestNotifier_RepeatedMutationDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	member := e.user(t, "member")
	list := e.list(t, owner.ID, "groceries")
	e.relate(t, list.ID, member.ID, owner.ID, domain.RoleGuest)

	m := domain.Mutation{Kind: domain.KindTaskList, ID: list.ID, Title: list.Title, ListID: list.ID}
	e.notifier.ResourceChanged(ctx, m)
	e.notifier.ResourceChanged(ctx, m)

	notifications, err := e.store.ListNotificationsByReceiver(ctx, member.ID)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("len(notifications) = %d, want 1 after repeated identical mutation", len(notifications))
	}
}

func TestNotifier_RelationMutationNotifiesOnlySubject(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	subject := e.user(t, "subject")
	bystander := e.user(t, "bystander")
	list := e.list(t, owner.ID, "groceries")
	relation := e.relate(t, list.ID, subject.ID, owner.ID, domain.RoleGuest)
	e.relate(t, list.ID, bystander.ID, owner.ID, domain.RoleGuest)

	e.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:      domain.KindRelation,
		ID:        relation.ID,
		Title:     list.Title,
		ListID:    list.ID,
		SubjectID: subject.ID,
	})

	subjectNotifications, err := e.store.ListNotificationsByReceiver(ctx, subject.ID)
	if err != nil {
		t.Fatalf("listing subject notifications: %v", err)
	}
	if len(subjectNotifications) != 1 {
		t.Fatalf("subject has %d notifications, want 1", len(subjectNotifications))
	}
	wantLink := domain.Ref{Kind: domain.KindRelation, ID: relation.ID}.String()
	if subjectNotifications[0].DeepLink != wantLink {
		t.Errorf("deep link = %q, want %q", subjectNotifications[0].DeepLink, wantLink)
	}

	bystanderNotifications, err := e.store.ListNotificationsByReceiver(ctx, bystander.ID)
	if err != nil {
		t.Fatalf("listing bystander notifications: %v", err)
	}
	if len(bystanderNotifications) != 0 {
		t.Fatalf("bystander has %d notifications, want 0 for a relation change", len(bystanderNotifications))
	}
}

// flakyNotificationStore fails upserts for one receiver and delegates the
// rest.
type flakyNotificationStore struct {
	ports.NotificationStore
	failFor int64
}

func (f *flakyNotificationStore) UpsertNotification(ctx context.Context, n *domain.Notification) (bool, error) {
	if n.ReceiverID == f.failFor {
		return false, errors.New("receiver unavailable")
	}
	return f.NotificationStore.UpsertNotification(ctx, n)
}

func TestNotifier_PerReceiverFailureIsolation(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	healthy := e.user(t, "healthy")
	broken := e.user(t, "broken")
	list := e.list(t, owner.ID, "groceries")
	e.relate(t, list.ID, healthy.ID, owner.ID, domain.RoleGuest)
	e.relate(t, list.ID, broken.ID, owner.ID, domain.RoleGuest)

	notifier := app.NewChangeNotifier(
		e.store,
		&flakyNotificationStore{NotificationStore: e.store, failFor: broken.ID},
		nil,
		2,
		slog.New(slog.DiscardHandler),
	)

	// Must not panic or propagate; the healthy receiver is still served.
	notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTaskList,
		ID:     list.ID,
		Title:  list.Title,
		ListID: list.ID,
	})

	notifications, err := e.store.ListNotificationsByReceiver(ctx, healthy.ID)
	if err != nil {
		t.Fatalf("listing notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("healthy receiver has %d notifications, want 1 despite sibling failure", len(notifications))
	}
}

// recordingSink captures webhook publishes.
type recordingSink struct {
	published []domain.Mutation
}

func (r *recordingSink) Publish(_ context.Context, m domain.Mutation) error {
	r.published = append(r.published, m)
	return nil
}

func TestNotifier_PublishesWebhook(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	owner := e.user(t, "owner")
	member := e.user(t, "member")
	list := e.list(t, owner.ID, "groceries")
	e.relate(t, list.ID, member.ID, owner.ID, domain.RoleGuest)

	sink := &recordingSink{}
	notifier := app.NewChangeNotifier(e.store, e.store, sink, 2, slog.New(slog.DiscardHandler))

	m := domain.Mutation{Kind: domain.KindTaskList, ID: list.ID, Title: list.Title, ListID: list.ID}
	notifier.ResourceChanged(ctx, m)

	if len(sink.published) != 1 {
		t.Fatalf("len(published) = %d, want 1", len(sink.published))
	}
	if sink.published[0].ID != list.ID {
		t.Errorf("published mutation ID = %d, want %d", sink.published[0].ID, list.ID)
	}
}
