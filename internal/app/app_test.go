package app_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/taskmaster/internal/app"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/platform/config"
)

func ptr[T any](v T) *T { return &v }

// env wires the full application layer over an in-memory store, so service
// tests exercise the same SQL-enforced invariants production runs against.
type env struct {
	store    *sqlite.Store
	policy   *app.Policy
	notifier *app.ChangeNotifier

	lists         *app.ListService
	tasks         *app.TaskService
	relations     *app.RelationService
	comments      *app.CommentService
	notifications *app.NotificationService
	users         *app.UserService
	search        *app.SearchService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := sqlite.Open(config.StoreConfig{Path: ":memory:", BusyTimeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	logger := slog.New(slog.DiscardHandler)
	policy := app.NewPolicy(s, s, s, s, s, logger)
	notifier := app.NewChangeNotifier(s, s, nil, 4, logger)

	return &env{
		store:         s,
		policy:        policy,
		notifier:      notifier,
		lists:         app.NewListService(s, policy, notifier, logger),
		tasks:         app.NewTaskService(s, policy, notifier, logger),
		relations:     app.NewRelationService(s, s, policy, notifier, logger),
		comments:      app.NewCommentService(s, s, s, policy, notifier, logger),
		notifications: app.NewNotificationService(s, logger),
		users:         app.NewUserService(s, logger),
		search:        app.NewSearchService(policy, s, s, s, logger),
	}
}

func (e *env) user(t *testing.T, username string) *domain.User {
	t.Helper()

	u := &domain.User{Username: username}
	if err := e.store.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("creating user %q: %v", username, err)
	}
	return u
}

func (e *env) list(t *testing.T, ownerID int64, title string) *domain.TaskList {
	t.Helper()

	l := &domain.TaskList{Title: title, OwnerID: ownerID}
	if err := e.store.CreateTaskList(context.Background(), l); err != nil {
		t.Fatalf("creating list %q: %v", title, err)
	}
	return l
}

func (e *env) task(t *testing.T, listID, ownerID int64, title string) *domain.Task {
	t.Helper()

	task := &domain.Task{Title: title, ListID: listID, OwnerID: ownerID}
	if err := e.store.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("creating task %q: %v", title, err)
	}
	return task
}

func (e *env) relate(t *testing.T, listID, userID, ownerID int64, role domain.Role) *domain.Relation {
	t.Helper()

	r := &domain.Relation{ListID: listID, UserID: userID, OwnerID: ownerID, Role: role}
	if err := e.store.CreateRelation(context.Background(), r); err != nil {
		t.Fatalf("creating relation: %v", err)
	}
	return r
}
