package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService. Every operation authorizes
// through the policy engine before touching the store, and every successful
// create or update is handed to the change notifier.
type ListService struct {
	lists    ports.TaskListStore
	policy   ports.Authorizer
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewListService creates a ListService.
func NewListService(lists ports.TaskListStore, policy ports.Authorizer, notifier ports.Notifier, logger *slog.Logger) *ListService {
	return &ListService{
		lists:    lists,
		policy:   policy,
		notifier: notifier,
		logger:   logger,
	}
}

// ListTaskLists returns the lists the actor owns or is related to.
func (s *ListService) ListTaskLists(ctx context.Context, actorID int64) ([]domain.TaskList, error) {
	lists, err := s.policy.VisibleTaskLists(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task lists",
			slog.String("operation", "ListTaskLists"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return lists, nil
}

// GetTaskList returns a single list and bumps its view counter.
func (s *ListService) GetTaskList(ctx context.Context, actorID, id int64) (*domain.TaskList, error) {
	ref := domain.Ref{Kind: domain.KindTaskList, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpRead); err != nil {
		return nil, err
	}

	list, err := s.lists.GetTaskList(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.lists.IncrementTaskListViews(ctx, id); err != nil {
		// View counting is best effort; the read itself already succeeded.
		s.logger.WarnContext(ctx, "failed to bump view counter",
			slog.String("resource", ref.String()),
			slog.Any("error", err),
		)
	} else {
		list.Views++
	}

	return list, nil
}

// CreateTaskList creates a list owned by the actor.
func (s *ListService) CreateTaskList(ctx context.Context, actorID int64, l *domain.TaskList) (*domain.TaskList, error) {
	s.logger.InfoContext(ctx, "creating task list",
		slog.Int64("actor_id", actorID),
		slog.String("title", l.Title),
	)

	l.OwnerID = actorID
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.lists.CreateTaskList(ctx, l); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task list",
			slog.String("operation", "CreateTaskList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTaskList,
		ID:     l.ID,
		Title:  l.Title,
		ListID: l.ID,
	})

	return l, nil
}

// UpdateTaskList applies the set patch fields; unset fields keep their
// stored values. Owner or admin only.
func (s *ListService) UpdateTaskList(ctx context.Context, actorID, id int64, p domain.TaskListPatch) (*domain.TaskList, error) {
	ref := domain.Ref{Kind: domain.KindTaskList, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); err != nil {
		return nil, err
	}

	existing, err := s.lists.GetTaskList(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.lists.UpdateTaskList(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task list",
			slog.String("operation", "UpdateTaskList"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTaskList,
		ID:     existing.ID,
		Title:  existing.Title,
		ListID: existing.ID,
	})

	return existing, nil
}

// DeleteTaskList deletes the list; its tasks, relations, and comments go
// with it.
func (s *ListService) DeleteTaskList(ctx context.Context, actorID, id int64) error {
	ref := domain.Ref{Kind: domain.KindTaskList, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpDelete); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting task list",
		slog.Int64("actor_id", actorID),
		slog.Int64("id", id),
	)

	return s.lists.DeleteTaskList(ctx, id)
}
