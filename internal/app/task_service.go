package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService.
type TaskService struct {
	tasks    ports.TaskStore
	policy   ports.Authorizer
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks ports.TaskStore, policy ports.Authorizer, notifier ports.Notifier, logger *slog.Logger) *TaskService {
	return &TaskService{
		tasks:    tasks,
		policy:   policy,
		notifier: notifier,
		logger:   logger,
	}
}

// ListTasks returns the tasks the actor owns.
func (s *TaskService) ListTasks(ctx context.Context, actorID int64) ([]domain.Task, error) {
	tasks, err := s.tasks.ListTasksByOwner(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "ListTasks"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a single task and bumps its view counter.
func (s *TaskService) GetTask(ctx context.Context, actorID, id int64) (*domain.Task, error) {
	ref := domain.Ref{Kind: domain.KindTask, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpRead); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.IncrementTaskViews(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to bump view counter",
			slog.String("resource", ref.String()),
			slog.Any("error", err),
		)
	} else {
		task.Views++
	}

	return task, nil
}

// CreateTask creates a task on the given list. Adding work to a list is an
// admin-level change to the list itself.
func (s *TaskService) CreateTask(ctx context.Context, actorID int64, t *domain.Task) (*domain.Task, error) {
	t.OwnerID = actorID
	if err := t.Validate(); err != nil {
		return nil, err
	}

	listRef := domain.Ref{Kind: domain.KindTaskList, ID: t.ListID}
	if err := s.policy.Authorize(ctx, actorID, listRef, domain.OpWrite); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating task",
		slog.Int64("actor_id", actorID),
		slog.Int64("list_id", t.ListID),
		slog.String("title", t.Title),
	)

	if err := s.tasks.CreateTask(ctx, t); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTask,
		ID:     t.ID,
		Title:  t.Title,
		ListID: t.ListID,
	})

	return t, nil
}

// UpdateTask applies the set patch fields; unset fields keep their stored
// values. A set ListID is a re-link and is authorized against the target
// list, not the current one.
func (s *TaskService) UpdateTask(ctx context.Context, actorID, id int64, p domain.TaskPatch) (*domain.Task, error) {
	ref := domain.Ref{Kind: domain.KindTask, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); err != nil {
		return nil, err
	}

	existing, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.ListID != nil && *p.ListID != existing.ListID {
		if err := s.policy.AuthorizeRelink(ctx, actorID, ref, *p.ListID); err != nil {
			return nil, err
		}
	}

	p.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.UpdateTask(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTask,
		ID:     existing.ID,
		Title:  existing.Title,
		ListID: existing.ListID,
	})

	return existing, nil
}

// DeleteTask removes the task and its comments.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, id int64) error {
	ref := domain.Ref{Kind: domain.KindTask, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpDelete); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting task",
		slog.Int64("actor_id", actorID),
		slog.Int64("id", id),
	)

	return s.tasks.DeleteTask(ctx, id)
}
