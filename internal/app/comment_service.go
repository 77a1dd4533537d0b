package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that CommentService implements ports.CommentService.
var _ ports.CommentService = (*CommentService)(nil)

// CommentService implements ports.CommentService for both comment kinds.
// Task comments are self-administered once posted; list comments are
// additionally moderated by list admins. Both distinctions live in the
// policy engine, not here.
type CommentService struct {
	taskComments ports.TaskCommentStore
	listComments ports.ListCommentStore
	tasks        ports.TaskStore
	policy       ports.Authorizer
	notifier     ports.Notifier
	logger       *slog.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(
	taskComments ports.TaskCommentStore,
	listComments ports.ListCommentStore,
	tasks ports.TaskStore,
	policy ports.Authorizer,
	notifier ports.Notifier,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		taskComments: taskComments,
		listComments: listComments,
		tasks:        tasks,
		policy:       policy,
		notifier:     notifier,
		logger:       logger,
	}
}

// ListTaskComments returns the task comments the actor owns.
func (s *CommentService) ListTaskComments(ctx context.Context, actorID int64) ([]domain.TaskComment, error) {
	comments, err := s.taskComments.ListTaskCommentsByOwner(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list task comments",
			slog.String("operation", "ListTaskComments"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return comments, nil
}

// GetTaskComment returns a single task comment and bumps its view counter.
func (s *CommentService) GetTaskComment(ctx context.Context, actorID, id int64) (*domain.TaskComment, error) {
	ref := domain.Ref{Kind: domain.KindTaskComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpRead); err != nil {
		return nil, err
	}

	comment, err := s.taskComments.GetTaskComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.taskComments.IncrementTaskCommentViews(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to bump view counter",
			slog.String("resource", ref.String()),
			slog.Any("error", err),
		)
	} else {
		comment.Views++
	}

	return comment, nil
}

// CreateTaskComment posts a comment on a task the actor can read.
func (s *CommentService) CreateTaskComment(ctx context.Context, actorID int64, c *domain.TaskComment) (*domain.TaskComment, error) {
	c.OwnerID = actorID
	if err := c.Validate(); err != nil {
		return nil, err
	}

	taskRef := domain.Ref{Kind: domain.KindTask, ID: c.TaskID}
	if err := s.policy.Authorize(ctx, actorID, taskRef, domain.OpRead); err != nil {
		return nil, err
	}

	if err := s.taskComments.CreateTaskComment(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task comment",
			slog.String("operation", "CreateTaskComment"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifyTaskComment(ctx, c)

	return c, nil
}

// UpdateTaskComment applies the set patch fields; unset fields keep their
// stored values. A set TaskID is a re-link judged against the target task's
// list.
func (s *CommentService) UpdateTaskComment(ctx context.Context, actorID, id int64, p domain.TaskCommentPatch) (*domain.TaskComment, error) {
	ref := domain.Ref{Kind: domain.KindTaskComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); err != nil {
		return nil, err
	}

	existing, err := s.taskComments.GetTaskComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.TaskID != nil && *p.TaskID != existing.TaskID {
		if err := s.policy.AuthorizeRelink(ctx, actorID, ref, *p.TaskID); err != nil {
			return nil, err
		}
	}

	p.Apply(existing)
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskComments.UpdateTaskComment(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update task comment",
			slog.String("operation", "UpdateTaskComment"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifyTaskComment(ctx, existing)

	return existing, nil
}

// DeleteTaskComment removes a task comment.
func (s *CommentService) DeleteTaskComment(ctx context.Context, actorID, id int64) error {
	ref := domain.Ref{Kind: domain.KindTaskComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpDelete); err != nil {
		return err
	}
	return s.taskComments.DeleteTaskComment(ctx, id)
}

// ListListComments returns the list comments the actor owns.
func (s *CommentService) ListListComments(ctx context.Context, actorID int64) ([]domain.ListComment, error) {
	comments, err := s.listComments.ListListCommentsByOwner(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list list comments",
			slog.String("operation", "ListListComments"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return comments, nil
}

// GetListComment returns a single list comment and bumps its view counter.
func (s *CommentService) GetListComment(ctx context.Context, actorID, id int64) (*domain.ListComment, error) {
	ref := domain.Ref{Kind: domain.KindListComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpRead); err != nil {
		return nil, err
	}

	comment, err := s.listComments.GetListComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.listComments.IncrementListCommentViews(ctx, id); err != nil {
		s.logger.WarnContext(ctx, "failed to bump view counter",
			slog.String("resource", ref.String()),
			slog.Any("error", err),
		)
	} else {
		comment.Views++
	}

	return comment, nil
}

// CreateListComment posts a comment on a list the actor can read.
func (s *CommentService) CreateListComment(ctx context.Context, actorID int64, c *domain.ListComment) (*domain.ListComment, error) {
	c.OwnerID = actorID
	if err := c.Validate(); err != nil {
		return nil, err
	}

	listRef := domain.Ref{Kind: domain.KindTaskList, ID: c.ListID}
	if err := s.policy.Authorize(ctx, actorID, listRef, domain.OpRead); err != nil {
		return nil, err
	}

	if err := s.listComments.CreateListComment(ctx, c); err != nil {
		s.logger.ErrorContext(ctx, "failed to create list comment",
			slog.String("operation", "CreateListComment"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifyListComment(ctx, c)

	return c, nil
}

// UpdateListComment applies the set patch fields; unset fields keep their
// stored values. A set ListID is a re-link judged against the target list.
func (s *CommentService) UpdateListComment(ctx context.Context, actorID, id int64, p domain.ListCommentPatch) (*domain.ListComment, error) {
	ref := domain.Ref{Kind: domain.KindListComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); err != nil {
		return nil, err
	}

	existing, err := s.listComments.GetListComment(ctx, id)
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

	if err := s.listComments.UpdateListComment(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update list comment",
			slog.String("operation", "UpdateListComment"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notifyListComment(ctx, existing)

	return existing, nil
}

// DeleteListComment removes a list comment.
func (s *CommentService) DeleteListComment(ctx context.Context, actorID, id int64) error {
	ref := domain.Ref{Kind: domain.KindListComment, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpDelete); err != nil {
		return err
	}
	return s.listComments.DeleteListComment(ctx, id)
}

func (s *CommentService) notifyTaskComment(ctx context.Context, c *domain.TaskComment) {
	task, err := s.tasks.GetTask(ctx, c.TaskID)
	if err != nil {
		s.logger.WarnContext(ctx, "cannot resolve list for task comment notification",
			slog.Int64("task_id", c.TaskID),
			slog.Any("error", err),
		)
		return
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindTaskComment,
		ID:     c.ID,
		Title:  c.Title,
		ListID: task.ListID,
	})
}

func (s *CommentService) notifyListComment(ctx context.Context, c *domain.ListComment) {
	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:   domain.KindListComment,
		ID:     c.ID,
		Title:  c.Title,
		ListID: c.ListID,
	})
}
