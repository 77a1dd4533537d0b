// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that Policy implements ports.Authorizer.
var _ ports.Authorizer = (*Policy)(nil)

// Policy is the access policy engine. It decides allow or deny from two
// kinds of facts: ownership fields on the entities themselves, and share
// relations between users and task lists.
//
// The engine is total and fail-closed: any lookup failure on the way to a
// decision (dangling parent, missing relation, store error) resolves to
// deny. Authorization never surfaces an internal error.
type Policy struct {
	lists        ports.TaskListStore
	tasks        ports.TaskStore
	relations    ports.RelationStore
	taskComments ports.TaskCommentStore
	listComments ports.ListCommentStore
	logger       *slog.Logger
}

// NewPolicy creates the access policy engine over the given stores.
func NewPolicy(
	lists ports.TaskListStore,
	tasks ports.TaskStore,
	relations ports.RelationStore,
	taskComments ports.TaskCommentStore,
	listComments ports.ListCommentStore,
	logger *slog.Logger,
) *Policy {
	return &Policy{
		lists:        lists,
		tasks:        tasks,
		relations:    relations,
		taskComments: taskComments,
		listComments: listComments,
		logger:       logger,
	}
}

// deny builds the uniform denial error. The cause is for logs only; callers
// see domain.ErrForbidden regardless of why the decision failed closed.
func deny(actorID int64, ref domain.Ref, op domain.Operation) error {
	return fmt.Errorf("user %d may not %s %s: %w", actorID, op, ref, domain.ErrForbidden)
}

// Authorize decides whether the actor may perform op on the referenced
// resource. Re-link intents must go through AuthorizeRelink instead, since
// they are judged against the target parent rather than the resource itself.
func (p *Policy) Authorize(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	switch ref.Kind {
	case domain.KindTaskList:
		return p.authorizeTaskList(ctx, actorID, ref, op)
	case domain.KindTask:
		return p.authorizeTask(ctx, actorID, ref, op)
	case domain.KindTaskComment:
		return p.authorizeTaskComment(ctx, actorID, ref, op)
	case domain.KindListComment:
		return p.authorizeListComment(ctx, actorID, ref, op)
	case domain.KindRelation:
		return p.authorizeRelation(ctx, actorID, ref, op)
	default:
		return deny(actorID, ref, op)
	}
}

// AuthorizeRelink decides whether the actor may re-point the referenced
// child at a new parent. Authority is evaluated against the target parent
// only: administering the current parent is neither necessary nor
// sufficient, which blocks laundering a child into a list the actor does
// not control.
func (p *Policy) AuthorizeRelink(ctx context.Context, actorID int64, ref domain.Ref, targetID int64) error {
	switch ref.Kind {
	case domain.KindTask, domain.KindListComment, domain.KindRelation:
		if p.isListAdmin(ctx, actorID, targetID) {
			return nil
		}
	case domain.KindTaskComment:
		// The target parent is a task; authority flows from its list.
		task, err := p.tasks.GetTask(ctx, targetID)
		if err == nil && p.isListAdmin(ctx, actorID, task.ListID) {
			return nil
		}
	}
	return deny(actorID, ref, domain.OpRelink)
}

// VisibleTaskLists returns every list the user owns or is related to. The
// search layer derives its whole search space from this, so listing and
// detail authorization share one set of facts.
func (p *Policy) VisibleTaskLists(ctx context.Context, userID int64) ([]domain.TaskList, error) {
	owned, err := p.lists.ListTaskListsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving owned lists: %w", err)
	}

	relations, err := p.relations.ListRelationsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving related lists: %w", err)
	}

	seen := make(map[int64]bool, len(owned))
	for _, l := range owned {
		seen[l.ID] = true
	}

	var relatedIDs []int64
	for _, r := range relations {
		// Only the subject side grants visibility; having granted someone
		// else access to a list says nothing about seeing it yourself.
		if r.UserID != userID || seen[r.ListID] {
			continue
		}
		seen[r.ListID] = true
		relatedIDs = append(relatedIDs, r.ListID)
	}

	related, err := p.lists.ListTaskLists(ctx, relatedIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching related lists: %w", err)
	}

	return append(owned, related...), nil
}

// authorizeTaskList: read for the owner or any relation holder; write and
// delete for the owner or an admin relation holder.
func (p *Policy) authorizeTaskList(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	if op == domain.OpRead {
		if p.canReadList(ctx, actorID, ref.ID) {
			return nil
		}
		return deny(actorID, ref, op)
	}
	if p.isListAdmin(ctx, actorID, ref.ID) {
		return nil
	}
	return deny(actorID, ref, op)
}

// authorizeTask: read for anyone who can read the parent list; write and
// delete require admin authority over the parent list.
func (p *Policy) authorizeTask(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	task, err := p.tasks.GetTask(ctx, ref.ID)
	if err != nil {
		return deny(actorID, ref, op)
	}

	if op == domain.OpRead {
		if p.canReadList(ctx, actorID, task.ListID) {
			return nil
		}
		return deny(actorID, ref, op)
	}
	if p.isListAdmin(ctx, actorID, task.ListID) {
		return nil
	}
	return deny(actorID, ref, op)
}

// authorizeTaskComment: read for anyone who can read the list the parent
// task belongs to. Task comments are self-administered once posted: write
// and delete belong to the comment's owner alone, list admins included out.
func (p *Policy) authorizeTaskComment(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	comment, err := p.taskComments.GetTaskComment(ctx, ref.ID)
	if err != nil {
		return deny(actorID, ref, op)
	}

	if op == domain.OpRead {
		task, err := p.tasks.GetTask(ctx, comment.TaskID)
		if err == nil && p.canReadList(ctx, actorID, task.ListID) {
			return nil
		}
		return deny(actorID, ref, op)
	}

	if comment.OwnerID == actorID {
		return nil
	}
	return deny(actorID, ref, op)
}

// authorizeListComment: read like task comments; write and delete for the
// comment's owner or a list admin. List-level comments are moderated.
func (p *Policy) authorizeListComment(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	comment, err := p.listComments.GetListComment(ctx, ref.ID)
	if err != nil {
		return deny(actorID, ref, op)
	}

	if op == domain.OpRead {
		if p.canReadList(ctx, actorID, comment.ListID) {
			return nil
		}
		return deny(actorID, ref, op)
	}

	if comment.OwnerID == actorID || p.isListAdmin(ctx, actorID, comment.ListID) {
		return nil
	}
	return deny(actorID, ref, op)
}

// authorizeRelation: the grantor may always read, write, and delete the
// grant. The subject may read it, and may write it only when their own role
// is admin.
func (p *Policy) authorizeRelation(ctx context.Context, actorID int64, ref domain.Ref, op domain.Operation) error {
	relation, err := p.relations.GetRelation(ctx, ref.ID)
	if err != nil {
		return deny(actorID, ref, op)
	}

	if relation.OwnerID == actorID {
		return nil
	}
	if relation.UserID == actorID {
		if op == domain.OpRead || relation.Role.IsAdmin() {
			return nil
		}
	}
	return deny(actorID, ref, op)
}

// canReadList reports whether the user owns the list or holds any relation
// to it. Lookup failures read as false.
func (p *Policy) canReadList(ctx context.Context, userID, listID int64) bool {
	list, err := p.lists.GetTaskList(ctx, listID)
	if err != nil {
		p.logLookupFailure(ctx, "task list", listID, err)
		return false
	}
	if list.OwnerID == userID {
		return true
	}

	_, err = p.relations.FindRelation(ctx, userID, listID)
	if err != nil {
		p.logLookupFailure(ctx, "relation", listID, err)
		return false
	}
	return true
}

// isListAdmin reports whether the user owns the list or holds an admin
// relation to it. The owner always qualifies as admin.
func (p *Policy) isListAdmin(ctx context.Context, userID, listID int64) bool {
	list, err := p.lists.GetTaskList(ctx, listID)
	if err != nil {
		p.logLookupFailure(ctx, "task list", listID, err)
		return false
	}
	if list.OwnerID == userID {
		return true
	}

	relation, err := p.relations.FindRelation(ctx, userID, listID)
	if err != nil {
		p.logLookupFailure(ctx, "relation", listID, err)
		return false
	}
	return relation.Role.IsAdmin()
}

// logLookupFailure records lookups that failed closed for a reason other
// than the row simply not existing. A missing row is an ordinary deny; a
// store fault hiding behind a deny is worth a warning.
func (p *Policy) logLookupFailure(ctx context.Context, what string, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		return
	}
	p.logger.WarnContext(ctx, "policy lookup failed, denying",
		slog.String("lookup", what),
		slog.Int64("id", id),
		slog.Any("error", err),
	)
}
