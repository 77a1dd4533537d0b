package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that RelationService implements ports.RelationService.
var _ ports.RelationService = (*RelationService)(nil)

// RelationService is the relation manager: it owns the lifecycle of share
// grants. Uniqueness of the (subject, list) pair is delegated to the store's
// unique constraint so the duplicate check and the insert cannot race.
type RelationService struct {
	relations ports.RelationStore
	lists     ports.TaskListStore
	policy    ports.Authorizer
	notifier  ports.Notifier
	logger    *slog.Logger
}

// NewRelationService creates a RelationService.
func NewRelationService(
	relations ports.RelationStore,
	lists ports.TaskListStore,
	policy ports.Authorizer,
	notifier ports.Notifier,
	logger *slog.Logger,
) *RelationService {
	return &RelationService{
		relations: relations,
		lists:     lists,
		policy:    policy,
		notifier:  notifier,
		logger:    logger,
	}
}

// ListRelations returns the relations the actor participates in, as subject
// or as grantor.
func (s *RelationService) ListRelations(ctx context.Context, actorID int64) ([]domain.Relation, error) {
	relations, err := s.relations.ListRelationsForUser(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list relations",
			slog.String("operation", "ListRelations"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return relations, nil
}

// GetRelation returns a single relation.
func (s *RelationService) GetRelation(ctx context.Context, actorID, id int64) (*domain.Relation, error) {
	ref := domain.Ref{Kind: domain.KindRelation, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpRead); err != nil {
		return nil, err
	}
	return s.relations.GetRelation(ctx, id)
}

// CreateRelation grants subjectID access to listID. The actor must own or
// administer the list; an invited user can never create their own grant.
func (s *RelationService) CreateRelation(ctx context.Context, actorID, listID, subjectID int64, role domain.Role) (*domain.Relation, error) {
	listRef := domain.Ref{Kind: domain.KindTaskList, ID: listID}
	if err := s.policy.Authorize(ctx, actorID, listRef, domain.OpWrite); err != nil {
		return nil, err
	}

	if role == "" {
		role = domain.RoleGuest
	}

	relation := &domain.Relation{
		ListID:  listID,
		UserID:  subjectID,
		OwnerID: actorID,
		Role:    role,
	}
	if err := relation.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating relation",
		slog.Int64("actor_id", actorID),
		slog.Int64("list_id", listID),
		slog.Int64("subject_id", subjectID),
		slog.String("role", string(role)),
	)

	if err := s.relations.CreateRelation(ctx, relation); err != nil {
		s.logger.ErrorContext(ctx, "failed to create relation",
			slog.String("operation", "CreateRelation"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notify(ctx, relation)

	return relation, nil
}

// UpdateRelation rewrites role and linked list. Re-pointing the grant at a
// new list is authorized against the new list before anything else.
func (s *RelationService) UpdateRelation(ctx context.Context, actorID, id int64, r *domain.Relation) (*domain.Relation, error) {
	ref := domain.Ref{Kind: domain.KindRelation, ID: id}

	existing, err := s.relations.GetRelation(ctx, id)
	if err != nil {
		// The policy would deny a dangling relation anyway; let it shape
		// the error so missing and forbidden look identical to the caller.
		if authzErr := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); authzErr != nil {
			return nil, authzErr
		}
		return nil, err
	}

	if r.ListID != 0 && r.ListID != existing.ListID {
		if err := s.policy.AuthorizeRelink(ctx, actorID, ref, r.ListID); err != nil {
			return nil, err
		}
	}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpWrite); err != nil {
		return nil, err
	}

	if r.ListID != 0 {
		existing.ListID = r.ListID
	}
	if r.Role != "" {
		existing.Role = r.Role
	}
	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := s.relations.UpdateRelation(ctx, existing); err != nil {
		s.logger.ErrorContext(ctx, "failed to update relation",
			slog.String("operation", "UpdateRelation"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.notify(ctx, existing)

	return existing, nil
}

// DeleteRelation revokes a grant.
func (s *RelationService) DeleteRelation(ctx context.Context, actorID, id int64) error {
	ref := domain.Ref{Kind: domain.KindRelation, ID: id}
	if err := s.policy.Authorize(ctx, actorID, ref, domain.OpDelete); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting relation",
		slog.Int64("actor_id", actorID),
		slog.Int64("id", id),
	)

	return s.relations.DeleteRelation(ctx, id)
}

// notify reports the relation mutation. The notification names the list the
// grant points at; only the grant's subject is notified.
func (s *RelationService) notify(ctx context.Context, r *domain.Relation) {
	title := ""
	if list, err := s.lists.GetTaskList(ctx, r.ListID); err == nil {
		title = list.Title
	}

	s.notifier.ResourceChanged(ctx, domain.Mutation{
		Kind:      domain.KindRelation,
		ID:        r.ID,
		Title:     title,
		ListID:    r.ListID,
		SubjectID: r.UserID,
	})
}
