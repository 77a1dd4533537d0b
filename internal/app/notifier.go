package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskmaster/internal/app/fanout"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that ChangeNotifier implements ports.Notifier.
var _ ports.Notifier = (*ChangeNotifier)(nil)

// ChangeNotifier fans a resource mutation out to the stakeholders of the
// affected task list, upserting one notification per receiver. It runs
// synchronously inside the mutating request, after the mutation has been
// committed, and never reports failure to the caller: a receiver that
// cannot be notified is logged and skipped, and the rest are still served.
type ChangeNotifier struct {
	relations     ports.RelationStore
	notifications ports.NotificationStore
	webhook       ports.WebhookSink // nil when webhook delivery is disabled
	workers       int
	logger        *slog.Logger
}

// NewChangeNotifier creates the notifier. workers bounds the fan-out
// concurrency; webhook may be nil to disable external delivery.
func NewChangeNotifier(
	relations ports.RelationStore,
	notifications ports.NotificationStore,
	webhook ports.WebhookSink,
	workers int,
	logger *slog.Logger,
) *ChangeNotifier {
	if workers < 1 {
		workers = 1
	}
	return &ChangeNotifier{
		relations:     relations,
		notifications: notifications,
		webhook:       webhook,
		workers:       workers,
		logger:        logger,
	}
}

// ResourceChanged notifies the stakeholders of the mutated resource's list.
//
// For most kinds every relation subject on the list is notified. Relation
// mutations are the exception: changing a single share grant is not
// list-wide news, so only the grant's subject hears about it.
func (n *ChangeNotifier) ResourceChanged(ctx context.Context, m domain.Mutation) {
	receivers, err := n.resolveReceivers(ctx, m)
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to resolve notification receivers",
			slog.String("resource", m.Kind.Label()),
			slog.Int64("id", m.ID),
			slog.Any("error", err),
		)
		return
	}
	if len(receivers) == 0 {
		return
	}

	title := m.NotificationTitle()

	results := fanout.Run(ctx, n.workers, receivers,
		func(ctx context.Context, rel domain.Relation) (bool, error) {
			// The deep link is the receiver's own relation, the grant
			// that explains why they are being told.
			notification := &domain.Notification{
				Title:      title,
				DeepLink:   domain.Ref{Kind: domain.KindRelation, ID: rel.ID}.String(),
				ReceiverID: rel.UserID,
			}
			return n.notifications.UpsertNotification(ctx, notification)
		})

	created := 0
	for i, res := range results {
		if res.Err != nil {
			// Per-receiver isolation: log and move on.
			n.logger.ErrorContext(ctx, "failed to notify receiver",
				slog.Int64("receiver_id", receivers[i].UserID),
				slog.String("resource", m.Kind.Label()),
				slog.Int64("id", m.ID),
				slog.Any("error", res.Err),
			)
			continue
		}
		if res.Value {
			created++
		}
	}

	n.logger.InfoContext(ctx, "notified resource change",
		slog.String("resource", m.Kind.Label()),
		slog.Int64("id", m.ID),
		slog.Int("receivers", len(receivers)),
		slog.Int("created", created),
	)

	n.publishWebhook(ctx, m)
}

// resolveReceivers enumerates the relations whose subjects are notified for
// a mutation. For a relation mutation that is the mutated grant itself.
func (n *ChangeNotifier) resolveReceivers(ctx context.Context, m domain.Mutation) ([]domain.Relation, error) {
	if m.Kind == domain.KindRelation {
		return []domain.Relation{{ID: m.ID, UserID: m.SubjectID}}, nil
	}

	return n.relations.ListRelationsByList(ctx, m.ListID)
}

// publishWebhook forwards the mutation to the external sink, best effort.
func (n *ChangeNotifier) publishWebhook(ctx context.Context, m domain.Mutation) {
	if n.webhook == nil {
		return
	}
	if err := n.webhook.Publish(ctx, m); err != nil {
		n.logger.WarnContext(ctx, "webhook publish failed",
			slog.String("resource", m.Kind.Label()),
			slog.Int64("id", m.ID),
			slog.Any("error", err),
		)
	}
}
