package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that NotificationService implements
// ports.NotificationService.
var _ ports.NotificationService = (*NotificationService)(nil)

// NotificationService implements ports.NotificationService. The only
// mutation it ever performs is the one-way unseen-to-seen flip on first
// retrieval; nothing here or anywhere else can flip a notification back.
type NotificationService struct {
	notifications ports.NotificationStore
	logger        *slog.Logger
	clock         func() time.Time
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(notifications ports.NotificationStore, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger,
		clock:         time.Now,
	}
}

// ListNotifications returns the actor's notifications newest first. Each
// previously unseen notification is marked seen by this retrieval.
func (s *NotificationService) ListNotifications(ctx context.Context, actorID int64) ([]domain.Notification, error) {
	notifications, err := s.notifications.ListNotificationsByReceiver(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notifications",
			slog.String("operation", "ListNotifications"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}

	for i := range notifications {
		s.markSeen(ctx, &notifications[i])
	}

	return notifications, nil
}

// GetNotification returns one of the actor's notifications, marking it seen
// on first retrieval. A notification addressed to someone else does not
// exist as far as the actor is concerned.
func (s *NotificationService) GetNotification(ctx context.Context, actorID, id int64) (*domain.Notification, error) {
	notification, err := s.notifications.GetNotification(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.ReceiverID != actorID {
		return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}

	s.markSeen(ctx, notification)

	return notification, nil
}

// markSeen applies the one-way transition and persists it. A persistence
// failure leaves the in-memory copy unseen too, so the flip simply happens
// on a later retrieval instead.
func (s *NotificationService) markSeen(ctx context.Context, n *domain.Notification) {
	at := s.clock().UTC()
	if !n.MarkSeen(at) {
		return
	}

	if err := s.notifications.MarkNotificationSeen(ctx, n.ID, at); err != nil {
		s.logger.WarnContext(ctx, "failed to persist seen flip",
			slog.Int64("notification_id", n.ID),
			slog.Any("error", err),
		)
		n.Seen = false
		n.SeenOn = nil
	}
}
