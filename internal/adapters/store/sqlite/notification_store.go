package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

type notificationRow struct {
	ID         int64      `db:"id"`
	Title      string     `db:"title"`
	Seen       bool       `db:"seen"`
	SeenOn     *time.Time `db:"seen_on"`
	DeepLink   string     `db:"deep_link"`
	ReceiverID int64      `db:"receiver_id"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:         r.ID,
		Title:      r.Title,
		Seen:       r.Seen,
		SeenOn:     r.SeenOn,
		DeepLink:   r.DeepLink,
		ReceiverID: r.ReceiverID,
		CreatedAt:  r.CreatedAt,
	}
}

// UpsertNotification inserts the notification unless a row with the same
// (receiver, title, deep link) already exists. When the row exists, n is
// refreshed from it and the stored row is left untouched, so repeated
// identical changes never pile up duplicates and never reset seen state.
func (s *Store) UpsertNotification(ctx context.Context, n *domain.Notification) (bool, error) {
	n.CreatedAt = now()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (title, seen, seen_on, deep_link, receiver_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(receiver_id, title, deep_link) DO NOTHING`,
		n.Title, n.Seen, n.SeenOn, n.DeepLink, n.ReceiverID, n.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upserting notification: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading upsert result: %w", err)
	}

	if rows == 1 {
		n.ID, err = res.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("reading notification id: %w", err)
		}
		return true, nil
	}

	var row notificationRow
	err = s.db.GetContext(ctx, &row, `
		SELECT * FROM notifications
		WHERE receiver_id = ? AND title = ? AND deep_link = ?`,
		n.ReceiverID, n.Title, n.DeepLink,
	)
	if err != nil {
		return false, fmt.Errorf("fetching existing notification: %w", err)
	}

	*n = row.toDomain()
	return false, nil
}

// GetNotification retrieves a single notification by ID.
func (s *Store) GetNotification(ctx context.Context, id int64) (*domain.Notification, error) {
	var row notificationRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM notifications WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting notification %d: %w", id, err)
	}

	n := row.toDomain()
	return &n, nil
}

// ListNotificationsByReceiver returns the receiver's notifications, newest
// first.
func (s *Store) ListNotificationsByReceiver(ctx context.Context, receiverID int64) ([]domain.Notification, error) {
	var rows []notificationRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT * FROM notifications
		WHERE receiver_id = ?
		ORDER BY created_at DESC, id DESC`,
		receiverID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications for receiver %d: %w", receiverID, err)
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toDomain())
	}
	return notifications, nil
}

// MarkNotificationSeen flips the seen flag and stamps seen_on, but only when
// the row is still unseen. Already-seen rows keep their original timestamp.
func (s *Store) MarkNotificationSeen(ctx context.Context, id int64, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE notifications SET seen = 1, seen_on = ?
		WHERE id = ? AND seen = 0`,
		at.UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("marking notification %d seen: %w", id, err)
	}
	return nil
}
