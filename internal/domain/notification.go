package domain

import "time"

// Notification tells a user that a shared resource changed. Notifications are
// created exclusively by the change notifier (never by API clients), are
// never deleted, and their only mutation is the one-way unseen -> seen
// transition performed on first retrieval by the receiver.
//
// DeepLink is the canonical reference (see Ref) to the relation that explains
// why the receiver was notified. Title deliberately excludes timestamps so
// that the (receiver, title, deep link) upsert key stays stable and repeated
// identical mutations do not produce duplicate rows.
type Notification struct {
	ID         int64
	Title      string
	Seen       bool
	SeenOn     *time.Time
	DeepLink   string
	ReceiverID int64
	CreatedAt  time.Time
}

// MarkSeen performs the unseen -> seen transition, stamping SeenOn with now.
// The transition fires at most once: calling MarkSeen on an already-seen
// notification is a no-op and returns false.
func (n *Notification) MarkSeen(now time.Time) bool {
	if n.Seen {
		return false
	}
	n.Seen = true
	n.SeenOn = &now
	return true
}
