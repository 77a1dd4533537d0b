package domain

import "fmt"

// Mutation describes a successful create or update of a resource, as handed
// to the change notifier by the application services. ListID is the affected
// task list, already resolved by the caller (directly for lists, relations
// and list comments; via the parent task for tasks and task comments).
//
// SubjectID is set only for relation mutations: changing a single share
// grant is not list-wide news, so only the grant's subject is notified.
type Mutation struct {
	Kind      Kind
	ID        int64
	Title     string
	ListID    int64
	SubjectID int64
}

// NotificationTitle synthesizes the human-readable notification text for
// this mutation. The text names the resource kind and title and contains no
// timestamps, keeping the notifier's upsert key stable across repeated
// identical mutations.
func (m Mutation) NotificationTitle() string {
	return fmt.Sprintf("A change has been made to the %s called %q", m.Kind.Label(), m.Title)
}
