// Package domain contains the entities of the task-list system (TaskList,
// Task, Relation, comments, Notification) together with the shared sentinel
// errors, validation types, and the resource tagged union consumed by the
// access policy engine. It has no I/O dependencies.
package domain
