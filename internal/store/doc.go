// Package store declares the persistence interfaces for users, tasks,
// subjects, focus logs and schedules, plus the transaction runner the
// services use to group writes.
//
// Every lookup that takes a user ID is scoped to that user: a record owned
// by someone else is reported as not found.
package store
