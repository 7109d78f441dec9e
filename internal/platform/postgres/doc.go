// Package postgres provides PostgreSQL implementations of the store
// interfaces: users, tasks, focus logs, subjects, and schedules with their
// study sessions. It also embeds the goose migrations for the schema and maps
// driver errors onto the store sentinels.
package postgres
