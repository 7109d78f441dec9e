// Package service contains the application use cases of the study planner.
// It orchestrates domain objects, the planner engine and the repositories
// defined in internal/store.
//
// Services:
//
//   - UserService: registration, credential checks and scheduling preferences
//   - TaskService: CRUD over a user's study tasks
//   - SubjectService: CRUD over exam subjects
//   - FocusService: focus logging and per-hour focus statistics
//   - ScheduleService: adaptive and spaced schedule generation, plus session
//     status tracking
//
// Every query is scoped to the calling user, so a record owned by someone
// else is reported as not found. Read-modify-write operations and schedule
// generation run inside a single transaction through store.TxRunner.
//
// Errors are returned wrapped in ServiceError so callers can still match the
// underlying domain and store sentinels with errors.Is; the API layer maps
// them to status codes.
package service
