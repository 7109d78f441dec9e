// Package api handles incoming HTTP requests for the study planner: account
// management, tasks, subjects, focus logs and generated schedules.
//
// Handlers decode and validate JSON bodies, take the authenticated user from
// the request context, delegate to the service layer and translate errors
// into status codes with client-safe messages (see HandleAPIError). Every
// resource lookup is scoped to the authenticated user, so records owned by
// someone else are reported as not found.
package api
