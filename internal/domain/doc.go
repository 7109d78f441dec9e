// Package domain contains the core business entities, value objects, and
// domain logic of the study planner: users and their preferences, tasks,
// focus logs, subjects, schedules and the study sessions that fill them.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
