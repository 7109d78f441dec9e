package planner

import "errors"

var (
	// ErrExamDateInPast is returned when a subject's exam is not strictly in the future.
	ErrExamDateInPast = errors.New("exam date must be in the future")

	// ErrInvalidAvailability is returned when daily availability is zero or negative.
	ErrInvalidAvailability = errors.New("daily availability must be greater than zero")

	// ErrNilSubject is returned when spaced planning is requested without a subject.
	ErrNilSubject = errors.New("subject cannot be nil")

	// ErrInvalidParams is returned when a Params value cannot drive the engine.
	ErrInvalidParams = errors.New("invalid planner parameters")
)
