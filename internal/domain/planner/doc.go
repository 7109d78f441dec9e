// Package planner implements the session-allocation engine.
//
// It has two modes. Adaptive mode places a user's pending tasks into the
// hours of the coming week where their logged focus is highest. Spaced mode
// spreads a subject's study hours over the days before its exam with
// intervals that tighten as the exam approaches.
//
// Everything here is a pure computation over in-memory values: no I/O, no
// logging, and the current time is always passed in by the caller.
package planner
