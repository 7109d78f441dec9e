package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
)

// FinalReviewNote marks the last session produced by the spaced planner.
const FinalReviewNote = "Final review session"

// Session describes one block of study time proposed by the engine.
// TaskID is set for adaptive sessions and SubjectID for spaced ones; the
// other is uuid.Nil. The caller assigns identifiers when persisting.
type Session struct {
	TaskID     uuid.UUID            `json:"task_id"`
	SubjectID  uuid.UUID            `json:"subject_id"`
	Title      string               `json:"title"`
	Subject    string               `json:"subject"`
	TaskType   domain.TaskType      `json:"task_type,omitempty"`
	Date       time.Time            `json:"date"`
	Duration   float64              `json:"duration"`
	FocusLevel *float64             `json:"focus_level,omitempty"`
	Status     domain.SessionStatus `json:"status"`
	Notes      string               `json:"notes,omitempty"`
}

// IsFinalReview reports whether the session was tagged as the final review.
func (s Session) IsFinalReview() bool {
	return s.Notes == FinalReviewNote
}

// FocusLevelNote formats a focus level the way adaptive sessions are annotated.
func FocusLevelNote(level float64) string {
	return fmt.Sprintf("Focus Level: %.1f", level)
}

// TotalHours sums the durations of the given sessions.
func TotalHours(sessions []Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

func newTaskSession(task *domain.Task, at time.Time, duration, focus float64) Session {
	level := focus
	return Session{
		TaskID:     task.ID,
		Title:      task.Title,
		Subject:    task.Subject,
		TaskType:   task.TaskType,
		Date:       at,
		Duration:   duration,
		FocusLevel: &level,
		Status:     domain.SessionStatusScheduled,
	}
}

func newSubjectSession(subject *domain.Subject, index int, at time.Time, duration float64) Session {
	return Session{
		SubjectID: subject.ID,
		Title:     fmt.Sprintf("%s - Study Session %d", subject.Name, index+1),
		Subject:   subject.Name,
		Date:      at,
		Duration:  duration,
		Status:    domain.SessionStatusScheduled,
	}
}
