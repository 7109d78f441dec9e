package planner

import (
	"math"
	"sort"
	"time"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// roundingSlack absorbs float error when comparing rounded durations to remaining hours.
const roundingSlack = 1e-9

// Options tunes a single spaced planning run.
type Options struct {
	// DailyAvailability caps the hours planned on any one day.
	DailyAvailability float64 `json:"daily_availability" yaml:"daily_availability"`
	// SessionBuffer is reserved; it does not affect spacing.
	SessionBuffer float64 `json:"session_buffer" yaml:"session_buffer"`
}

// Distribution is the session count and length derivation for a subject.
type Distribution struct {
	DaysUntilExam        int
	BaseSessionCount     int
	DifficultyMultiplier float64
	AdjustedSessionCount int
	MaxPossibleSessions  int
	MinSessions          int
	SessionCount         int
	AvgDuration          float64
}

// DaysUntil returns the whole days from now to exam, rounded up.
func DaysUntil(exam, now time.Time) int {
	return int(math.Ceil(float64(exam.Sub(now)) / float64(24*time.Hour)))
}

// ComputeDistribution derives how many sessions a subject needs and how long
// each should be, given the days left and the daily availability.
func ComputeDistribution(subject *domain.Subject, availability float64, daysUntilExam int, params *Params) Distribution {
	dist := Distribution{DaysUntilExam: daysUntilExam}

	dist.BaseSessionCount = int(math.Ceil(subject.TotalHours / params.HoursPerBaseSession))
	dist.DifficultyMultiplier = params.difficultyMultiplier(subject.Difficulty)
	dist.AdjustedSessionCount = int(math.Ceil(float64(dist.BaseSessionCount) * dist.DifficultyMultiplier))
	dist.MaxPossibleSessions = int(math.Floor(float64(daysUntilExam) * availability / params.SlotHours))

	maxSessionLength := math.Min(params.MaxSpacedSessionHours, availability)
	dist.MinSessions = max(params.MinSessionCount, int(math.Ceil(subject.TotalHours/maxSessionLength)))

	// The lower bound wins when it exceeds the upper bound.
	dist.SessionCount = max(dist.MinSessions, min(dist.AdjustedSessionCount, dist.MaxPossibleSessions))
	dist.AvgDuration = math.Min(subject.TotalHours/float64(dist.SessionCount), maxSessionLength)

	return dist
}

// spacedIntervals returns each session's offset in days before the exam,
// sorted ascending so the sessions closest to the exam come first.
func spacedIntervals(sessionCount, daysUntilExam int) []int {
	remainingDays := float64(max(daysUntilExam-1, 1))
	denominator := float64(max(sessionCount-1, 1))

	intervals := make([]int, sessionCount)
	for i := range intervals {
		ratio := float64(i) / denominator
		intervals[i] = int(math.Floor(remainingDays * math.Pow(1-ratio, 2)))
	}
	sort.Ints(intervals)
	return intervals
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// PlanSpaced spreads a subject's total hours over the days before its exam.
//
// Sessions are returned in construction order. A session whose day is
// already full moves one day later, once, but its length is still measured
// against the full day, so a moved session never fits. Slots that cannot fit
// at least MinSessionHours or would fall after the exam are dropped. The
// last session produced is tagged with FinalReviewNote, even when later
// slots were dropped.
func PlanSpaced(subject *domain.Subject, opts Options, now time.Time, params *Params) ([]Session, error) {
	if subject == nil {
		return nil, ErrNilSubject
	}
	if opts.DailyAvailability <= 0 {
		return nil, ErrInvalidAvailability
	}

	daysUntilExam := DaysUntil(subject.ExamDate, now)
	if daysUntilExam <= 0 {
		return nil, ErrExamDateInPast
	}

	dist := ComputeDistribution(subject, opts.DailyAvailability, daysUntilExam, params)
	intervals := spacedIntervals(dist.SessionCount, daysUntilExam)

	sessions := []Session{}
	usage := make(map[string]float64)
	emitted := 0.0

	for i, offset := range intervals {
		date := subject.ExamDate.AddDate(0, 0, -offset)
		if date.Before(now) {
			date = now.AddDate(0, 0, i+1)
		}

		// usage stays keyed by the day the slot was planned for
		key := dayKey(date)
		if usage[key] >= opts.DailyAvailability {
			date = date.AddDate(0, 0, 1)
		}
		if date.After(subject.ExamDate) {
			continue
		}

		remaining := math.Max(0, subject.TotalHours-emitted)
		duration := math.Min(dist.AvgDuration, math.Min(remaining, opts.DailyAvailability-usage[key]))
		if duration < params.MinSessionHours {
			continue
		}

		rounded := roundDuration(duration, remaining)
		sessions = append(sessions, newSubjectSession(subject, i, date, rounded))
		usage[key] += duration
		emitted += rounded
	}

	if len(sessions) > 0 {
		sessions[len(sessions)-1].Notes = FinalReviewNote
	}

	return sessions, nil
}

// roundDuration rounds hours to one decimal without going over limit.
func roundDuration(hours, limit float64) float64 {
	rounded := math.Round(hours*10) / 10
	if rounded > limit+roundingSlack {
		rounded = math.Floor(limit*10+roundingSlack) / 10
	}
	return rounded
}
