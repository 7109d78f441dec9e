package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSubject(name string, totalHours float64, difficulty int, exam time.Time) *domain.Subject {
	return &domain.Subject{
		ID:         uuid.New(),
		Name:       name,
		Difficulty: difficulty,
		TotalHours: totalHours,
		ExamDate:   exam,
		Color:      domain.DefaultSubjectColor,
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 10, DaysUntil(now.AddDate(0, 0, 10), now))
	assert.Equal(t, 1, DaysUntil(now.Add(time.Hour), now))
	assert.Equal(t, 2, DaysUntil(now.Add(25*time.Hour), now))
	assert.Equal(t, 0, DaysUntil(now, now))
	assert.Equal(t, 0, DaysUntil(now.Add(-23*time.Hour), now))
	assert.Equal(t, -1, DaysUntil(now.Add(-24*time.Hour), now))
}

func TestComputeDistribution(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ten hours medium difficulty", func(t *testing.T) {
		subject := makeSubject("Calculus", 10, 3, now.AddDate(0, 0, 10))
		dist := ComputeDistribution(subject, 3, 10, params)

		assert.Equal(t, 10, dist.DaysUntilExam)
		assert.Equal(t, 7, dist.BaseSessionCount)
		assert.Equal(t, 1.5, dist.DifficultyMultiplier)
		assert.Equal(t, 11, dist.AdjustedSessionCount)
		assert.Equal(t, 60, dist.MaxPossibleSessions)
		assert.Equal(t, 4, dist.MinSessions)
		assert.Equal(t, 11, dist.SessionCount)
		assert.InDelta(t, 10.0/11.0, dist.AvgDuration, 1e-12)
	})

	t.Run("difficulty table with fallback", func(t *testing.T) {
		want := map[int]float64{0: 1.5, 1: 1.0, 2: 1.2, 3: 1.5, 4: 1.8, 5: 2.2, 9: 1.5}
		for difficulty, mult := range want {
			dist := ComputeDistribution(makeSubject("x", 3, difficulty, now), 3, 5, params)
			assert.Equal(t, mult, dist.DifficultyMultiplier, "difficulty %d", difficulty)
		}
	})

	t.Run("minimum wins over a smaller maximum", func(t *testing.T) {
		// one day at one hour allows two half-hour slots but twenty hours need twenty sessions
		dist := ComputeDistribution(makeSubject("Cram", 20, 1, now), 1, 1, params)
		assert.Equal(t, 2, dist.MaxPossibleSessions)
		assert.Equal(t, 20, dist.MinSessions)
		assert.Equal(t, 20, dist.SessionCount)
		assert.Equal(t, 1.0, dist.AvgDuration)
	})
}

func TestSpacedIntervals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 0, 0, 0, 1, 2, 3, 4, 5, 7, 9}, spacedIntervals(11, 10))
	assert.Equal(t, []int{4}, spacedIntervals(1, 5))
	assert.Equal(t, []int{0, 1}, spacedIntervals(2, 1), "remaining days never drops below one")
}

func TestPlanSpacedTenHourSubject(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exam := now.AddDate(0, 0, 10)
	subject := makeSubject("Calculus", 10, 3, exam)

	sessions, err := PlanSpaced(subject, Options{DailyAvailability: 3, SessionBuffer: 0.5}, now, params)
	require.NoError(t, err)

	// The fourth slot on exam day only has 0.27h left and is dropped.
	wantOffsets := []int{0, 0, 0, 1, 2, 3, 4, 5, 7, 9}
	wantNumbers := []int{1, 2, 3, 5, 6, 7, 8, 9, 10, 11}
	require.Len(t, sessions, len(wantOffsets))

	for i, s := range sessions {
		assert.Equal(t, exam.AddDate(0, 0, -wantOffsets[i]), s.Date, "session %d", i)
		assert.Equal(t, fmt.Sprintf("Calculus - Study Session %d", wantNumbers[i]), s.Title)
		assert.Equal(t, 0.9, s.Duration)
		assert.Equal(t, subject.ID, s.SubjectID)
		assert.Equal(t, uuid.Nil, s.TaskID)
		assert.Nil(t, s.FocusLevel)
		assert.Equal(t, domain.SessionStatusScheduled, s.Status)
	}

	assert.InDelta(t, 9.0, TotalHours(sessions), 1e-9)
	assert.True(t, sessions[len(sessions)-1].IsFinalReview())
	for _, s := range sessions[:len(sessions)-1] {
		assert.Empty(t, s.Notes)
	}
}

func TestPlanSpacedDropsPushedSlotsPastTheExam(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exam := now.Add(12 * time.Hour)

	sessions, err := PlanSpaced(makeSubject("Biology", 2, 1, exam), Options{DailyAvailability: 3}, now, params)
	require.NoError(t, err)

	// exam minus one day is before now and now plus two days is after the exam
	require.Len(t, sessions, 1)
	assert.Equal(t, exam, sessions[0].Date)
	assert.Equal(t, 1.0, sessions[0].Duration)
	assert.True(t, sessions[0].IsFinalReview())
}

func TestPlanSpacedFullDayDropsSlot(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exam := now.AddDate(0, 0, 3)

	sessions, err := PlanSpaced(makeSubject("Law", 4, 1, exam), Options{DailyAvailability: 1}, now, params)
	require.NoError(t, err)

	// slots two and three find exam day full; nothing moves past the exam
	require.Len(t, sessions, 2)
	assert.Equal(t, exam, sessions[0].Date)
	assert.Equal(t, "Law - Study Session 1", sessions[0].Title)
	assert.Equal(t, exam.AddDate(0, 0, -2), sessions[1].Date)
	assert.Equal(t, "Law - Study Session 4", sessions[1].Title)
	assert.True(t, sessions[1].IsFinalReview())

	assert.Equal(t, 2.0, TotalHours(sessions))
}

func TestPlanSpacedNeverSchedulesAfterExam(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exam := now.AddDate(0, 0, 3)
	subject := makeSubject("History", 10, 5, exam)

	sessions, err := PlanSpaced(subject, Options{DailyAvailability: 3}, now, params)
	require.NoError(t, err)

	require.Len(t, sessions, 10)
	perDay := map[string]float64{}
	for _, s := range sessions {
		assert.False(t, s.Date.After(exam), s.Title)
		perDay[dayKey(s.Date)] += s.Duration
	}
	assert.InDelta(t, 2.9, perDay[dayKey(exam)], 1e-9)
	assert.InDelta(t, 5.9, TotalHours(sessions), 1e-9)
	assert.Equal(t, "History - Study Session 16", sessions[len(sessions)-1].Title)
}

func TestPlanSpacedFinalReviewWhenLastSlotDropped(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	exam := now.AddDate(0, 0, 3)

	sessions, err := PlanSpaced(makeSubject("Chemistry", 4, 5, exam), Options{DailyAvailability: 3}, now, params)
	require.NoError(t, err)

	// seven slots; the seventh only has 0.4h left and is dropped
	require.Len(t, sessions, 6)
	last := sessions[len(sessions)-1]
	assert.Equal(t, "Chemistry - Study Session 6", last.Title)
	assert.Equal(t, exam.AddDate(0, 0, -1), last.Date)
	assert.True(t, last.IsFinalReview())
	for _, s := range sessions[:len(sessions)-1] {
		assert.Empty(t, s.Notes, s.Title)
	}
	assert.InDelta(t, 3.6, TotalHours(sessions), 1e-9)
}

func TestPlanSpacedErrors(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		subject *domain.Subject
		opts    Options
		wantErr error
	}{
		{"exam now", makeSubject("x", 5, 3, now), Options{DailyAvailability: 3}, ErrExamDateInPast},
		{"exam yesterday", makeSubject("x", 5, 3, now.AddDate(0, 0, -1)), Options{DailyAvailability: 3}, ErrExamDateInPast},
		{"zero availability", makeSubject("x", 5, 3, now.AddDate(0, 0, 5)), Options{}, ErrInvalidAvailability},
		{"negative availability", makeSubject("x", 5, 3, now.AddDate(0, 0, 5)), Options{DailyAvailability: -2}, ErrInvalidAvailability},
		{"nil subject", nil, Options{DailyAvailability: 3}, ErrNilSubject},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sessions, err := PlanSpaced(tc.subject, tc.opts, now, params)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, sessions)
		})
	}
}

func TestPlanSpacedProperties(t *testing.T) {
	t.Parallel()

	params := NewDefaultParams()
	now := time.Date(2025, 2, 14, 17, 45, 0, 0, time.UTC)

	for _, totalHours := range []float64{0.5, 1, 4.5, 10, 37.5, 120} {
		for _, difficulty := range []int{0, 1, 3, 5, 7} {
			for _, days := range []int{1, 2, 5, 14, 45} {
				for _, availability := range []float64{0.5, 1, 2.5, 3, 8} {
					name := fmt.Sprintf("h%v_d%d_days%d_a%v", totalHours, difficulty, days, availability)
					subject := makeSubject("S", totalHours, difficulty, now.AddDate(0, 0, days))
					opts := Options{DailyAvailability: availability}

					sessions, err := PlanSpaced(subject, opts, now, params)
					require.NoError(t, err, name)

					dist := ComputeDistribution(subject, availability, days, params)
					if dist.MinSessions <= dist.MaxPossibleSessions {
						assert.GreaterOrEqual(t, dist.SessionCount, dist.MinSessions, name)
						assert.LessOrEqual(t, dist.SessionCount, dist.MaxPossibleSessions, name)
					} else {
						assert.Equal(t, dist.MinSessions, dist.SessionCount, name)
					}
					assert.LessOrEqual(t, len(sessions), dist.SessionCount, name)
					assert.LessOrEqual(t, TotalHours(sessions), totalHours+1e-6, name)

					finals := 0
					for _, s := range sessions {
						assert.False(t, s.Date.Before(now), name)
						assert.False(t, s.Date.After(subject.ExamDate), name)
						assert.GreaterOrEqual(t, s.Duration, params.MinSessionHours, name)
						if s.IsFinalReview() {
							finals++
						}
					}
					if len(sessions) > 0 {
						assert.Equal(t, 1, finals, name)
						assert.True(t, sessions[len(sessions)-1].IsFinalReview(), name)
					}

					again, err := PlanSpaced(subject, opts, now, params)
					require.NoError(t, err)
					assert.Equal(t, sessions, again, "planning must be deterministic: %s", name)
				}
			}
		}
	}
}
