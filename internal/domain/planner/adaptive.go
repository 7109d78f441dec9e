package planner

import (
	"math"
	"time"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// AllocateAdaptive places prioritized tasks into the highest-focus hours of
// the next HorizonDays days, starting at midnight of now's day.
//
// Each day takes at most hoursPerDay and each session at most
// MaxSessionHours. Lengths are rounded to a tenth of an hour, downward when
// rounding up would break a cap. A day with less than a tenth left is
// full. A task is used up after its first placement even when that
// placement is shorter than the task; partial remainders are not carried
// forward.
func AllocateAdaptive(
	profile FocusProfile,
	tasks []*domain.Task,
	hoursPerDay float64,
	now time.Time,
	params *Params,
) []Session {
	sessions := []Session{}
	if len(tasks) == 0 || hoursPerDay <= 0 {
		return sessions
	}

	ranked := rankHours(profile)
	loc := now.Location()
	y, m, d := now.Date()

	next := 0
	for day := 0; day < params.HorizonDays && next < len(tasks); day++ {
		allocated := 0.0

		for _, slot := range ranked {
			if allocated >= hoursPerDay || next >= len(tasks) {
				break
			}

			at := time.Date(y, m, d+day, slot.hour, 0, 0, 0, loc)
			if params.SkipElapsedHours && at.Before(now) {
				continue
			}

			task := tasks[next]
			capacity := math.Min(hoursPerDay-allocated, params.MaxSessionHours)
			duration := roundDuration(math.Min(task.Duration, capacity), capacity)
			if duration <= 0 {
				break
			}
			sessions = append(sessions, newTaskSession(task, at, duration, slot.focus))
			allocated += duration
			next++
		}
	}

	return sessions
}
