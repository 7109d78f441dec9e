package planner

import (
	"sort"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// PrioritizeTasks returns a new slice ordered by descending load weight.
// Equal weights order by earliest deadline, with dated tasks ahead of
// undated ones. Remaining ties keep their input order. The input slice is
// left untouched.
func PrioritizeTasks(tasks []*domain.Task, weights map[domain.TaskType]int) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		wa, wb := weights[a.TaskType], weights[b.TaskType]
		if wa != wb {
			return wa > wb
		}
		switch {
		case a.Deadline != nil && b.Deadline != nil:
			return a.Deadline.Before(*b.Deadline)
		case a.Deadline != nil:
			return true
		default:
			return false
		}
	})

	return sorted
}
