package planner

import (
	"sort"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// HoursPerDay is the number of hour slots in a focus profile.
const HoursPerDay = 24

// FocusProfile holds the average focus score for each hour of the day.
type FocusProfile [HoursPerDay]float64

// HourStat summarises the focus samples logged at one hour.
type HourStat struct {
	Hour    int     `json:"hour"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type hourTotals struct {
	sum   [HoursPerDay]int
	count [HoursPerDay]int
}

func summarize(logs []*domain.FocusLog) hourTotals {
	var t hourTotals
	for _, l := range logs {
		if l == nil || l.TimeOfDay < 0 || l.TimeOfDay >= HoursPerDay {
			continue
		}
		t.sum[l.TimeOfDay] += l.FocusScore
		t.count[l.TimeOfDay]++
	}
	return t
}

// BuildFocusProfile averages focus scores per hour. Hours without samples
// get defaultFocus.
func BuildFocusProfile(logs []*domain.FocusLog, defaultFocus float64) FocusProfile {
	totals := summarize(logs)

	var profile FocusProfile
	for h := 0; h < HoursPerDay; h++ {
		if totals.count[h] == 0 {
			profile[h] = defaultFocus
			continue
		}
		profile[h] = float64(totals.sum[h]) / float64(totals.count[h])
	}
	return profile
}

// HourlyStats returns average and sample count for every hour that has samples,
// ordered by hour.
func HourlyStats(logs []*domain.FocusLog) []HourStat {
	totals := summarize(logs)

	stats := make([]HourStat, 0, HoursPerDay)
	for h := 0; h < HoursPerDay; h++ {
		if totals.count[h] == 0 {
			continue
		}
		stats = append(stats, HourStat{
			Hour:    h,
			Average: float64(totals.sum[h]) / float64(totals.count[h]),
			Count:   totals.count[h],
		})
	}
	return stats
}

type rankedHour struct {
	hour  int
	focus float64
}

// rankHours orders hours by descending focus, breaking ties by ascending hour.
func rankHours(profile FocusProfile) []rankedHour {
	ranked := make([]rankedHour, HoursPerDay)
	for h := range ranked {
		ranked[h] = rankedHour{hour: h, focus: profile[h]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].focus != ranked[j].focus {
			return ranked[i].focus > ranked[j].focus
		}
		return ranked[i].hour < ranked[j].hour
	})
	return ranked
}
