package domain

// StudyTime is the part of the day a user prefers to study in.
// It is stored and returned to clients but the planner does not enforce it.
type StudyTime string

// Possible preferred study times
const (
	StudyTimeMorning   StudyTime = "morning"
	StudyTimeAfternoon StudyTime = "afternoon"
	StudyTimeEvening   StudyTime = "evening"
	StudyTimeNight     StudyTime = "night"
)

// DefaultStudyHoursPerDay is used when a user has not set a daily study budget.
const DefaultStudyHoursPerDay = 4.0

// MaxStudyHoursPerDay bounds the daily study budget a user can configure.
const MaxStudyHoursPerDay = 24.0

// Preference validation errors
var (
	ErrInvalidStudyHours = newValidationError("study hours per day must be greater than 0 and at most 24")
	ErrInvalidStudyTime  = newValidationError("preferred study time must be morning, afternoon, evening or night")
)

// Preferences holds a user's scheduling preferences.
type Preferences struct {
	StudyHoursPerDay   float64   `json:"study_hours_per_day"`
	PreferredStudyTime StudyTime `json:"preferred_study_time"`
}

// DefaultPreferences returns the preferences assigned to new users.
func DefaultPreferences() Preferences {
	return Preferences{
		StudyHoursPerDay:   DefaultStudyHoursPerDay,
		PreferredStudyTime: StudyTimeMorning,
	}
}

// Validate checks that the preferences are usable.
func (p Preferences) Validate() error {
	if p.StudyHoursPerDay <= 0 || p.StudyHoursPerDay > MaxStudyHoursPerDay {
		return ErrInvalidStudyHours
	}
	if !IsValidStudyTime(p.PreferredStudyTime) {
		return ErrInvalidStudyTime
	}
	return nil
}

// IsValidStudyTime reports whether t is one of the known study times.
func IsValidStudyTime(t StudyTime) bool {
	switch t {
	case StudyTimeMorning, StudyTimeAfternoon, StudyTimeEvening, StudyTimeNight:
		return true
	default:
		return false
	}
}
