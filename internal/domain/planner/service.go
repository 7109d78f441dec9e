package planner

import (
	"fmt"
	"time"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// Service defines the interface for the session-allocation engine
type Service interface {
	// GenerateAdaptiveSchedule places a user's incomplete tasks into their
	// best focus hours over the coming days.
	GenerateAdaptiveSchedule(
		tasks []*domain.Task,
		logs []*domain.FocusLog,
		prefs domain.Preferences,
		now time.Time,
	) ([]Session, error)

	// GenerateStudySessions spreads one subject's study hours over the days
	// before its exam.
	GenerateStudySessions(subject *domain.Subject, opts Options, now time.Time) ([]Session, error)

	// FocusStats summarises focus logs per hour.
	FocusStats(logs []*domain.FocusLog) []HourStat

	// DefaultOptions returns the spaced planning options used when a caller sets none.
	DefaultOptions() Options
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

var _ Service = (*defaultService)(nil)

// NewDefaultService creates a new planner service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new planner service with custom parameters
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: params cannot be nil", ErrInvalidParams)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &defaultService{params: params}, nil
}

// GenerateAdaptiveSchedule implements Service.
// Completed tasks are ignored and a zero daily budget falls back to the default.
func (s *defaultService) GenerateAdaptiveSchedule(
	tasks []*domain.Task,
	logs []*domain.FocusLog,
	prefs domain.Preferences,
	now time.Time,
) ([]Session, error) {
	hoursPerDay := prefs.StudyHoursPerDay
	if hoursPerDay == 0 {
		hoursPerDay = s.params.DefaultStudyHoursPerDay
	}
	if hoursPerDay < 0 || hoursPerDay > domain.MaxStudyHoursPerDay {
		return nil, domain.ErrInvalidStudyHours
	}

	pending := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t == nil || t.Completed || t.Duration <= 0 {
			continue
		}
		pending = append(pending, t)
	}

	profile := BuildFocusProfile(logs, s.params.DefaultFocus)
	prioritized := PrioritizeTasks(pending, s.params.LoadWeights)

	return AllocateAdaptive(profile, prioritized, hoursPerDay, now, s.params), nil
}

// GenerateStudySessions implements Service.
func (s *defaultService) GenerateStudySessions(
	subject *domain.Subject,
	opts Options,
	now time.Time,
) ([]Session, error) {
	return PlanSpaced(subject, opts, now, s.params)
}

// FocusStats implements Service.
func (s *defaultService) FocusStats(logs []*domain.FocusLog) []HourStat {
	return HourlyStats(logs)
}

// DefaultOptions implements Service.
func (s *defaultService) DefaultOptions() Options {
	return Options{
		DailyAvailability: s.params.DefaultDailyAvailability,
		SessionBuffer:     s.params.DefaultSessionBuffer,
	}
}
