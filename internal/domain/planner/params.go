package planner

import (
	"fmt"

	"github.com/phrazzld/studyplan-api/internal/domain"
)

// Params holds every constant table and tunable the engine reads.
type Params struct {
	// Task ordering
	LoadWeights map[domain.TaskType]int

	// Adaptive allocation
	DefaultFocus            float64
	HorizonDays             int
	MaxSessionHours         float64
	DefaultStudyHoursPerDay float64
	SkipElapsedHours        bool

	// Spaced planning
	HoursPerBaseSession         float64
	DifficultyMultipliers       map[int]float64
	DefaultDifficultyMultiplier float64
	SlotHours                   float64
	MaxSpacedSessionHours       float64
	MinSessionCount             int
	MinSessionHours             float64
	DefaultDailyAvailability    float64
	DefaultSessionBuffer        float64
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the defaults.
type ParamsConfig struct {
	HorizonDays              int
	MaxSessionHours          float64
	DefaultStudyHoursPerDay  float64
	DefaultDailyAvailability float64
	MinSessionHours          float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		LoadWeights: map[domain.TaskType]int{
			domain.TaskTypeHeavy:  5,
			domain.TaskTypeMedium: 3,
			domain.TaskTypeLight:  2,
			domain.TaskTypeReview: 1,
		},

		// Midpoint of the 1-5 focus scale
		DefaultFocus:            3.0,
		HorizonDays:             7,
		MaxSessionHours:         2,
		DefaultStudyHoursPerDay: domain.DefaultStudyHoursPerDay,
		SkipElapsedHours:        true,

		HoursPerBaseSession: 1.5,
		DifficultyMultipliers: map[int]float64{
			1: 1.0,
			2: 1.2,
			3: 1.5,
			4: 1.8,
			5: 2.2,
		},
		DefaultDifficultyMultiplier: 1.5,
		SlotHours:                   0.5,
		MaxSpacedSessionHours:       3,
		MinSessionCount:             2,
		MinSessionHours:             0.5,
		DefaultDailyAvailability:    3,
		DefaultSessionBuffer:        0.5,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.HorizonDays > 0 {
		params.HorizonDays = config.HorizonDays
	}
	if config.MaxSessionHours > 0 {
		params.MaxSessionHours = config.MaxSessionHours
	}
	if config.DefaultStudyHoursPerDay > 0 {
		params.DefaultStudyHoursPerDay = config.DefaultStudyHoursPerDay
	}
	if config.DefaultDailyAvailability > 0 {
		params.DefaultDailyAvailability = config.DefaultDailyAvailability
	}
	if config.MinSessionHours > 0 {
		params.MinSessionHours = config.MinSessionHours
	}

	return params
}

// Validate checks that the parameters cannot make the engine divide by zero or loop forever.
func (p *Params) Validate() error {
	switch {
	case p.HorizonDays <= 0:
		return fmt.Errorf("%w: horizon days must be positive", ErrInvalidParams)
	case p.MaxSessionHours <= 0:
		return fmt.Errorf("%w: max session hours must be positive", ErrInvalidParams)
	case p.DefaultStudyHoursPerDay <= 0:
		return fmt.Errorf("%w: default study hours per day must be positive", ErrInvalidParams)
	case p.HoursPerBaseSession <= 0:
		return fmt.Errorf("%w: hours per base session must be positive", ErrInvalidParams)
	case p.SlotHours <= 0:
		return fmt.Errorf("%w: slot hours must be positive", ErrInvalidParams)
	case p.MaxSpacedSessionHours <= 0:
		return fmt.Errorf("%w: max spaced session hours must be positive", ErrInvalidParams)
	case p.DefaultDailyAvailability <= 0:
		return fmt.Errorf("%w: default daily availability must be positive", ErrInvalidParams)
	case p.MinSessionCount < 1:
		return fmt.Errorf("%w: min session count must be at least 1", ErrInvalidParams)
	}
	return nil
}

// loadWeight returns the prioritisation weight for a task type; unknown types weigh nothing.
func (p *Params) loadWeight(tt domain.TaskType) int {
	return p.LoadWeights[tt]
}

// difficultyMultiplier returns the session multiplier for a difficulty rating.
func (p *Params) difficultyMultiplier(difficulty int) float64 {
	if m, ok := p.DifficultyMultipliers[difficulty]; ok {
		return m
	}
	return p.DefaultDifficultyMultiplier
}
