package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/domain"
	"github.com/phrazzld/studyplan-api/internal/domain/planner"
	"gopkg.in/yaml.v3"
)

// adaptivePlan is the YAML input of the adaptive command.
type adaptivePlan struct {
	Preferences struct {
		StudyHoursPerDay   float64 `yaml:"study_hours_per_day"`
		PreferredStudyTime string  `yaml:"preferred_study_time"`
	} `yaml:"preferences"`
	Tasks     []planTask     `yaml:"tasks"`
	FocusLogs []planFocusLog `yaml:"focus_logs"`
}

type planTask struct {
	Subject   string     `yaml:"subject"`
	Title     string     `yaml:"title"`
	TaskType  string     `yaml:"task_type"`
	Duration  float64    `yaml:"duration"`
	Deadline  *time.Time `yaml:"deadline"`
	Completed bool       `yaml:"completed"`
}

type planFocusLog struct {
	TimeOfDay  int       `yaml:"time_of_day"`
	FocusScore int       `yaml:"focus_score"`
	Date       time.Time `yaml:"date"`
}

// spacedPlan is the YAML input of the spaced command.
type spacedPlan struct {
	Name              string    `yaml:"name"`
	Description       string    `yaml:"description"`
	Difficulty        int       `yaml:"difficulty"`
	TotalHours        float64   `yaml:"total_hours"`
	ExamDate          time.Time `yaml:"exam_date"`
	DailyAvailability float64   `yaml:"daily_availability"`
}

// decodeFile reads YAML from path, or stdin when path is "-".
func decodeFile(path string, stdin io.Reader, out any) error {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: empty plan file", path)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// offlineUser owns every record built from a plan file.
var offlineUser = uuid.MustParse("00000000-0000-4000-8000-000000000001")

func (p adaptivePlan) build() ([]*domain.Task, []*domain.FocusLog, domain.Preferences, error) {
	prefs := domain.DefaultPreferences()
	if p.Preferences.StudyHoursPerDay != 0 {
		prefs.StudyHoursPerDay = p.Preferences.StudyHoursPerDay
	}
	if p.Preferences.PreferredStudyTime != "" {
		prefs.PreferredStudyTime = domain.StudyTime(p.Preferences.PreferredStudyTime)
	}
	if err := prefs.Validate(); err != nil {
		return nil, nil, prefs, fmt.Errorf("preferences: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(p.Tasks))
	for i, pt := range p.Tasks {
		task, err := domain.NewTask(offlineUser, pt.Subject, pt.Title, domain.TaskType(pt.TaskType), pt.Duration, pt.Deadline)
		if err != nil {
			return nil, nil, prefs, fmt.Errorf("task %d: %w", i+1, err)
		}
		task.Completed = pt.Completed
		tasks = append(tasks, task)
	}

	logs := make([]*domain.FocusLog, 0, len(p.FocusLogs))
	for i, pl := range p.FocusLogs {
		log, err := domain.NewFocusLog(offlineUser, pl.FocusScore, pl.TimeOfDay, "", pl.Date)
		if err != nil {
			return nil, nil, prefs, fmt.Errorf("focus log %d: %w", i+1, err)
		}
		logs = append(logs, log)
	}
	return tasks, logs, prefs, nil
}

func (p spacedPlan) build() (*domain.Subject, planner.Options, error) {
	subject, err := domain.NewSubject(offlineUser, p.Name, p.Description, p.Difficulty, p.TotalHours, p.ExamDate, "")
	if err != nil {
		return nil, planner.Options{}, fmt.Errorf("subject: %w", err)
	}
	return subject, planner.Options{DailyAvailability: p.DailyAvailability}, nil
}
