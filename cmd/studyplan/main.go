// Command studyplan runs the study planner against local YAML files without
// a database or server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/phrazzld/studyplan-api/internal/domain/planner"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(planner.NewDefaultService(), time.Now).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(engine planner.Service, clock func() time.Time) *cobra.Command {
	var nowFlag string

	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Generate study schedules from YAML plan files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&nowFlag, "now", "", "plan as if the current time were this RFC3339 timestamp")

	// Focus hours are wall-clock hours, so now keeps its location.
	now := func() (time.Time, error) {
		if nowFlag == "" {
			return clock(), nil
		}
		t, err := time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --now: %w", err)
		}
		return t, nil
	}

	root.AddCommand(newAdaptiveCmd(engine, now))
	root.AddCommand(newSpacedCmd(engine, now))
	return root
}

func newAdaptiveCmd(engine planner.Service, now func() (time.Time, error)) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "adaptive",
		Short: "Place pending tasks into the best focus hours of the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := now()
			if err != nil {
				return err
			}
			var plan adaptivePlan
			if err := decodeFile(file, cmd.InOrStdin(), &plan); err != nil {
				return err
			}
			tasks, logs, prefs, err := plan.build()
			if err != nil {
				return err
			}

			sessions, err := engine.GenerateAdaptiveSchedule(tasks, logs, prefs, start)
			if err != nil {
				return err
			}
			return renderSessions(cmd.OutOrStdout(), "Adaptive plan from "+start.Format(time.DateOnly), sessions)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "plan file with preferences, tasks and focus_logs (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newSpacedCmd(engine planner.Service, now func() (time.Time, error)) *cobra.Command {
	var (
		file         string
		availability float64
	)
	cmd := &cobra.Command{
		Use:   "spaced",
		Short: "Spread one subject's study hours over the days before its exam",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := now()
			if err != nil {
				return err
			}
			var plan spacedPlan
			if err := decodeFile(file, cmd.InOrStdin(), &plan); err != nil {
				return err
			}
			subject, opts, err := plan.build()
			if err != nil {
				return err
			}

			switch {
			case cmd.Flags().Changed("availability"):
				opts.DailyAvailability = availability
			case opts.DailyAvailability == 0:
				opts.DailyAvailability = engine.DefaultOptions().DailyAvailability
			}

			sessions, err := engine.GenerateStudySessions(subject, opts, start)
			if err != nil {
				return err
			}
			heading := fmt.Sprintf("%s: exam %s, difficulty %d", subject.Name,
				subject.ExamDate.Format(time.DateOnly), subject.Difficulty)
			return renderSessions(cmd.OutOrStdout(), heading, sessions)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "subject file (- for stdin)")
	cmd.Flags().Float64Var(&availability, "availability", 0, "hours available per day (overrides the file)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
