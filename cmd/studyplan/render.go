package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/phrazzld/studyplan-api/internal/domain/planner"
)

var (
	sapphire = lipgloss.Color("#74c7ec")
	surface  = lipgloss.Color("#45475a")
	peach    = lipgloss.Color("#fab387")
	subtext  = lipgloss.Color("#a6adc8")

	titleStyle  = lipgloss.NewStyle().Foreground(sapphire).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(sapphire).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	finalStyle  = cellStyle.Foreground(peach).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(subtext)
)

// renderSessions writes the sessions as a table followed by a summary line.
func renderSessions(w io.Writer, heading string, sessions []planner.Session) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No sessions could be scheduled."))
		return err
	}

	rows := make([][]string, 0, len(sessions))
	for i, s := range sessions {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Date.Format("Mon 2006-01-02 15:04"),
			s.Title,
			s.Subject,
			strconv.FormatFloat(s.Duration, 'f', 2, 64) + "h",
			sessionNote(s),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(surface)).
		Headers("#", "DATE", "TITLE", "SUBJECT", "HOURS", "NOTES").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(sessions) && sessions[row].IsFinalReview():
				return finalStyle
			default:
				return cellStyle
			}
		})

	noun := "sessions"
	if len(sessions) == 1 {
		noun = "session"
	}
	summary := fmt.Sprintf("%d %s, %.2f hours", len(sessions), noun, planner.TotalHours(sessions))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", titleStyle.Render(heading), t.Render(), mutedStyle.Render(summary))
	return err
}

func sessionNote(s planner.Session) string {
	if s.Notes != "" {
		return s.Notes
	}
	if s.FocusLevel != nil {
		return planner.FocusLevelNote(*s.FocusLevel)
	}
	return ""
}
