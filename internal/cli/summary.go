package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/meridianapp/meridian/internal/config"
	"github.com/meridianapp/meridian/internal/repository"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	summaryLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	summaryCountStyle = lipgloss.NewStyle().Bold(true)
	summaryNoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

// AddSummaryCommand adds the summary command to the root command.
func AddSummaryCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show collection counts for the data store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			repo, err := openRepository(cmd.Context(), cfg, GetLogger())
			if err != nil {
				return err
			}
			cmd.Print(renderSummary(repo.Summarize()))
			return nil
		},
	}
	root.AddCommand(cmd)
}

// renderSummary formats the counts as an aligned two-column listing.
func renderSummary(s repository.Summary) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Meridian data store"))
	b.WriteString("\n\n")

	row := func(label string, count int, note string) {
		b.WriteString(summaryLabelStyle.Render(label))
		b.WriteString(summaryCountStyle.Render(fmt.Sprintf("%4d", count)))
		if note != "" {
			b.WriteString("  ")
			b.WriteString(summaryNoteStyle.Render(note))
		}
		b.WriteString("\n")
	}

	row("Projects", s.Projects, archivedNote(s.ArchivedProjects))
	row("Phases", s.Phases, "")
	row("Tasks", s.Tasks, archivedNote(s.ArchivedTasks))
	row("Mindmaps", s.Mindmaps, "")
	row("Scheduled projects", s.ScheduledProjects, "")
	row("Scheduled tasks", s.ScheduledTasks, "")
	return b.String()
}

func archivedNote(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("(%d archived)", n)
}
