package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/meridianapp/meridian/internal/config"
	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/repository"
)

var (
	projectTitleStyle    = lipgloss.NewStyle().Bold(true)
	projectStatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	projectProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
)

// AddProjectsCommand adds the projects command to the root command.
func AddProjectsCommand(root *cobra.Command) {
	var showArchived bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects with their status and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			repo, err := openRepository(cmd.Context(), cfg, GetLogger())
			if err != nil {
				return err
			}
			cmd.Print(renderProjects(repo, showArchived))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showArchived, "archived", false, "include archived projects")
	root.AddCommand(cmd)
}

// renderProjects formats one line per project: title, status, progress and
// current phase.
func renderProjects(repo *repository.Repository, showArchived bool) string {
	projects := repo.GetProjects()
	tasks := repo.GetTasks()
	phases := repo.GetPhases()

	list := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Archived && !showArchived {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreationDate.Equal(list[j].CreationDate) {
			return list[i].CreationDate.Before(list[j].CreationDate)
		}
		return list[i].ID < list[j].ID
	})

	if len(list) == 0 {
		return "no projects\n"
	}

	var b strings.Builder
	for _, p := range list {
		b.WriteString(projectTitleStyle.Render(p.Title))
		b.WriteString("  ")
		b.WriteString(projectStatusStyle.Render(string(p.Status)))
		b.WriteString("  ")
		b.WriteString(projectProgressStyle.Render(fmt.Sprintf("%.1f%%", p.Progress(tasks))))
		if current := p.CurrentPhase(phases); current != nil {
			b.WriteString("  ")
			b.WriteString(projectStatusStyle.Render("phase: " + current.Name))
		}
		b.WriteString("\n")
	}
	return b.String()
}
