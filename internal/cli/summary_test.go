package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianapp/meridian/internal/repository"
)

// TestRenderSummary verifies the listing includes every collection and the
// archived annotations.
func TestRenderSummary(t *testing.T) {
	out := renderSummary(repository.Summary{
		Projects:          3,
		ArchivedProjects:  1,
		Phases:            5,
		Tasks:             12,
		ArchivedTasks:     4,
		Mindmaps:          2,
		ScheduledProjects: 1,
	})

	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "Phases")
	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "Mindmaps")
	assert.Contains(t, out, "Scheduled projects")
	assert.Contains(t, out, "(1 archived)")
	assert.Contains(t, out, "(4 archived)")
}

// TestArchivedNote verifies zero counts render nothing.
func TestArchivedNote(t *testing.T) {
	assert.Empty(t, archivedNote(0))
	assert.Equal(t, "(2 archived)", archivedNote(2))
}
