package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTask verifies factory defaults.
func TestNewTask(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask("Ship release notes", now)

	require.NotEmpty(t, task.ID)
	assert.Equal(t, "Ship release notes", task.Title)
	assert.Equal(t, TaskStatusNotStarted, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, now, task.CreationDate)
	assert.Empty(t, task.ProjectID)
	assert.Empty(t, task.PhaseID)
	assert.False(t, task.Archived)
}

// TestTask_CheckArchived verifies completed tasks move to the archive.
func TestTask_CheckArchived(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completed task is archived", func(t *testing.T) {
		task := NewTask("done", now)
		task.Category = CategoryFeature
		task.Status = TaskStatusCompleted

		task.CheckArchived()
		assert.True(t, task.Archived)
		assert.Equal(t, CategoryArchived, task.Category)
	})

	t.Run("in progress task is untouched", func(t *testing.T) {
		task := NewTask("ongoing", now)
		task.Category = CategoryBug
		task.Status = TaskStatusInProgress

		task.CheckArchived()
		assert.False(t, task.Archived)
		assert.Equal(t, CategoryBug, task.Category)
	})
}

// TestTask_Clone verifies the copy shares no mutable state.
func TestTask_Clone(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)

	task := NewTask("original", now)
	task.Dependencies = []string{"dep-1"}
	task.Tags = []string{"infra"}
	task.Checklist = []ChecklistItem{{Text: "step one"}}
	task.DueDate = &due

	cp := task.Clone()
	require.NotSame(t, task, cp)
	assert.Equal(t, task, cp)

	cp.Dependencies[0] = "mutated"
	cp.Tags[0] = "mutated"
	cp.Checklist[0].Checked = true
	*cp.DueDate = cp.DueDate.Add(time.Hour)

	assert.Equal(t, "dep-1", task.Dependencies[0])
	assert.Equal(t, "infra", task.Tags[0])
	assert.False(t, task.Checklist[0].Checked)
	assert.Equal(t, due, *task.DueDate)
}

// TestTask_ChecklistProgress verifies checklist counting.
func TestTask_ChecklistProgress(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask("listed", now)
	task.Checklist = []ChecklistItem{
		{Text: "a", Checked: true},
		{Text: "b"},
		{Text: "c", Checked: true},
	}

	completed, total := task.ChecklistProgress()
	assert.Equal(t, 2, completed)
	assert.Equal(t, 3, total)
}

// TestTask_ClearHierarchy verifies project and phase references are dropped.
func TestTask_ClearHierarchy(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask("attached", now)
	task.ProjectID = "proj-1"
	task.PhaseID = "phase-1"

	task.ClearHierarchy()
	assert.Empty(t, task.ProjectID)
	assert.Empty(t, task.PhaseID)
}
