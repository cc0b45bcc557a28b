package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProjectStatus_IsValid verifies the accepted lifecycle values.
func TestProjectStatus_IsValid(t *testing.T) {
	for _, s := range []ProjectStatus{
		ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled,
	} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, ProjectStatus("Paused").IsValid())
	assert.False(t, ProjectStatus("").IsValid())
}

// TestTaskStatus_IsValid verifies the accepted task states.
func TestTaskStatus_IsValid(t *testing.T) {
	for _, s := range AllTaskStatuses() {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, TaskStatus("Done").IsValid())
	assert.Len(t, AllTaskStatuses(), 7)
}

// TestPriority_Rank verifies urgency ordering.
func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, PriorityLow.Rank(), PriorityTrivial.Rank())
	assert.Equal(t, 0, Priority("unknown").Rank())
	assert.False(t, Priority("Severe").IsValid())
}
