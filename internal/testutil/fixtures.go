// Package testutil provides fixture builders shared by tests.
package testutil

import (
	"time"

	"github.com/meridianapp/meridian/internal/domain"
)

// FixtureTime is the fixed timestamp used by fixture builders so test
// output stays deterministic.
var FixtureTime = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectArchived() ProjectOption {
	return func(p *domain.Project) {
		p.Archived = true
	}
}

// NewTestProject builds a project with deterministic defaults.
func NewTestProject(title string, opts ...ProjectOption) *domain.Project {
	p := domain.NewProject(title, FixtureTime)
	p.Status = domain.ProjectStatusActive
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithTaskCategory(c domain.TaskCategory) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func InProject(projectID string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = projectID
	}
}

func InPhase(ph *domain.Phase) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = ph.ProjectID
		t.PhaseID = ph.ID
	}
}

// NewTestTask builds a task with deterministic defaults.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := domain.NewTask(title, FixtureTime)
	t.Category = domain.CategoryFeature
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestPhase builds a phase owned by the project.
func NewTestPhase(projectID, name string, order int) *domain.Phase {
	return domain.NewPhase(projectID, name, order)
}

// NewTestMindmap builds a mindmap with deterministic defaults.
func NewTestMindmap(title string) *domain.Mindmap {
	return domain.NewMindmap(title, FixtureTime)
}
