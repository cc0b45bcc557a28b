// Package domain provides the entity model for the Meridian project hierarchy.
// The hierarchy is Project → Phase → Task, with mindmaps and schedule entries
// linked by id. Entities hold only id references to each other, never live
// pointers, so the graph has no ownership cycles.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library, uuid
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case to match the on-disk documents.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridianapp/meridian/internal/constants"
)

// Project is the top-level container of the hierarchy. It owns an ordered
// list of phase ids and may be linked to a single mindmap.
//
// Example JSON representation:
//
//	{
//	    "id": "2f1f6c0a-…",
//	    "title": "Furnace rebuild",
//	    "phases": ["a3…", "b4…"],
//	    "mindmap_id": null,
//	    "current_phase_id": "a3…",
//	    "creation_date": "2025-11-02T09:30:00Z",
//	    "status": "Active",
//	    "priority": "High",
//	    "color": "#3498db",
//	    "archived": false
//	}
type Project struct {
	// ID is the unique identifier for the project (UUID string).
	ID string `json:"id"`

	// Title is the human-readable project name.
	Title string `json:"title"`

	// Description is an optional longer summary.
	Description string `json:"description"`

	// Phases is the ordered list of phase ids owned by this project.
	// Every listed phase must carry this project's id in its project_id field.
	Phases []string `json:"phases"`

	// MindmapID links this project to a mindmap. The link is bi-directional:
	// the mindmap's project_id must point back at this project.
	MindmapID string `json:"mindmap_id,omitempty"`

	// CurrentPhaseID names the single phase marked as actively in progress,
	// or is empty when no phase is current.
	CurrentPhaseID string `json:"current_phase_id,omitempty"`

	// CreationDate is when the project was created.
	CreationDate time.Time `json:"creation_date"`

	// StartDate is when work began (nil if not started).
	StartDate *time.Time `json:"start_date,omitempty"`

	// TargetCompletion is the planned finish date (nil if unplanned).
	TargetCompletion *time.Time `json:"target_completion,omitempty"`

	// CompletionDate is when the project finished (nil if not complete).
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	// Status is the lifecycle state of the project.
	Status ProjectStatus `json:"status"`

	// Priority is the urgency level, shared with tasks.
	Priority Priority `json:"priority"`

	// Color is a display token (hex string) used by callers for styling.
	Color string `json:"color"`

	// Archived hides the project from default views without deleting it.
	Archived bool `json:"archived"`
}

// NewProject creates a project with a fresh id and default field values.
// The caller supplies the creation instant, typically from a Clock.
func NewProject(title string, now time.Time) *Project {
	return &Project{
		ID:           uuid.NewString(),
		Title:        title,
		Phases:       []string{},
		CreationDate: now,
		Status:       ProjectStatusPlanning,
		Priority:     PriorityMedium,
		Color:        constants.DefaultProjectColor,
	}
}

// Clone returns a deep copy of the project. Mutating the copy never
// affects repository state.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Phases = append([]string(nil), p.Phases...)
	cp.StartDate = cloneTime(p.StartDate)
	cp.TargetCompletion = cloneTime(p.TargetCompletion)
	cp.CompletionDate = cloneTime(p.CompletionDate)
	return &cp
}

// HasPhase reports whether the phase id appears in the project's phase list.
func (p *Project) HasPhase(phaseID string) bool {
	for _, id := range p.Phases {
		if id == phaseID {
			return true
		}
	}
	return false
}

// RemovePhase deletes the phase id from the project's phase list, if present,
// and clears the current-phase pointer when it referenced the removed phase.
func (p *Project) RemovePhase(phaseID string) {
	out := p.Phases[:0]
	for _, id := range p.Phases {
		if id != phaseID {
			out = append(out, id)
		}
	}
	p.Phases = out
	if p.CurrentPhaseID == phaseID {
		p.CurrentPhaseID = ""
	}
}

// Progress returns the completion percentage of the project over every task
// whose project_id matches, including loose tasks not assigned to any phase.
// A project with zero tasks reports 0.0, not an error and not 100.
func (p *Project) Progress(tasks map[string]*Task) float64 {
	total, completed := p.TaskCounts(tasks)
	if total == 0 {
		return 0.0
	}
	return float64(completed) / float64(total) * 100.0
}

// TaskCounts returns (total, completed) counts over every task whose
// project_id matches this project.
func (p *Project) TaskCounts(tasks map[string]*Task) (total, completed int) {
	for _, t := range tasks {
		if t.ProjectID != p.ID {
			continue
		}
		total++
		if t.Status == TaskStatusCompleted {
			completed++
		}
	}
	return total, completed
}

// TotalTasks returns the number of tasks belonging to this project.
func (p *Project) TotalTasks(tasks map[string]*Task) int {
	total, _ := p.TaskCounts(tasks)
	return total
}

// CompletedTasks returns the number of completed tasks in this project.
func (p *Project) CompletedTasks(tasks map[string]*Task) int {
	_, completed := p.TaskCounts(tasks)
	return completed
}

// TasksByStatus returns the task count breakdown by status. Every status
// appears in the result, including zero buckets.
func (p *Project) TasksByStatus(tasks map[string]*Task) map[TaskStatus]int {
	counts := make(map[TaskStatus]int, len(AllTaskStatuses()))
	for _, s := range AllTaskStatuses() {
		counts[s] = 0
	}
	for _, t := range tasks {
		if t.ProjectID == p.ID {
			counts[t.Status]++
		}
	}
	return counts
}

// CurrentPhase resolves current_phase_id against the phase collection.
// Returns nil when unset or dangling.
func (p *Project) CurrentPhase(phases map[string]*Phase) *Phase {
	if p.CurrentPhaseID == "" {
		return nil
	}
	return phases[p.CurrentPhaseID]
}

// cloneTime copies an optional timestamp.
func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
