package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a stage within a project. It owns an ordered list of task ids
// and carries a zero-based order among its sibling phases.
type Phase struct {
	// ID is the unique identifier for the phase (UUID string).
	ID string `json:"id"`

	// ProjectID is the owning project. Required.
	ProjectID string `json:"project_id"`

	// Name is the human-readable phase name.
	Name string `json:"name"`

	// Description is an optional longer summary.
	Description string `json:"description"`

	// TaskIDs is the ordered list of task ids in this phase. Every listed
	// task must carry this phase's id and this phase's project id.
	TaskIDs []string `json:"task_ids"`

	// Order is the zero-based position among sibling phases. Orders are
	// unique within a project; display ordering is ascending.
	Order int `json:"order"`

	// IsCurrent marks the single actively-in-progress phase of the project.
	IsCurrent bool `json:"is_current"`

	// Collapsed is persisted UI state for expandable sections. It carries
	// no semantic meaning for the data layer.
	Collapsed bool `json:"collapsed"`

	// StartDate is when the phase began (nil if not started).
	StartDate *time.Time `json:"start_date,omitempty"`

	// EndDate is the planned end of the phase (nil if unplanned).
	EndDate *time.Time `json:"end_date,omitempty"`

	// CompletionDate is when the phase finished (nil if not complete).
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

// NewPhase creates a phase with a fresh id for the given project.
func NewPhase(projectID, name string, order int) *Phase {
	return &Phase{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		TaskIDs:   []string{},
		Order:     order,
	}
}

// Clone returns a deep copy of the phase.
func (p *Phase) Clone() *Phase {
	if p == nil {
		return nil
	}
	cp := *p
	cp.TaskIDs = append([]string(nil), p.TaskIDs...)
	cp.StartDate = cloneTime(p.StartDate)
	cp.EndDate = cloneTime(p.EndDate)
	cp.CompletionDate = cloneTime(p.CompletionDate)
	return &cp
}

// HasTask reports whether the task id appears in the phase's task list.
func (p *Phase) HasTask(taskID string) bool {
	for _, id := range p.TaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// AddTask appends the task id to the phase's task list if not already present.
func (p *Phase) AddTask(taskID string) {
	if !p.HasTask(taskID) {
		p.TaskIDs = append(p.TaskIDs, taskID)
	}
}

// RemoveTask deletes the task id from the phase's task list, if present.
func (p *Phase) RemoveTask(taskID string) {
	out := p.TaskIDs[:0]
	for _, id := range p.TaskIDs {
		if id != taskID {
			out = append(out, id)
		}
	}
	p.TaskIDs = out
}

// Progress returns the completion percentage over the tasks listed in this
// phase. Dangling task ids are ignored. Zero tasks reports 0.0.
func (p *Phase) Progress(tasks map[string]*Task) float64 {
	total := 0
	completed := 0
	for _, id := range p.TaskIDs {
		t, ok := tasks[id]
		if !ok {
			continue
		}
		total++
		if t.Status == TaskStatusCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0.0
	}
	return float64(completed) / float64(total) * 100.0
}

// TaskCount returns the number of task ids listed in this phase.
func (p *Phase) TaskCount() int {
	return len(p.TaskIDs)
}

// CompletedTaskCount returns the number of listed tasks that are completed.
// Dangling task ids are ignored.
func (p *Phase) CompletedTaskCount(tasks map[string]*Task) int {
	completed := 0
	for _, id := range p.TaskIDs {
		if t, ok := tasks[id]; ok && t.Status == TaskStatusCompleted {
			completed++
		}
	}
	return completed
}
