package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single unit of work. A task may float freely, belong to a
// project only, or sit inside a phase. A task with a phase_id is implicitly
// associated with that phase's project, and the project_id field must match
// whenever the task moves.
type Task struct {
	// ID is the unique identifier for the task (UUID string).
	ID string `json:"id"`

	// ProjectID is the owning project, empty for loose tasks.
	ProjectID string `json:"project_id,omitempty"`

	// PhaseID is the containing phase, empty when the task is not phased.
	// When set, ProjectID must equal the phase's project id.
	PhaseID string `json:"phase_id,omitempty"`

	// Title is the human-readable task name.
	Title string `json:"title"`

	// Description is an optional longer summary.
	Description string `json:"description"`

	// Category groups the task for display. User-extensible; unknown
	// values are accepted on load.
	Category TaskCategory `json:"category"`

	// Status is the lifecycle state of the task.
	Status TaskStatus `json:"status"`

	// Priority is the urgency level, shared with projects.
	Priority Priority `json:"priority"`

	// PercentageComplete is the manual completion estimate (0-100).
	PercentageComplete int `json:"percentage_complete"`

	// EstimatedHours is the planned effort.
	EstimatedHours float64 `json:"estimated_hours"`

	// ActualHours is the recorded effort.
	ActualHours float64 `json:"actual_hours"`

	// Assignee is the user the task is assigned to, if any.
	Assignee string `json:"assignee,omitempty"`

	// Creator is the user who created the task, if recorded.
	Creator string `json:"creator,omitempty"`

	// CreationDate is when the task was created.
	CreationDate time.Time `json:"creation_date"`

	// DueDate is when the task is due (nil if none).
	DueDate *time.Time `json:"due_date,omitempty"`

	// StartDate is when work began (nil if not started).
	StartDate *time.Time `json:"start_date,omitempty"`

	// CompletionDate is when the task finished (nil if not complete).
	CompletionDate *time.Time `json:"completion_date,omitempty"`

	// ReminderDate is an optional reminder timestamp.
	ReminderDate *time.Time `json:"reminder_date,omitempty"`

	// ModifiedDate is when the task was last saved.
	ModifiedDate time.Time `json:"modified_date"`

	// Dependencies lists ids of tasks that must complete first.
	Dependencies []string `json:"dependencies,omitempty"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`

	// Checklist holds ordered sub-items with their done state.
	Checklist []ChecklistItem `json:"checklist,omitempty"`

	// Archived hides the task from default views. Completed tasks are
	// archived automatically on save.
	Archived bool `json:"archived"`
}

// ChecklistItem is a single entry in a task's checklist.
type ChecklistItem struct {
	// Text is the item label.
	Text string `json:"text"`

	// Checked marks the item done.
	Checked bool `json:"checked"`
}

// NewTask creates a task with a fresh id and default field values.
func NewTask(title string, now time.Time) *Task {
	return &Task{
		ID:           uuid.NewString(),
		Title:        title,
		Category:     CategoryFeature,
		Status:       TaskStatusNotStarted,
		Priority:     PriorityMedium,
		CreationDate: now,
		ModifiedDate: now,
	}
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Dependencies = append([]string(nil), t.Dependencies...)
	cp.Tags = append([]string(nil), t.Tags...)
	cp.Checklist = append([]ChecklistItem(nil), t.Checklist...)
	cp.DueDate = cloneTime(t.DueDate)
	cp.StartDate = cloneTime(t.StartDate)
	cp.CompletionDate = cloneTime(t.CompletionDate)
	cp.ReminderDate = cloneTime(t.ReminderDate)
	return &cp
}

// CheckArchived archives and recategorizes the task when it is completed.
// Called on every save so completed tasks never linger in active views.
func (t *Task) CheckArchived() {
	if t.Status == TaskStatusCompleted {
		t.Archived = true
		t.Category = CategoryArchived
	}
}

// ChecklistProgress returns (completed, total) over the checklist items.
func (t *Task) ChecklistProgress() (completed, total int) {
	total = len(t.Checklist)
	for _, item := range t.Checklist {
		if item.Checked {
			completed++
		}
	}
	return completed, total
}

// ClearHierarchy detaches the task from its project and phase. Used by
// cascade deletes, which clear references rather than deleting tasks.
func (t *Task) ClearHierarchy() {
	t.ProjectID = ""
	t.PhaseID = ""
}
