package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridianapp/meridian/internal/constants"
	"github.com/meridianapp/meridian/internal/errors"
)

// ScheduledProject places a project on a calendar day. Schedule entries
// snapshot the title at scheduling time and reference entities by id only;
// they never affect the structural invariants of the hierarchy.
type ScheduledProject struct {
	// ID is the schedule entry id, distinct from the project id so the same
	// project can be scheduled on several days.
	ID string `json:"id"`

	// ProjectID references the scheduled project.
	ProjectID string `json:"project_id"`

	// Title is a display snapshot of the project title.
	Title string `json:"title"`

	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`
}

// ScheduledTask places a task on a calendar day.
type ScheduledTask struct {
	// ID is the schedule entry id.
	ID string `json:"id"`

	// TaskID references the scheduled task.
	TaskID string `json:"task_id"`

	// Title is a display snapshot of the task title.
	Title string `json:"title"`

	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`
}

// NewScheduledProject creates a schedule entry for the given project.
func NewScheduledProject(projectID, title, date string) *ScheduledProject {
	return &ScheduledProject{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Title:     title,
		Date:      date,
	}
}

// NewScheduledTask creates a schedule entry for the given task.
func NewScheduledTask(taskID, title, date string) *ScheduledTask {
	return &ScheduledTask{
		ID:     uuid.NewString(),
		TaskID: taskID,
		Title:  title,
		Date:   date,
	}
}

// Clone returns a copy of the schedule entry.
func (s *ScheduledProject) Clone() *ScheduledProject {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// Clone returns a copy of the schedule entry.
func (s *ScheduledTask) Clone() *ScheduledTask {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

// ValidateScheduledDate checks that the date is a real calendar day in
// YYYY-MM-DD form.
func ValidateScheduledDate(date string) error {
	if date == "" {
		return errors.Wrap(errors.ErrEmptyValue, "scheduled date")
	}
	if _, err := time.Parse(constants.ScheduledDateLayout, date); err != nil {
		return errors.Wrapf(errors.ErrInvalidDate, "scheduled date %q", date)
	}
	return nil
}
