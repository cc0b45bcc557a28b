package domain

// ProjectStatus represents the lifecycle state of a project.
// The string values are the display names persisted in the projects document.
type ProjectStatus string

// Project status constants define the valid states a project can be in.
const (
	// ProjectStatusPlanning indicates a project still being scoped.
	ProjectStatusPlanning ProjectStatus = "Planning"

	// ProjectStatusActive indicates a project with work in flight.
	ProjectStatusActive ProjectStatus = "Active"

	// ProjectStatusOnHold indicates a project that is paused.
	ProjectStatusOnHold ProjectStatus = "On Hold"

	// ProjectStatusCompleted indicates a finished project.
	ProjectStatusCompleted ProjectStatus = "Completed"

	// ProjectStatusCancelled indicates a project that was abandoned.
	ProjectStatusCancelled ProjectStatus = "Cancelled"
)

// String returns the string representation of the ProjectStatus.
func (s ProjectStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	default:
		return false
	}
}

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Task status constants define the valid states a task can be in.
const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusInReview   TaskStatus = "In Review"
	TaskStatusBlocked    TaskStatus = "Blocked"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusOnHold     TaskStatus = "On Hold"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// AllTaskStatuses returns every task status in display order.
// Used for status breakdown maps so callers always see every bucket.
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusNotStarted,
		TaskStatusInProgress,
		TaskStatusInReview,
		TaskStatusBlocked,
		TaskStatusCompleted,
		TaskStatusOnHold,
		TaskStatusCancelled,
	}
}

// String returns the string representation of the TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a valid value.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusInReview,
		TaskStatusBlocked, TaskStatusCompleted, TaskStatusOnHold, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// Priority represents the urgency of a task or project.
// The same enum is shared by both entity types.
type Priority string

// Priority constants define the valid urgency levels.
const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
	PriorityTrivial  Priority = "Trivial"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityTrivial:
		return true
	default:
		return false
	}
}

// Rank returns a numeric weight for sorting, highest urgency first.
// Unknown priorities rank below Trivial.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 5
	case PriorityHigh:
		return 4
	case PriorityMedium:
		return 3
	case PriorityLow:
		return 2
	case PriorityTrivial:
		return 1
	default:
		return 0
	}
}

// TaskCategory classifies a task for display grouping. Categories are
// user-extensible through configuration, so unknown values are accepted
// on load; only the built-in set is enumerated here.
type TaskCategory string

// Built-in task categories.
const (
	CategoryFeature       TaskCategory = "Feature"
	CategoryBug           TaskCategory = "Bug"
	CategoryMaintenance   TaskCategory = "Maintenance"
	CategoryDocumentation TaskCategory = "Documentation"
	CategoryResearch      TaskCategory = "Research"
	CategoryMeeting       TaskCategory = "Meeting"
	CategoryArchived      TaskCategory = "Archived"
)

// String returns the string representation of the TaskCategory.
func (c TaskCategory) String() string {
	return string(c)
}
