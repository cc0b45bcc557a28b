// Package constants provides centralized constant values used throughout Meridian.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

// Directory names and paths used by Meridian for organizing data.
const (
	// MeridianHome is the hidden directory name where Meridian stores all its
	// data. This directory is created in the user's home directory.
	MeridianHome = ".meridian"

	// DataDir is the directory name where entity documents are stored.
	DataDir = "data"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Document file names. Each entity type is persisted as a single JSON
// document mapping entity id to its serialized fields, so any one document
// can be loaded independently of the others.
const (
	// ProjectsFileName is the JSON document holding all projects.
	ProjectsFileName = "projects.json"

	// PhasesFileName is the JSON document holding all phases.
	PhasesFileName = "phases.json"

	// TasksFileName is the JSON document holding all tasks. The legacy name
	// is kept so existing task files keep loading after upgrade.
	TasksFileName = "saved_tasks.json"

	// MindmapsFileName is the JSON document holding all mindmaps.
	MindmapsFileName = "mindmaps.json"

	// ScheduledProjectsFileName is the JSON document holding project schedule entries.
	ScheduledProjectsFileName = "scheduled_projects.json"

	// ScheduledTasksFileName is the JSON document holding task schedule entries.
	ScheduledTasksFileName = "scheduled_tasks.json"
)

// ConfigFileName is the YAML configuration file stored in the Meridian home.
const ConfigFileName = "config.yaml"

// CLILogFileName is the rotating log file written by the CLI.
const CLILogFileName = "meridian.log"

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days before rotated files are pruned.
	LogMaxAgeDays = 30

	// LogCompress controls gzip compression of rotated files.
	LogCompress = true
)

// ScheduledDateLayout is the calendar-day format used by schedule entries.
const ScheduledDateLayout = "2006-01-02"

// DefaultProjectColor is the display color assigned to new projects.
const DefaultProjectColor = "#3498db"
