// Package errors provides centralized error handling for Meridian.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrProjectNotFound indicates the referenced project id does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrPhaseNotFound indicates the referenced phase id does not exist.
	ErrPhaseNotFound = errors.New("phase not found")

	// ErrTaskNotFound indicates the referenced task id does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrMindmapNotFound indicates the referenced mindmap id does not exist.
	ErrMindmapNotFound = errors.New("mindmap not found")

	// ErrScheduleNotFound indicates the referenced schedule entry does not exist.
	ErrScheduleNotFound = errors.New("schedule entry not found")

	// ErrValidation indicates a requested mutation would violate a structural
	// invariant of the entity graph. The wrapping message names the rule.
	ErrValidation = errors.New("validation failed")

	// ErrDanglingReference indicates an id field points at an entity that does
	// not exist or belongs to a different parent.
	ErrDanglingReference = errors.New("dangling entity reference")

	// ErrDuplicatePhaseOrder indicates two sibling phases carry the same order
	// value. Sibling orders must be unique within a project.
	ErrDuplicatePhaseOrder = errors.New("duplicate phase order within project")

	// ErrCurrentPhaseConflict indicates more than one phase of a project is
	// marked current, or current_phase_id names a non-current phase.
	ErrCurrentPhaseConflict = errors.New("conflicting current phase")

	// ErrMindmapLinkAsymmetric indicates a project/mindmap link where only one
	// side of the bi-directional pointer pair is set.
	ErrMindmapLinkAsymmetric = errors.New("mindmap link is one-sided")

	// ErrCorruptRecord indicates a single stored record failed to parse.
	// Corrupt records are logged and skipped during load, never surfaced.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidDate indicates a scheduled date is not a valid YYYY-MM-DD day.
	ErrInvalidDate = errors.New("invalid date")

	// ErrLockTimeout indicates a file lock could not be acquired within the
	// timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidLog indicates an invalid logging configuration value.
	ErrConfigInvalidLog = errors.New("invalid logging configuration")

	// ErrConfigInvalidData indicates an invalid data directory configuration value.
	ErrConfigInvalidData = errors.New("invalid data configuration")
)
