package relation

import (
	"fmt"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
)

// invalid builds a validation failure that matches both errors.ErrValidation
// and the specific rule sentinel under errors.Is.
func invalid(rule error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), errors.ErrValidation, rule)
}

// ValidateProject checks the structural rules a project must satisfy before
// it may be saved: every phase reference resolves to a phase owned by this
// project, the current-phase pointer is consistent, and any mindmap link is
// set on both sides.
func ValidateProject(p *domain.Project, phases map[string]*domain.Phase, mindmaps map[string]*domain.Mindmap) error {
	if p == nil {
		return invalid(errors.ErrEmptyValue, "project is nil")
	}
	if p.Title == "" {
		return invalid(errors.ErrEmptyValue, "project %s: title", p.ID)
	}
	if !p.Status.IsValid() {
		return invalid(errors.ErrEmptyValue, "project %s: status %q", p.ID, p.Status)
	}
	if !p.Priority.IsValid() {
		return invalid(errors.ErrEmptyValue, "project %s: priority %q", p.ID, p.Priority)
	}

	for _, phaseID := range p.Phases {
		ph, ok := phases[phaseID]
		if !ok {
			return invalid(errors.ErrDanglingReference, "project %s: phase %s does not exist", p.ID, phaseID)
		}
		if ph.ProjectID != p.ID {
			return invalid(errors.ErrDanglingReference, "project %s: phase %s belongs to project %s", p.ID, phaseID, ph.ProjectID)
		}
	}

	if err := validateCurrentPhase(p, phases); err != nil {
		return err
	}
	return validateMindmapLink(p, mindmaps)
}

func validateCurrentPhase(p *domain.Project, phases map[string]*domain.Phase) error {
	var current []string
	for _, phaseID := range p.Phases {
		if ph, ok := phases[phaseID]; ok && ph.IsCurrent {
			current = append(current, phaseID)
		}
	}
	if len(current) > 1 {
		return invalid(errors.ErrCurrentPhaseConflict, "project %s: %d phases marked current", p.ID, len(current))
	}

	if p.CurrentPhaseID == "" {
		if len(current) == 1 {
			return invalid(errors.ErrCurrentPhaseConflict, "project %s: phase %s is current but current_phase_id is unset", p.ID, current[0])
		}
		return nil
	}

	ph, ok := phases[p.CurrentPhaseID]
	if !ok || !p.HasPhase(p.CurrentPhaseID) {
		return invalid(errors.ErrDanglingReference, "project %s: current phase %s does not exist", p.ID, p.CurrentPhaseID)
	}
	if !ph.IsCurrent {
		return invalid(errors.ErrCurrentPhaseConflict, "project %s: current phase %s is not marked current", p.ID, p.CurrentPhaseID)
	}
	return nil
}

func validateMindmapLink(p *domain.Project, mindmaps map[string]*domain.Mindmap) error {
	if p.MindmapID != "" {
		m, ok := mindmaps[p.MindmapID]
		if !ok {
			return invalid(errors.ErrDanglingReference, "project %s: mindmap %s does not exist", p.ID, p.MindmapID)
		}
		if m.ProjectID != p.ID {
			return invalid(errors.ErrMindmapLinkAsymmetric, "project %s: mindmap %s points at project %q", p.ID, p.MindmapID, m.ProjectID)
		}
		return nil
	}
	for _, m := range mindmaps {
		if m.ProjectID == p.ID {
			return invalid(errors.ErrMindmapLinkAsymmetric, "project %s: mindmap %s points here but mindmap_id is unset", p.ID, m.ID)
		}
	}
	return nil
}

// ValidatePhase checks the rules a phase must satisfy before it may be
// saved: the owning project exists, the order value is unique among sibling
// phases, at most one sibling is current, and every task reference resolves
// to a task attached to this phase.
func ValidatePhase(ph *domain.Phase, projects map[string]*domain.Project, phases map[string]*domain.Phase, tasks map[string]*domain.Task) error {
	if ph == nil {
		return invalid(errors.ErrEmptyValue, "phase is nil")
	}
	if ph.Name == "" {
		return invalid(errors.ErrEmptyValue, "phase %s: name", ph.ID)
	}
	if _, ok := projects[ph.ProjectID]; !ok {
		return invalid(errors.ErrDanglingReference, "phase %s: project %s does not exist", ph.ID, ph.ProjectID)
	}

	for _, sibling := range phases {
		if sibling.ID == ph.ID || sibling.ProjectID != ph.ProjectID {
			continue
		}
		if sibling.Order == ph.Order {
			return invalid(errors.ErrDuplicatePhaseOrder, "phase %s: order %d already used by phase %s", ph.ID, ph.Order, sibling.ID)
		}
		if ph.IsCurrent && sibling.IsCurrent {
			return invalid(errors.ErrCurrentPhaseConflict, "phase %s: sibling %s is already current", ph.ID, sibling.ID)
		}
	}

	for _, taskID := range ph.TaskIDs {
		t, ok := tasks[taskID]
		if !ok {
			return invalid(errors.ErrDanglingReference, "phase %s: task %s does not exist", ph.ID, taskID)
		}
		if t.PhaseID != ph.ID {
			return invalid(errors.ErrDanglingReference, "phase %s: task %s belongs to phase %q", ph.ID, taskID, t.PhaseID)
		}
		if t.ProjectID != ph.ProjectID {
			return invalid(errors.ErrDanglingReference, "phase %s: task %s belongs to project %q", ph.ID, taskID, t.ProjectID)
		}
	}
	return nil
}

// ValidateTask checks the rules a task must satisfy before it may be saved.
// A task may float free of the hierarchy, belong to a project only, or
// belong to a phase; a phase-attached task must carry that phase's project.
func ValidateTask(t *domain.Task, projects map[string]*domain.Project, phases map[string]*domain.Phase) error {
	if t == nil {
		return invalid(errors.ErrEmptyValue, "task is nil")
	}
	if t.Title == "" {
		return invalid(errors.ErrEmptyValue, "task %s: title", t.ID)
	}
	if !t.Status.IsValid() {
		return invalid(errors.ErrEmptyValue, "task %s: status %q", t.ID, t.Status)
	}
	if !t.Priority.IsValid() {
		return invalid(errors.ErrEmptyValue, "task %s: priority %q", t.ID, t.Priority)
	}
	if t.PercentageComplete < 0 || t.PercentageComplete > 100 {
		return invalid(errors.ErrEmptyValue, "task %s: percentage_complete %v out of range", t.ID, t.PercentageComplete)
	}

	if t.ProjectID != "" {
		if _, ok := projects[t.ProjectID]; !ok {
			return invalid(errors.ErrDanglingReference, "task %s: project %s does not exist", t.ID, t.ProjectID)
		}
	}
	if t.PhaseID != "" {
		ph, ok := phases[t.PhaseID]
		if !ok {
			return invalid(errors.ErrDanglingReference, "task %s: phase %s does not exist", t.ID, t.PhaseID)
		}
		if t.ProjectID != ph.ProjectID {
			return invalid(errors.ErrDanglingReference, "task %s: project %q does not match phase project %s", t.ID, t.ProjectID, ph.ProjectID)
		}
	}
	return nil
}
