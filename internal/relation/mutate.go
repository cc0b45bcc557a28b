package relation

import (
	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
)

// MarkCurrentPhase makes target the single current phase of its project:
// every sibling loses is_current, target gains it, and the project's
// current_phase_id is updated to match.
func MarkCurrentPhase(project *domain.Project, target *domain.Phase, phases map[string]*domain.Phase) error {
	if target.ProjectID != project.ID {
		return invalid(errors.ErrDanglingReference, "phase %s belongs to project %q, not %s", target.ID, target.ProjectID, project.ID)
	}
	if !project.HasPhase(target.ID) {
		return invalid(errors.ErrDanglingReference, "phase %s is not listed on project %s", target.ID, project.ID)
	}

	for _, ph := range phases {
		if ph.ProjectID == project.ID && ph.ID != target.ID {
			ph.IsCurrent = false
		}
	}
	target.IsCurrent = true
	project.CurrentPhaseID = target.ID
	return nil
}

// LinkMindmap points the project and mindmap at each other. Any previous
// partner on either side is detached first so both pointer pairs stay
// symmetric.
func LinkMindmap(project *domain.Project, m *domain.Mindmap, projects map[string]*domain.Project, mindmaps map[string]*domain.Mindmap) {
	if project.MindmapID != "" && project.MindmapID != m.ID {
		if old, ok := mindmaps[project.MindmapID]; ok {
			old.ProjectID = ""
		}
	}
	if m.ProjectID != "" && m.ProjectID != project.ID {
		if old, ok := projects[m.ProjectID]; ok {
			old.MindmapID = ""
		}
	}
	project.MindmapID = m.ID
	m.ProjectID = project.ID
}

// UnlinkMindmap clears both sides of a project/mindmap pair. Either
// argument may be nil when only one side survives.
func UnlinkMindmap(project *domain.Project, m *domain.Mindmap) {
	if project != nil {
		project.MindmapID = ""
	}
	if m != nil {
		m.ProjectID = ""
	}
}

// MoveTask reattaches a task to the destination phase: the task leaves its
// source phase's membership list, joins the destination's, and takes on the
// destination's project. A nil destination detaches the task from the
// hierarchy entirely, clearing both phase and project. A nil source means
// the task was loose.
func MoveTask(task *domain.Task, from, to *domain.Phase) {
	if from != nil {
		from.RemoveTask(task.ID)
	}
	if to == nil {
		task.ClearHierarchy()
		return
	}
	to.AddTask(task.ID)
	task.PhaseID = to.ID
	task.ProjectID = to.ProjectID
}
