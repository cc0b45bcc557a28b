package repository

import (
	"context"
	"fmt"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
	"github.com/meridianapp/meridian/internal/relation"
)

// MoveTaskToPhase reattaches a task to the destination phase, keeping the
// phase membership lists and the task's hierarchy fields consistent. The
// destination's project becomes the task's project. An empty phaseID
// detaches the task from the hierarchy: it leaves its current phase and
// both its phase and project references are cleared.
func (r *Repository) MoveTaskToPhase(ctx context.Context, taskID, phaseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[taskID]
	if !ok {
		return errors.Wrapf(errors.ErrTaskNotFound, "move task %s", taskID)
	}
	var dest *domain.Phase
	if phaseID != "" {
		d, found := r.phases[phaseID]
		if !found {
			return errors.Wrapf(errors.ErrPhaseNotFound, "move task %s to phase %s", taskID, phaseID)
		}
		dest = d.Clone()
	}

	ct := t.Clone()
	stagedPhases := copyPhases(r.phases)
	if dest != nil {
		stagedPhases[dest.ID] = dest
	}

	var source *domain.Phase
	if ct.PhaseID != "" && ct.PhaseID != phaseID {
		if from, found := r.phases[ct.PhaseID]; found {
			source = from.Clone()
			stagedPhases[source.ID] = source
		}
	}

	relation.MoveTask(ct, source, dest)

	stagedTasks := copyTasks(r.tasks)
	stagedTasks[ct.ID] = ct

	if err := r.store.SaveTasks(ctx, stagedTasks); err != nil {
		return err
	}
	if err := r.store.SavePhases(ctx, stagedPhases); err != nil {
		return err
	}
	r.tasks = stagedTasks
	r.phases = stagedPhases
	return nil
}

// MarkPhaseCurrent makes the phase the single current phase of its
// project, demoting every sibling and updating the project pointer.
func (r *Repository) MarkPhaseCurrent(ctx context.Context, projectID, phaseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return errors.Wrapf(errors.ErrProjectNotFound, "mark current on project %s", projectID)
	}
	target, ok := r.phases[phaseID]
	if !ok {
		return errors.Wrapf(errors.ErrPhaseNotFound, "mark phase %s current", phaseID)
	}

	cp := p.Clone()
	stagedPhases := copyPhases(r.phases)
	for id, ph := range r.phases {
		if ph.ProjectID == projectID {
			stagedPhases[id] = ph.Clone()
		}
	}
	ct := stagedPhases[target.ID]

	if err := relation.MarkCurrentPhase(cp, ct, stagedPhases); err != nil {
		return err
	}

	stagedProjects := copyProjects(r.projects)
	stagedProjects[cp.ID] = cp

	if err := r.store.SavePhases(ctx, stagedPhases); err != nil {
		return err
	}
	if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
		return err
	}
	r.phases = stagedPhases
	r.projects = stagedProjects
	return nil
}

// LinkMindmap points a project and a mindmap at each other, detaching any
// previous partner on either side so the pointer pair stays symmetric.
func (r *Repository) LinkMindmap(ctx context.Context, projectID, mindmapID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return errors.Wrapf(errors.ErrProjectNotFound, "link mindmap to project %s", projectID)
	}
	m, ok := r.mindmaps[mindmapID]
	if !ok {
		return errors.Wrapf(errors.ErrMindmapNotFound, "link mindmap %s", mindmapID)
	}

	stagedProjects := copyProjects(r.projects)
	stagedMindmaps := copyMindmaps(r.mindmaps)

	cp := p.Clone()
	cm := m.Clone()
	stagedProjects[cp.ID] = cp
	stagedMindmaps[cm.ID] = cm

	// Stage clones of the previous partners too, since relinking edits them.
	if cp.MindmapID != "" && cp.MindmapID != cm.ID {
		if old, found := stagedMindmaps[cp.MindmapID]; found {
			stagedMindmaps[old.ID] = old.Clone()
		}
	}
	if cm.ProjectID != "" && cm.ProjectID != cp.ID {
		if old, found := stagedProjects[cm.ProjectID]; found {
			stagedProjects[old.ID] = old.Clone()
		}
	}

	relation.LinkMindmap(cp, cm, stagedProjects, stagedMindmaps)

	if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
		return err
	}
	if err := r.store.SaveMindmaps(ctx, stagedMindmaps); err != nil {
		return err
	}
	r.projects = stagedProjects
	r.mindmaps = stagedMindmaps
	return nil
}

// UnlinkMindmap clears both sides of a project/mindmap pair. The mindmap
// must be the one the project is linked to; unlinking against any other
// mindmap fails with a validation error.
func (r *Repository) UnlinkMindmap(ctx context.Context, projectID, mindmapID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return errors.Wrapf(errors.ErrProjectNotFound, "unlink mindmap from project %s", projectID)
	}
	m, ok := r.mindmaps[mindmapID]
	if !ok {
		return errors.Wrapf(errors.ErrMindmapNotFound, "unlink mindmap %s", mindmapID)
	}
	if p.MindmapID != mindmapID {
		return fmt.Errorf("unlink mindmap %s from project %s: %w: %w",
			mindmapID, projectID, errors.ErrValidation, errors.ErrMindmapLinkAsymmetric)
	}

	cp := p.Clone()
	cm := m.Clone()
	relation.UnlinkMindmap(cp, cm)

	stagedProjects := copyProjects(r.projects)
	stagedMindmaps := copyMindmaps(r.mindmaps)
	stagedProjects[cp.ID] = cp
	stagedMindmaps[cm.ID] = cm

	if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
		return err
	}
	if err := r.store.SaveMindmaps(ctx, stagedMindmaps); err != nil {
		return err
	}
	r.projects = stagedProjects
	r.mindmaps = stagedMindmaps
	return nil
}
