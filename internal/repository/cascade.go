package repository

import (
	"context"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
	"github.com/meridianapp/meridian/internal/relation"
)

// DeleteProject removes a project and everything hanging off it: every
// phase of the project is deleted, every task referencing the project or
// one of its phases has those reference fields cleared (the tasks survive),
// the linked mindmap is detached, and schedule entries for the project are
// dropped. The full mutation set is computed in memory first, then every
// affected document is persisted; the cache updates only after persistence
// succeeds.
func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[id]
	if !ok {
		return errors.Wrapf(errors.ErrProjectNotFound, "delete project %s", id)
	}

	stagedProjects := copyProjects(r.projects)
	delete(stagedProjects, id)

	stagedPhases := copyPhases(r.phases)
	deletedPhases := make(map[string]bool)
	for phaseID, ph := range r.phases {
		if ph.ProjectID == id {
			delete(stagedPhases, phaseID)
			deletedPhases[phaseID] = true
		}
	}

	stagedTasks := copyTasks(r.tasks)
	for taskID, t := range r.tasks {
		if t.ProjectID == id || deletedPhases[t.PhaseID] {
			ct := t.Clone()
			ct.ClearHierarchy()
			stagedTasks[taskID] = ct
		}
	}

	stagedMindmaps := copyMindmaps(r.mindmaps)
	mindmapsTouched := false
	for mindmapID, m := range r.mindmaps {
		if m.ProjectID == id {
			cm := m.Clone()
			cm.ProjectID = ""
			stagedMindmaps[mindmapID] = cm
			mindmapsTouched = true
		}
	}

	stagedSchedules := make(map[string]*domain.ScheduledProject, len(r.scheduledProjects))
	schedulesTouched := false
	for entryID, e := range r.scheduledProjects {
		if e.ProjectID == id {
			schedulesTouched = true
			continue
		}
		stagedSchedules[entryID] = e
	}

	if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
		return err
	}
	if err := r.store.SavePhases(ctx, stagedPhases); err != nil {
		return err
	}
	if err := r.store.SaveTasks(ctx, stagedTasks); err != nil {
		return err
	}
	if mindmapsTouched {
		if err := r.store.SaveMindmaps(ctx, stagedMindmaps); err != nil {
			return err
		}
	}
	if schedulesTouched {
		if err := r.store.SaveScheduledProjects(ctx, stagedSchedules); err != nil {
			return err
		}
	}

	r.projects = stagedProjects
	r.phases = stagedPhases
	r.tasks = stagedTasks
	if mindmapsTouched {
		r.mindmaps = stagedMindmaps
	}
	if schedulesTouched {
		r.scheduledProjects = stagedSchedules
	}

	r.log.Info().
		Str("project_id", id).
		Str("title", p.Title).
		Int("phases_deleted", len(deletedPhases)).
		Msg("project deleted")
	return nil
}

// DeletePhase removes a phase: tasks that referenced it keep their project
// but lose the phase reference, the owning project's phase list drops the
// id, and the current-phase pointer clears if it named the deleted phase.
func (r *Repository) DeletePhase(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ph, ok := r.phases[id]
	if !ok {
		return errors.Wrapf(errors.ErrPhaseNotFound, "delete phase %s", id)
	}

	stagedPhases := copyPhases(r.phases)
	delete(stagedPhases, id)

	stagedTasks := copyTasks(r.tasks)
	tasksTouched := false
	for taskID, t := range r.tasks {
		if t.PhaseID == id {
			ct := t.Clone()
			ct.PhaseID = ""
			stagedTasks[taskID] = ct
			tasksTouched = true
		}
	}

	stagedProjects := copyProjects(r.projects)
	projectsTouched := false
	if owner, found := r.projects[ph.ProjectID]; found {
		co := owner.Clone()
		co.RemovePhase(id)
		stagedProjects[co.ID] = co
		projectsTouched = true
	}

	if err := r.store.SavePhases(ctx, stagedPhases); err != nil {
		return err
	}
	if tasksTouched {
		if err := r.store.SaveTasks(ctx, stagedTasks); err != nil {
			return err
		}
	}
	if projectsTouched {
		if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
			return err
		}
	}

	r.phases = stagedPhases
	if tasksTouched {
		r.tasks = stagedTasks
	}
	if projectsTouched {
		r.projects = stagedProjects
	}

	r.log.Info().
		Str("phase_id", id).
		Str("project_id", ph.ProjectID).
		Msg("phase deleted")
	return nil
}

// DeleteMindmap removes a mindmap and clears the owning project's link.
func (r *Repository) DeleteMindmap(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.mindmaps[id]
	if !ok {
		return errors.Wrapf(errors.ErrMindmapNotFound, "delete mindmap %s", id)
	}

	stagedMindmaps := copyMindmaps(r.mindmaps)
	delete(stagedMindmaps, id)

	stagedProjects := copyProjects(r.projects)
	projectsTouched := false
	if m.ProjectID != "" {
		if owner, found := r.projects[m.ProjectID]; found && owner.MindmapID == id {
			co := owner.Clone()
			relation.UnlinkMindmap(co, nil)
			stagedProjects[co.ID] = co
			projectsTouched = true
		}
	}

	if err := r.store.SaveMindmaps(ctx, stagedMindmaps); err != nil {
		return err
	}
	if projectsTouched {
		if err := r.store.SaveProjects(ctx, stagedProjects); err != nil {
			return err
		}
	}

	r.mindmaps = stagedMindmaps
	if projectsTouched {
		r.projects = stagedProjects
	}
	return nil
}
