package repository

import (
	"context"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
	"github.com/meridianapp/meridian/internal/relation"
)

// AddProject inserts a project into the in-memory collection without
// touching disk. Intended for batched construction before a later save.
func (r *Repository) AddProject(p *domain.Project) error {
	if p == nil || p.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "add project")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[p.ID] = p.Clone()
	return nil
}

// AddPhase inserts a phase into the in-memory collection without touching
// disk.
func (r *Repository) AddPhase(p *domain.Phase) error {
	if p == nil || p.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "add phase")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases[p.ID] = p.Clone()
	return nil
}

// AddTask inserts a task into the in-memory collection without touching
// disk.
func (r *Repository) AddTask(t *domain.Task) error {
	if t == nil || t.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "add task")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t.Clone()
	return nil
}

// AddMindmap inserts a mindmap into the in-memory collection without
// touching disk.
func (r *Repository) AddMindmap(m *domain.Mindmap) error {
	if m == nil || m.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "add mindmap")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mindmaps[m.ID] = m.Clone()
	return nil
}

// SaveProject validates the project against the entity graph, updates the
// cache, and persists the project document. Save is all or nothing: a
// validation or persistence failure leaves memory and disk unchanged.
func (r *Repository) SaveProject(ctx context.Context, p *domain.Project) error {
	if p == nil || p.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "save project")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := p.Clone()
	if err := relation.ValidateProject(cp, r.phases, r.mindmaps); err != nil {
		return err
	}

	staged := copyProjects(r.projects)
	staged[cp.ID] = cp
	if err := r.store.SaveProjects(ctx, staged); err != nil {
		return err
	}
	r.projects = staged
	return nil
}

// SavePhase validates the phase against the entity graph, updates the
// cache, and persists the phase document.
func (r *Repository) SavePhase(ctx context.Context, p *domain.Phase) error {
	if p == nil || p.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "save phase")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := p.Clone()
	if err := relation.ValidatePhase(cp, r.projects, r.phases, r.tasks); err != nil {
		return err
	}

	staged := copyPhases(r.phases)
	staged[cp.ID] = cp
	if err := r.store.SavePhases(ctx, staged); err != nil {
		return err
	}
	r.phases = staged
	return nil
}

// SaveTask validates the task, stamps its modification time, applies the
// completed-to-archived transition, updates the cache, and persists the
// task document.
func (r *Repository) SaveTask(ctx context.Context, t *domain.Task) error {
	if t == nil || t.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "save task")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := t.Clone()
	cp.ModifiedDate = r.clock.Now()
	cp.CheckArchived()
	if err := relation.ValidateTask(cp, r.projects, r.phases); err != nil {
		return err
	}

	staged := copyTasks(r.tasks)
	staged[cp.ID] = cp
	if err := r.store.SaveTasks(ctx, staged); err != nil {
		return err
	}
	r.tasks = staged
	return nil
}

// SaveMindmap stamps the mindmap's modification time, updates the cache,
// and persists the mindmap document. A linked mindmap must point at an
// existing project whose reverse pointer matches.
func (r *Repository) SaveMindmap(ctx context.Context, m *domain.Mindmap) error {
	if m == nil || m.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "save mindmap")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := m.Clone()
	cp.ModifiedDate = r.clock.Now()
	if cp.ProjectID != "" {
		p, ok := r.projects[cp.ProjectID]
		if !ok {
			return errors.Wrapf(errors.ErrDanglingReference, "mindmap %s: project %s does not exist", cp.ID, cp.ProjectID)
		}
		if p.MindmapID != cp.ID {
			return errors.Wrapf(errors.ErrMindmapLinkAsymmetric, "mindmap %s: project %s points at mindmap %q", cp.ID, p.ID, p.MindmapID)
		}
	}

	staged := copyMindmaps(r.mindmaps)
	staged[cp.ID] = cp
	if err := r.store.SaveMindmaps(ctx, staged); err != nil {
		return err
	}
	r.mindmaps = staged
	return nil
}

// RemoveProject deletes the project from memory only. Callers needing
// cascade semantics must use DeleteProject.
func (r *Repository) RemoveProject(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[id]; !ok {
		return errors.Wrapf(errors.ErrProjectNotFound, "project %s", id)
	}
	delete(r.projects, id)
	return nil
}

// RemovePhase deletes the phase from memory only.
func (r *Repository) RemovePhase(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.phases[id]; !ok {
		return errors.Wrapf(errors.ErrPhaseNotFound, "phase %s", id)
	}
	delete(r.phases, id)
	return nil
}

// RemoveTask deletes the task from memory only.
func (r *Repository) RemoveTask(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
	}
	delete(r.tasks, id)
	return nil
}

// RemoveMindmap deletes the mindmap from memory only.
func (r *Repository) RemoveMindmap(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mindmaps[id]; !ok {
		return errors.Wrapf(errors.ErrMindmapNotFound, "mindmap %s", id)
	}
	delete(r.mindmaps, id)
	return nil
}
