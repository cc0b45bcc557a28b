package repository

import (
	"sort"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
)

// GetProjects returns a defensive copy of every project.
func (r *Repository) GetProjects() map[string]*domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Project, len(r.projects))
	for id, p := range r.projects {
		out[id] = p.Clone()
	}
	return out
}

// GetProject returns a defensive copy of one project.
func (r *Repository) GetProject(id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrProjectNotFound, "project %s", id)
	}
	return p.Clone(), nil
}

// GetPhases returns a defensive copy of every phase.
func (r *Repository) GetPhases() map[string]*domain.Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Phase, len(r.phases))
	for id, p := range r.phases {
		out[id] = p.Clone()
	}
	return out
}

// GetPhase returns a defensive copy of one phase.
func (r *Repository) GetPhase(id string) (*domain.Phase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.phases[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrPhaseNotFound, "phase %s", id)
	}
	return p.Clone(), nil
}

// GetTasks returns a defensive copy of every task.
func (r *Repository) GetTasks() map[string]*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Task, len(r.tasks))
	for id, t := range r.tasks {
		out[id] = t.Clone()
	}
	return out
}

// GetTask returns a defensive copy of one task.
func (r *Repository) GetTask(id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
	}
	return t.Clone(), nil
}

// GetMindmaps returns a defensive copy of every mindmap.
func (r *Repository) GetMindmaps() map[string]*domain.Mindmap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Mindmap, len(r.mindmaps))
	for id, m := range r.mindmaps {
		out[id] = m.Clone()
	}
	return out
}

// GetMindmap returns a defensive copy of one mindmap.
func (r *Repository) GetMindmap(id string) (*domain.Mindmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mindmaps[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMindmapNotFound, "mindmap %s", id)
	}
	return m.Clone(), nil
}

// TasksByProject returns copies of every task attached to the project,
// including loose tasks without a phase, sorted by creation date.
func (r *Repository) TasksByProject(projectID string) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Task
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, t.Clone())
		}
	}
	sortTasks(out)
	return out
}

// TasksByPhase returns copies of every task attached to the phase, sorted
// by creation date.
func (r *Repository) TasksByPhase(phaseID string) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Task
	for _, t := range r.tasks {
		if t.PhaseID == phaseID {
			out = append(out, t.Clone())
		}
	}
	sortTasks(out)
	return out
}

// TasksByCategory returns copies of every task in the given category,
// sorted by creation date.
func (r *Repository) TasksByCategory(category domain.TaskCategory) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Task
	for _, t := range r.tasks {
		if t.Category == category {
			out = append(out, t.Clone())
		}
	}
	sortTasks(out)
	return out
}

// PhasesByProject returns copies of the project's phases in ascending
// display order.
func (r *Repository) PhasesByProject(projectID string) []*domain.Phase {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Phase
	for _, p := range r.phases {
		if p.ProjectID == projectID {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// MindmapsByProject returns copies of every mindmap linked to the project.
func (r *Repository) MindmapsByProject(projectID string) []*domain.Mindmap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Mindmap
	for _, m := range r.mindmaps {
		if m.ProjectID == projectID {
			out = append(out, m.Clone())
		}
	}
	sortMindmaps(out)
	return out
}

// UnlinkedMindmaps returns copies of every mindmap not linked to any
// project.
func (r *Repository) UnlinkedMindmaps() []*domain.Mindmap {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Mindmap
	for _, m := range r.mindmaps {
		if m.ProjectID == "" {
			out = append(out, m.Clone())
		}
	}
	sortMindmaps(out)
	return out
}

func sortTasks(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreationDate.Equal(tasks[j].CreationDate) {
			return tasks[i].CreationDate.Before(tasks[j].CreationDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
}

func sortMindmaps(mindmaps []*domain.Mindmap) {
	sort.Slice(mindmaps, func(i, j int) bool {
		if !mindmaps[i].CreationDate.Equal(mindmaps[j].CreationDate) {
			return mindmaps[i].CreationDate.Before(mindmaps[j].CreationDate)
		}
		return mindmaps[i].ID < mindmaps[j].ID
	})
}
