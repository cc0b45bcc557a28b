package repository

import (
	"context"
	"sort"

	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/errors"
)

// ScheduleProject places a project on a calendar day and persists the
// schedule document. The entry snapshots the project title for display.
func (r *Repository) ScheduleProject(ctx context.Context, projectID, date string) (*domain.ScheduledProject, error) {
	if err := domain.ValidateScheduledDate(date); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.projects[projectID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrProjectNotFound, "schedule project %s", projectID)
	}

	entry := domain.NewScheduledProject(projectID, p.Title, date)
	staged := make(map[string]*domain.ScheduledProject, len(r.scheduledProjects)+1)
	for id, e := range r.scheduledProjects {
		staged[id] = e
	}
	staged[entry.ID] = entry

	if err := r.store.SaveScheduledProjects(ctx, staged); err != nil {
		return nil, err
	}
	r.scheduledProjects = staged
	return entry.Clone(), nil
}

// UnscheduleProject removes a schedule entry and persists the document.
func (r *Repository) UnscheduleProject(ctx context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scheduledProjects[entryID]; !ok {
		return errors.Wrapf(errors.ErrScheduleNotFound, "scheduled project %s", entryID)
	}

	staged := make(map[string]*domain.ScheduledProject, len(r.scheduledProjects))
	for id, e := range r.scheduledProjects {
		if id != entryID {
			staged[id] = e
		}
	}
	if err := r.store.SaveScheduledProjects(ctx, staged); err != nil {
		return err
	}
	r.scheduledProjects = staged
	return nil
}

// ScheduleTask places a task on a calendar day and persists the schedule
// document.
func (r *Repository) ScheduleTask(ctx context.Context, taskID, date string) (*domain.ScheduledTask, error) {
	if err := domain.ValidateScheduledDate(date); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[taskID]
	if !ok {
		return nil, errors.Wrapf(errors.ErrTaskNotFound, "schedule task %s", taskID)
	}

	entry := domain.NewScheduledTask(taskID, t.Title, date)
	staged := make(map[string]*domain.ScheduledTask, len(r.scheduledTasks)+1)
	for id, e := range r.scheduledTasks {
		staged[id] = e
	}
	staged[entry.ID] = entry

	if err := r.store.SaveScheduledTasks(ctx, staged); err != nil {
		return nil, err
	}
	r.scheduledTasks = staged
	return entry.Clone(), nil
}

// UnscheduleTask removes a schedule entry and persists the document.
func (r *Repository) UnscheduleTask(ctx context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scheduledTasks[entryID]; !ok {
		return errors.Wrapf(errors.ErrScheduleNotFound, "scheduled task %s", entryID)
	}

	staged := make(map[string]*domain.ScheduledTask, len(r.scheduledTasks))
	for id, e := range r.scheduledTasks {
		if id != entryID {
			staged[id] = e
		}
	}
	if err := r.store.SaveScheduledTasks(ctx, staged); err != nil {
		return err
	}
	r.scheduledTasks = staged
	return nil
}

// ScheduledProjects returns copies of every scheduled project entry,
// sorted by date then id.
func (r *Repository) ScheduledProjects() []*domain.ScheduledProject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ScheduledProject, 0, len(r.scheduledProjects))
	for _, e := range r.scheduledProjects {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ScheduledProjectsByDate returns copies of the project entries on one
// calendar day.
func (r *Repository) ScheduledProjectsByDate(date string) []*domain.ScheduledProject {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ScheduledProject
	for _, e := range r.scheduledProjects {
		if e.Date == date {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ScheduledTasks returns copies of every scheduled task entry, sorted by
// date then id.
func (r *Repository) ScheduledTasks() []*domain.ScheduledTask {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ScheduledTask, 0, len(r.scheduledTasks))
	for _, e := range r.scheduledTasks {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ScheduledTasksByDate returns copies of the task entries on one calendar
// day.
func (r *Repository) ScheduledTasksByDate(date string) []*domain.ScheduledTask {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.ScheduledTask
	for _, e := range r.scheduledTasks {
		if e.Date == date {
			out = append(out, e.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
