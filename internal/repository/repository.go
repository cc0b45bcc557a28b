// Package repository provides the single in-memory source of truth for the
// Meridian entity graph.
//
// A Repository loads every entity collection from the document store once,
// serves reads as defensive copies, and funnels every mutation through a
// validate-then-persist save path so the structural invariants of the
// hierarchy hold after each operation. Callers never share pointers with
// the cache: reads return clones, and writes clone their arguments before
// they enter the cache.
package repository

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/meridianapp/meridian/internal/clock"
	"github.com/meridianapp/meridian/internal/domain"
	"github.com/meridianapp/meridian/internal/store"
)

// Repository caches every entity collection and serializes access with a
// read-write mutex. All mutating operations persist the affected documents
// before the new state becomes visible to readers.
type Repository struct {
	mu    sync.RWMutex
	store *store.Store
	clock clock.Clock
	log   zerolog.Logger

	projects          map[string]*domain.Project
	phases            map[string]*domain.Phase
	tasks             map[string]*domain.Task
	mindmaps          map[string]*domain.Mindmap
	scheduledProjects map[string]*domain.ScheduledProject
	scheduledTasks    map[string]*domain.ScheduledTask
}

// New creates a Repository over the given store. Collections start empty;
// call Load before serving reads.
func New(s *store.Store, clk clock.Clock, log zerolog.Logger) *Repository {
	return &Repository{
		store:             s,
		clock:             clk,
		log:               log,
		projects:          map[string]*domain.Project{},
		phases:            map[string]*domain.Phase{},
		tasks:             map[string]*domain.Task{},
		mindmaps:          map[string]*domain.Mindmap{},
		scheduledProjects: map[string]*domain.ScheduledProject{},
		scheduledTasks:    map[string]*domain.ScheduledTask{},
	}
}

// Load reads every entity document from disk, replacing the in-memory
// collections wholesale. The documents load concurrently; the swap happens
// only once all of them have loaded.
func (r *Repository) Load(ctx context.Context) error {
	var (
		projects          map[string]*domain.Project
		phases            map[string]*domain.Phase
		tasks             map[string]*domain.Task
		mindmaps          map[string]*domain.Mindmap
		scheduledProjects map[string]*domain.ScheduledProject
		scheduledTasks    map[string]*domain.ScheduledTask
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = r.store.LoadProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		phases, err = r.store.LoadPhases(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = r.store.LoadTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		mindmaps, err = r.store.LoadMindmaps(gctx)
		return err
	})
	g.Go(func() (err error) {
		scheduledProjects, err = r.store.LoadScheduledProjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		scheduledTasks, err = r.store.LoadScheduledTasks(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = projects
	r.phases = phases
	r.tasks = tasks
	r.mindmaps = mindmaps
	r.scheduledProjects = scheduledProjects
	r.scheduledTasks = scheduledTasks

	r.log.Debug().
		Int("projects", len(projects)).
		Int("phases", len(phases)).
		Int("tasks", len(tasks)).
		Int("mindmaps", len(mindmaps)).
		Msg("collections loaded")
	return nil
}

// ReloadAll discards the cached collections and reloads them from disk.
func (r *Repository) ReloadAll(ctx context.Context) error {
	return r.Load(ctx)
}

// Summary reports per-collection counts for status displays.
type Summary struct {
	Projects          int
	ArchivedProjects  int
	Phases            int
	Tasks             int
	ArchivedTasks     int
	Mindmaps          int
	ScheduledProjects int
	ScheduledTasks    int
}

// Summarize returns counts over the cached collections.
func (r *Repository) Summarize() Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Summary{
		Projects:          len(r.projects),
		Phases:            len(r.phases),
		Tasks:             len(r.tasks),
		Mindmaps:          len(r.mindmaps),
		ScheduledProjects: len(r.scheduledProjects),
		ScheduledTasks:    len(r.scheduledTasks),
	}
	for _, p := range r.projects {
		if p.Archived {
			s.ArchivedProjects++
		}
	}
	for _, t := range r.tasks {
		if t.Archived {
			s.ArchivedTasks++
		}
	}
	return s
}

// copyProjects makes a shallow copy of the project collection so staged
// mutations never touch the live cache until they are committed.
func copyProjects(src map[string]*domain.Project) map[string]*domain.Project {
	dst := make(map[string]*domain.Project, len(src))
	for id, p := range src {
		dst[id] = p
	}
	return dst
}

func copyPhases(src map[string]*domain.Phase) map[string]*domain.Phase {
	dst := make(map[string]*domain.Phase, len(src))
	for id, p := range src {
		dst[id] = p
	}
	return dst
}

func copyTasks(src map[string]*domain.Task) map[string]*domain.Task {
	dst := make(map[string]*domain.Task, len(src))
	for id, t := range src {
		dst[id] = t
	}
	return dst
}

func copyMindmaps(src map[string]*domain.Mindmap) map[string]*domain.Mindmap {
	dst := make(map[string]*domain.Mindmap, len(src))
	for id, m := range src {
		dst[id] = m
	}
	return dst
}
