package store

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/meridianapp/meridian/internal/constants"
	"github.com/meridianapp/meridian/internal/domain"
)

// Store reads and writes the per-entity-type JSON documents under a data
// directory. It is safe for use by a single repository; cross-process
// coordination happens through the per-document file locks.
type Store struct {
	dataDir string
	log     zerolog.Logger
}

// New creates a Store rooted at the given data directory.
func New(dataDir string, log zerolog.Logger) *Store {
	return &Store{dataDir: dataDir, log: log}
}

// DataDir returns the directory holding the entity documents.
func (s *Store) DataDir() string {
	return s.dataDir
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// LoadProjects loads the project collection.
func (s *Store) LoadProjects(ctx context.Context) (map[string]*domain.Project, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.Project](s.path(constants.ProjectsFileName), s.log)
}

// SaveProjects persists the project collection.
func (s *Store) SaveProjects(ctx context.Context, projects map[string]*domain.Project) error {
	return SaveDocument(ctx, s.path(constants.ProjectsFileName), projects)
}

// LoadPhases loads the phase collection.
func (s *Store) LoadPhases(ctx context.Context) (map[string]*domain.Phase, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.Phase](s.path(constants.PhasesFileName), s.log)
}

// SavePhases persists the phase collection.
func (s *Store) SavePhases(ctx context.Context, phases map[string]*domain.Phase) error {
	return SaveDocument(ctx, s.path(constants.PhasesFileName), phases)
}

// LoadTasks loads the task collection.
func (s *Store) LoadTasks(ctx context.Context) (map[string]*domain.Task, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.Task](s.path(constants.TasksFileName), s.log)
}

// SaveTasks persists the task collection.
func (s *Store) SaveTasks(ctx context.Context, tasks map[string]*domain.Task) error {
	return SaveDocument(ctx, s.path(constants.TasksFileName), tasks)
}

// LoadMindmaps loads the mindmap collection.
func (s *Store) LoadMindmaps(ctx context.Context) (map[string]*domain.Mindmap, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.Mindmap](s.path(constants.MindmapsFileName), s.log)
}

// SaveMindmaps persists the mindmap collection.
func (s *Store) SaveMindmaps(ctx context.Context, mindmaps map[string]*domain.Mindmap) error {
	return SaveDocument(ctx, s.path(constants.MindmapsFileName), mindmaps)
}

// LoadScheduledProjects loads the scheduled project entries.
func (s *Store) LoadScheduledProjects(ctx context.Context) (map[string]*domain.ScheduledProject, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.ScheduledProject](s.path(constants.ScheduledProjectsFileName), s.log)
}

// SaveScheduledProjects persists the scheduled project entries.
func (s *Store) SaveScheduledProjects(ctx context.Context, entries map[string]*domain.ScheduledProject) error {
	return SaveDocument(ctx, s.path(constants.ScheduledProjectsFileName), entries)
}

// LoadScheduledTasks loads the scheduled task entries.
func (s *Store) LoadScheduledTasks(ctx context.Context) (map[string]*domain.ScheduledTask, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	return LoadDocument[domain.ScheduledTask](s.path(constants.ScheduledTasksFileName), s.log)
}

// SaveScheduledTasks persists the scheduled task entries.
func (s *Store) SaveScheduledTasks(ctx context.Context, entries map[string]*domain.ScheduledTask) error {
	return SaveDocument(ctx, s.path(constants.ScheduledTasksFileName), entries)
}
