package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianapp/meridian/internal/constants"
	"github.com/meridianapp/meridian/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), zerolog.Nop())
}

// TestStore_RoundTrip verifies a saved collection loads back intact.
func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	p := domain.NewProject("Persisted", now)
	p.Phases = []string{"ph-1"}
	projects := map[string]*domain.Project{p.ID: p}

	require.NoError(t, s.SaveProjects(ctx, projects))

	loaded, err := s.LoadProjects(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, p, loaded[p.ID])
}

// TestStore_MissingFile verifies a missing document loads as empty.
func TestStore_MissingFile(t *testing.T) {
	s := newTestStore(t)

	tasks, err := s.LoadTasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// TestStore_CorruptRecordSkipped verifies one bad record does not block the
// rest of the document from loading.
func TestStore_CorruptRecordSkipped(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	doc := make(map[string]json.RawMessage)
	var goodIDs []string
	for i := 0; i < 4; i++ {
		task := domain.NewTask("ok", now)
		raw, err := json.Marshal(task)
		require.NoError(t, err)
		doc[task.ID] = raw
		goodIDs = append(goodIDs, task.ID)
	}
	doc["broken"] = json.RawMessage(`{"id": 42, "title": ["not a string"]}`)

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(s.DataDir(), constants.TasksFileName)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	tasks, err := s.LoadTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
	for _, id := range goodIDs {
		assert.Contains(t, tasks, id)
	}
	assert.NotContains(t, tasks, "broken")
}

// TestStore_MalformedDocument verifies whole-file garbage degrades to an
// empty collection instead of failing the load.
func TestStore_MalformedDocument(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(s.DataDir(), constants.PhasesFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	phases, err := s.LoadPhases(context.Background())
	require.NoError(t, err)
	assert.Empty(t, phases)
}

// TestStore_AtomicSave verifies the save path leaves no temp file behind
// and creates missing directories.
func TestStore_AtomicSave(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir, zerolog.Nop())
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

	m := domain.NewMindmap("sketch", now)
	require.NoError(t, s.SaveMindmaps(ctx, map[string]*domain.Mindmap{m.ID: m}))

	path := filepath.Join(dir, constants.MindmapsFileName)
	_, err := os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

// TestStore_CanceledContext verifies load and save honor cancellation.
func TestStore_CanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.LoadProjects(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = s.SaveProjects(ctx, map[string]*domain.Project{})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestStore_EmptyCollectionSave verifies an empty map writes a valid empty
// document that loads back as empty.
func TestStore_EmptyCollectionSave(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.SaveScheduledTasks(ctx, map[string]*domain.ScheduledTask{}))
	entries, err := s.LoadScheduledTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
