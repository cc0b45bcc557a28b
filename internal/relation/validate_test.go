package relation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianapp/meridian/internal/domain"
	merrors "github.com/meridianapp/meridian/internal/errors"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

// graph builds a consistent project with two phases and one task for the
// happy-path baseline each test mutates.
func graph() (*domain.Project, map[string]*domain.Phase, map[string]*domain.Task, map[string]*domain.Mindmap) {
	p := domain.NewProject("Billing", testNow)

	ph1 := domain.NewPhase(p.ID, "Design", 1)
	ph2 := domain.NewPhase(p.ID, "Build", 2)
	p.Phases = []string{ph1.ID, ph2.ID}

	t1 := domain.NewTask("wire schema", testNow)
	t1.ProjectID = p.ID
	t1.PhaseID = ph1.ID
	ph1.AddTask(t1.ID)

	phases := map[string]*domain.Phase{ph1.ID: ph1, ph2.ID: ph2}
	tasks := map[string]*domain.Task{t1.ID: t1}
	return p, phases, tasks, map[string]*domain.Mindmap{}
}

func TestValidateProject(t *testing.T) {
	t.Run("consistent graph passes", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		assert.NoError(t, ValidateProject(p, phases, mindmaps))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		p.Title = ""
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrValidation)
		assert.ErrorIs(t, err, merrors.ErrEmptyValue)
	})

	t.Run("phase reference to missing phase rejected", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		p.Phases = append(p.Phases, "gone")
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})

	t.Run("phase owned by another project rejected", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		stray := domain.NewPhase("other-project", "Stray", 9)
		phases[stray.ID] = stray
		p.Phases = append(p.Phases, stray.ID)
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})

	t.Run("current phase pointer must match marked phase", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		p.CurrentPhaseID = p.Phases[0]
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrCurrentPhaseConflict)

		phases[p.Phases[0]].IsCurrent = true
		assert.NoError(t, ValidateProject(p, phases, mindmaps))
	})

	t.Run("marked phase without pointer rejected", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		phases[p.Phases[1]].IsCurrent = true
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrCurrentPhaseConflict)
	})

	t.Run("two current phases rejected", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		phases[p.Phases[0]].IsCurrent = true
		phases[p.Phases[1]].IsCurrent = true
		p.CurrentPhaseID = p.Phases[0]
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrCurrentPhaseConflict)
	})

	t.Run("one sided mindmap link rejected both ways", func(t *testing.T) {
		p, phases, _, mindmaps := graph()
		m := domain.NewMindmap("sketch", testNow)
		mindmaps[m.ID] = m

		p.MindmapID = m.ID
		err := ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrMindmapLinkAsymmetric)

		p.MindmapID = ""
		m.ProjectID = p.ID
		err = ValidateProject(p, phases, mindmaps)
		assert.ErrorIs(t, err, merrors.ErrMindmapLinkAsymmetric)

		p.MindmapID = m.ID
		assert.NoError(t, ValidateProject(p, phases, mindmaps))
	})
}

func TestValidatePhase(t *testing.T) {
	t.Run("consistent phase passes", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		require.NoError(t, ValidatePhase(phases[p.Phases[0]], projects, phases, tasks))
	})

	t.Run("missing project rejected", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		err := ValidatePhase(phases[p.Phases[0]], map[string]*domain.Project{}, phases, tasks)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})

	t.Run("duplicate sibling order rejected", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		phases[p.Phases[1]].Order = phases[p.Phases[0]].Order
		err := ValidatePhase(phases[p.Phases[1]], projects, phases, tasks)
		assert.ErrorIs(t, err, merrors.ErrValidation)
		assert.ErrorIs(t, err, merrors.ErrDuplicatePhaseOrder)
	})

	t.Run("same order in a different project allowed", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		other := domain.NewPhase("other-project", "Elsewhere", phases[p.Phases[0]].Order)
		phases[other.ID] = other
		assert.NoError(t, ValidatePhase(phases[p.Phases[0]], projects, phases, tasks))
	})

	t.Run("second current sibling rejected", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		phases[p.Phases[0]].IsCurrent = true
		phases[p.Phases[1]].IsCurrent = true
		err := ValidatePhase(phases[p.Phases[1]], projects, phases, tasks)
		assert.ErrorIs(t, err, merrors.ErrCurrentPhaseConflict)
	})

	t.Run("task reference to missing task rejected", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		phases[p.Phases[0]].TaskIDs = append(phases[p.Phases[0]].TaskIDs, "gone")
		err := ValidatePhase(phases[p.Phases[0]], projects, phases, tasks)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})

	t.Run("task attached to another phase rejected", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		stray := domain.NewTask("stray", testNow)
		stray.ProjectID = p.ID
		stray.PhaseID = p.Phases[1]
		tasks[stray.ID] = stray
		phases[p.Phases[0]].AddTask(stray.ID)
		err := ValidatePhase(phases[p.Phases[0]], projects, phases, tasks)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})
}

func TestValidateTask(t *testing.T) {
	t.Run("loose task passes", func(t *testing.T) {
		task := domain.NewTask("free floating", testNow)
		assert.NoError(t, ValidateTask(task, map[string]*domain.Project{}, map[string]*domain.Phase{}))
	})

	t.Run("attached task passes", func(t *testing.T) {
		p, phases, tasks, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		for _, task := range tasks {
			assert.NoError(t, ValidateTask(task, projects, phases))
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		task := domain.NewTask("", testNow)
		err := ValidateTask(task, map[string]*domain.Project{}, map[string]*domain.Phase{})
		assert.ErrorIs(t, err, merrors.ErrEmptyValue)
	})

	t.Run("percentage out of range rejected", func(t *testing.T) {
		task := domain.NewTask("overdone", testNow)
		task.PercentageComplete = 120
		err := ValidateTask(task, map[string]*domain.Project{}, map[string]*domain.Phase{})
		assert.ErrorIs(t, err, merrors.ErrValidation)
	})

	t.Run("missing project rejected", func(t *testing.T) {
		task := domain.NewTask("orphan", testNow)
		task.ProjectID = "gone"
		err := ValidateTask(task, map[string]*domain.Project{}, map[string]*domain.Phase{})
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})

	t.Run("phase project mismatch rejected", func(t *testing.T) {
		p, phases, _, _ := graph()
		projects := map[string]*domain.Project{p.ID: p}
		task := domain.NewTask("mismatched", testNow)
		task.ProjectID = p.ID
		task.PhaseID = p.Phases[0]
		phases[p.Phases[0]].ProjectID = "someone-else"
		err := ValidateTask(task, projects, phases)
		assert.ErrorIs(t, err, merrors.ErrDanglingReference)
	})
}
