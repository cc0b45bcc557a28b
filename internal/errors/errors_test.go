package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merrors "github.com/meridianapp/meridian/internal/errors"
)

func TestSentinelErrors_Existence(t *testing.T) {
	// Verify all sentinel errors exist and are non-nil
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrProjectNotFound", merrors.ErrProjectNotFound},
		{"ErrPhaseNotFound", merrors.ErrPhaseNotFound},
		{"ErrTaskNotFound", merrors.ErrTaskNotFound},
		{"ErrMindmapNotFound", merrors.ErrMindmapNotFound},
		{"ErrScheduleNotFound", merrors.ErrScheduleNotFound},
		{"ErrValidation", merrors.ErrValidation},
		{"ErrDanglingReference", merrors.ErrDanglingReference},
		{"ErrDuplicatePhaseOrder", merrors.ErrDuplicatePhaseOrder},
		{"ErrCurrentPhaseConflict", merrors.ErrCurrentPhaseConflict},
		{"ErrMindmapLinkAsymmetric", merrors.ErrMindmapLinkAsymmetric},
		{"ErrCorruptRecord", merrors.ErrCorruptRecord},
		{"ErrEmptyValue", merrors.ErrEmptyValue},
		{"ErrInvalidDate", merrors.ErrInvalidDate},
		{"ErrLockTimeout", merrors.ErrLockTimeout},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err, "%s should not be nil", tc.name)
			assert.NotEmpty(t, tc.err.Error(), "%s should have a message", tc.name)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, merrors.Wrap(nil, "context"))
	})

	t.Run("preserves sentinel in chain", func(t *testing.T) {
		err := merrors.Wrap(merrors.ErrProjectNotFound, "loading dashboard")
		require.Error(t, err)
		assert.ErrorIs(t, err, merrors.ErrProjectNotFound)
		assert.Equal(t, "loading dashboard: project not found", err.Error())
	})

	t.Run("preserves nested wrapping", func(t *testing.T) {
		inner := fmt.Errorf("read failed: %w", merrors.ErrCorruptRecord)
		err := merrors.Wrap(inner, "loading tasks")
		assert.ErrorIs(t, err, merrors.ErrCorruptRecord)
	})
}

func TestWrapf(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, merrors.Wrapf(nil, "task %s", "abc"))
	})

	t.Run("formats message and preserves chain", func(t *testing.T) {
		err := merrors.Wrapf(merrors.ErrTaskNotFound, "moving task %s", "t-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, merrors.ErrTaskNotFound)
		assert.Equal(t, "moving task t-1: task not found", err.Error())
	})

	t.Run("distinct sentinels do not match", func(t *testing.T) {
		err := merrors.Wrap(merrors.ErrPhaseNotFound, "cascade")
		assert.False(t, stderrors.Is(err, merrors.ErrProjectNotFound))
	})
}
