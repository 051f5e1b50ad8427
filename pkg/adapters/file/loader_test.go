package file_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/onboarding/internal/testutils"
	"github.com/aretw0/onboarding/pkg/adapters/file"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/dsl"
	contract "github.com/aretw0/onboarding/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoader_Contract(t *testing.T) {
	loader, err := file.New(filepath.Join("testdata", "djay.yaml"))
	require.NoError(t, err)

	want, err := dsl.Canonical().Steps()
	require.NoError(t, err)
	contract.TableLoaderContractTest(t, loader, want)
}

func TestFileLoader_Transitions(t *testing.T) {
	loader, err := file.New(filepath.Join("testdata", "djay.yaml"))
	require.NoError(t, err)

	table, ok, err := loader.LoadTransitions()
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, domain.StyleNone, table.Select(2, 3).Style)
	assert.Equal(t, domain.StyleScaleSpring, table.Select(0, 1).Style, "unlisted pairs keep the canonical recipe")
	assert.Equal(t, 200*time.Millisecond, table.Default.Duration)
	assert.Equal(t, domain.CurveLinear, table.Default.Curve)
}

func TestFileLoader_JSON(t *testing.T) {
	loader, err := file.New(filepath.Join("testdata", "minimal.json"))
	require.NoError(t, err)

	steps, err := loader.LoadSteps()
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, domain.Asset("wave"), steps[1].Image)

	_, ok, err := loader.LoadTransitions()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		config  bool
	}{
		{"Malformed YAML", "steps: [", "failed to parse table", false},
		{"Unknown Key", "steps:\n  - kind: welcome\n    title: x\n    confirm_label: y\n    colour: red\n", "colour", false},
		{"Empty File", "", "step table is empty", true},
		{"Choice Without Options", "steps:\n  - kind: choice\n    title: x\n    confirm_label: y\n", "no options", true},
		{"Bad Duration", "steps:\n  - kind: welcome\n    title: x\n    confirm_label: y\ntransitions:\n  default:\n    style: cross-fade\n    duration: soon\n    curve: linear\n", "duration", false},
		{"Backward Rule", "steps:\n  - kind: welcome\n    title: x\n    confirm_label: y\ntransitions:\n  rules:\n    - {from: 2, to: 1, style: none}\n", "2->1", true},
		{"Duplicate Rule", "steps:\n  - kind: welcome\n    title: x\n    confirm_label: y\ntransitions:\n  rules:\n    - {from: 0, to: 1, style: none}\n    - {from: 0, to: 1, style: none}\n", "duplicate transition rule 0->1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutils.WriteFile(t, "table.yaml", tt.content)
			_, err := file.New(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, tt.config, errors.Is(err, domain.ErrConfiguration))
		})
	}

	t.Run("Missing File", func(t *testing.T) {
		_, err := file.New(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "failed to read table file")
	})
}
