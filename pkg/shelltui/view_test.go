package shelltui_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"

	"github.com/macropower/nixshellgen/pkg/shelltui"
)

func TestAddModelView(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		model *shelltui.AddModel
		want  string
	}{
		"idle": {
			model: shelltui.NewTestAddModel(80, shelltui.StateIdle, nil, 0, 0, 0, 0),
			want:  "",
		},
		"all added": {
			model: shelltui.NewTestAddModel(80, shelltui.StateDone, nil, 2, 2, 0, 0),
			want:  "Done! Inputs: 2 added.",
		},
		"mixed": {
			model: shelltui.NewTestAddModel(80, shelltui.StateDone, nil, 3, 1, 1, 1),
			want:  "Done! Inputs: 1 added, 1 already present, 1 failed.",
		},
		"config only": {
			model: shelltui.NewTestAddModel(80, shelltui.StateDone, nil, 0, 0, 0, 0),
			want:  "Done! Updated config.",
		},
		"working": {
			model: shelltui.NewTestAddModel(80, shelltui.StateWorking, nil, 4, 1, 1, 0),
			want:  "Updating config (2/4)",
		},
		"error": {
			model: shelltui.NewTestAddModel(80, shelltui.StateError, errors.New("boom"), 1, 0, 0, 0),
			want:  "boom",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := ansi.Strip(tc.model.View())
			if tc.want == "" {
				assert.Empty(t, got)

				return
			}

			assert.Contains(t, got, tc.want)
		})
	}
}

func TestGetErrorMessage(t *testing.T) {
	t.Parallel()

	got := ansi.Strip(shelltui.GetErrorMessage(errors.New("single failure\n"), 80))
	assert.Contains(t, got, "single failure")
	assert.NotContains(t, got, "✗")

	merr := multierror.Append(nil, errors.New("first"), errors.New("second"))
	got = ansi.Strip(shelltui.GetErrorMessage(merr, 80))
	assert.Contains(t, got, "✗ first")
	assert.Contains(t, got, "✗ second")
}
