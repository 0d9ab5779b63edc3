package shelltui_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/pkg/shellcmd"
	"github.com/macropower/nixshellgen/pkg/shelltui"
)

func contains(s string) func([]byte) bool {
	return func(bts []byte) bool {
		return bytes.Contains([]byte(ansi.Strip(string(bts))), []byte(s))
	}
}

func TestActionModel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		want string
	}{
		"success": {
			want: "Initialization complete.",
		},
		"error": {
			err:  errors.New("flake.nix: already exists"),
			want: "flake.nix: already exists",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := shelltui.NewActionModel("initialization", "initializing")
			tm := teatest.NewTestModel(
				t, m,
				teatest.WithInitialTermSize(80, 24),
			)

			teatest.WaitFor(t, tm.Output(), contains("Initializing"))

			tm.Send(shellcmd.EventDone{Err: tc.err})

			out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(2*time.Second)))
			require.NoError(t, err)
			require.Contains(t, ansi.Strip(string(out)), tc.want)
		})
	}
}

func TestActionModelQuitKey(t *testing.T) {
	t.Parallel()

	m := shelltui.NewActionModel("initialization", "initializing")
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), contains("Initializing"))

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
}
