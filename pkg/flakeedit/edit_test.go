package flakeedit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/pkg/flakeedit"
	"github.com/macropower/nixshellgen/pkg/nix/syntax"
)

const flake = `{
  description = "example";

  # Pinned inputs.
  inputs = {
    nixpkgs.url = "github:NixOS/nixpkgs/nixos-unstable"; # unstable
    flake-utils = {
      url = "github:numtide/flake-utils";
    };
  };

  outputs = { self, nixpkgs, ... }@inputs: { };
}
`

func TestAddInputIdempotent(t *testing.T) {
	t.Parallel()

	src := `{ inputs = { nixpkgs.url = "x"; }; }`

	first, outcome, err := flakeedit.AddInput(src, "flake-utils", "github:numtide/flake-utils")
	require.NoError(t, err)
	assert.Equal(t, flakeedit.OutcomeAdded, outcome)
	assert.Equal(t,
		"{ inputs = { nixpkgs.url = \"x\"; \n    flake-utils.url = \"github:numtide/flake-utils\";\n  }; }",
		first,
	)

	second, outcome, err := flakeedit.AddInput(first, "flake-utils", "github:numtide/flake-utils")
	require.NoError(t, err)
	assert.Equal(t, flakeedit.OutcomeAlreadyPresent, outcome)
	assert.Equal(t, first, second)
}

func TestAddInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src     string
		name    string
		value   string
		want    string
		outcome flakeedit.Outcome
	}{
		"appends last": {
			src:     flake,
			name:    "devshell",
			value:   "github:numtide/devshell",
			outcome: flakeedit.OutcomeAdded,
			want: strings.Replace(flake,
				"    };\n  };\n",
				"    };\n  \n    devshell.url = \"github:numtide/devshell\";\n  };\n",
				1),
		},
		"dotted binding present": {
			src:     flake,
			name:    "nixpkgs",
			value:   "github:NixOS/nixpkgs",
			outcome: flakeedit.OutcomeAlreadyPresent,
			want:    flake,
		},
		"nested set binding present": {
			src:     flake,
			name:    "flake-utils",
			value:   "github:numtide/flake-utils",
			outcome: flakeedit.OutcomeAlreadyPresent,
			want:    flake,
		},
		"surrounding whitespace in name": {
			src:     flake,
			name:    "  nixpkgs ",
			value:   "github:NixOS/nixpkgs",
			outcome: flakeedit.OutcomeAlreadyPresent,
			want:    flake,
		},
		"empty section": {
			src:     "{\n  inputs = { };\n}\n",
			name:    "nixpkgs",
			value:   "github:NixOS/nixpkgs",
			outcome: flakeedit.OutcomeAdded,
			want:    "{\n  inputs = { \n    nixpkgs.url = \"github:NixOS/nixpkgs\";\n  };\n}\n",
		},
		"name needing quotes": {
			src:     `{ inputs = { }; }`,
			name:    "my.repo",
			value:   "path:./repo",
			outcome: flakeedit.OutcomeAdded,
			want:    "{ inputs = { \n    \"my.repo\".url = \"path:./repo\";\n  }; }",
		},
		"quoted name present": {
			src:     `{ inputs = { "my.repo".url = "path:./repo"; }; }`,
			name:    "my.repo",
			value:   "path:./repo",
			outcome: flakeedit.OutcomeAlreadyPresent,
			want:    `{ inputs = { "my.repo".url = "path:./repo"; }; }`,
		},
		"value escaped": {
			src:     `{ inputs = { }; }`,
			name:    "odd",
			value:   `git+file:///a"b${c}`,
			outcome: flakeedit.OutcomeAdded,
			want:    "{ inputs = { \n    odd.url = \"git+file:///a\\\"b\\${c}\";\n  }; }",
		},
		"outer binding wins": {
			src:     `{ inputs = { }; outputs = { inputs = { }; }; }`,
			name:    "a",
			value:   "b",
			outcome: flakeedit.OutcomeAdded,
			want:    "{ inputs = { \n    a.url = \"b\";\n  }; outputs = { inputs = { }; }; }",
		},
		"syntax errors elsewhere": {
			src:     `{ inputs = { }; outputs = ; }`,
			name:    "a",
			value:   "b",
			outcome: flakeedit.OutcomeAdded,
			want:    "{ inputs = { \n    a.url = \"b\";\n  }; outputs = ; }",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, outcome, err := flakeedit.AddInput(tc.src, tc.name, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, outcome)
			assert.Equal(t, tc.want, got)

			again, outcome, err := flakeedit.AddInput(got, tc.name, tc.value)
			require.NoError(t, err)
			assert.Equal(t, flakeedit.OutcomeAlreadyPresent, outcome)
			assert.Equal(t, got, again)
		})
	}
}

func TestAddInputErrors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		src   string
		name  string
		value string
		err   error
	}{
		"empty source": {
			src:   "",
			name:  "a",
			value: "b",
			err:   flakeedit.ErrParseUnusable,
		},
		"comments only": {
			src:   "# nothing\n",
			name:  "a",
			value: "b",
			err:   flakeedit.ErrParseUnusable,
		},
		"invalid utf8": {
			src:   "{ inputs = { }; x = \"\xff\"; }",
			name:  "a",
			value: "b",
			err:   flakeedit.ErrParseUnusable,
		},
		"no inputs": {
			src:   `{ outputs = { }; }`,
			name:  "a",
			value: "b",
			err:   flakeedit.ErrSectionNotFound,
		},
		"inputs not a set": {
			src:   `{ inputs = import ./inputs.nix; }`,
			name:  "a",
			value: "b",
			err:   flakeedit.ErrSectionNotFound,
		},
		"inputs nested path": {
			src:   `{ inputs.nixpkgs.url = "x"; }`,
			name:  "a",
			value: "b",
			err:   flakeedit.ErrSectionNotFound,
		},
		"unterminated section": {
			src:   `{ inputs = { nixpkgs.url = "x";`,
			name:  "a",
			value: "b",
			err:   flakeedit.ErrMalformedSection,
		},
		"empty name": {
			src:   `{ inputs = { }; }`,
			name:  " ",
			value: "b",
			err:   flakeedit.ErrInvalidArgument,
		},
		"empty value": {
			src:   `{ inputs = { }; }`,
			name:  "a",
			value: "",
			err:   flakeedit.ErrInvalidArgument,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, _, err := flakeedit.AddInput(tc.src, tc.name, tc.value)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.src, got)
		})
	}
}

func TestAddInputOptions(t *testing.T) {
	t.Parallel()

	src := "{\n\tdeps = {\n\t};\n}\n"

	got, outcome, err := flakeedit.AddInput(src, "a", "b",
		flakeedit.WithSection("deps"),
		flakeedit.WithStyle(flakeedit.Style{EntryIndent: "\t\t", CloseIndent: "\t"}),
	)
	require.NoError(t, err)
	assert.Equal(t, flakeedit.OutcomeAdded, outcome)
	assert.Equal(t, "{\n\tdeps = {\n\t\n\t\ta.url = \"b\";\n\t};\n}\n", got)

	_, _, err = flakeedit.AddInput(src, "a", "b")
	require.ErrorIs(t, err, flakeedit.ErrSectionNotFound)
}

func TestAddInputPreservesSource(t *testing.T) {
	t.Parallel()

	got, _, err := flakeedit.AddInput(flake, "zzz", "github:z/z")
	require.NoError(t, err)

	// Removing the inserted text must give back the original exactly.
	inserted := "\n    zzz.url = \"github:z/z\";\n  "
	idx := strings.Index(got, inserted)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, flake, got[:idx]+got[idx+len(inserted):])

	// Existing entries keep their order.
	assert.Less(t, strings.Index(got, "nixpkgs.url"), strings.Index(got, "flake-utils = {"))
	assert.Less(t, strings.Index(got, "flake-utils = {"), strings.Index(got, "zzz.url"))

	tree := syntax.Parse(got)
	assert.Empty(t, tree.Errors())
}

func TestLocate(t *testing.T) {
	t.Parallel()

	tree := syntax.Parse(flake)

	set, err := flakeedit.Locate(tree, "inputs")
	require.NoError(t, err)
	assert.Len(t, set.Bindings(), 2)
	assert.True(t, flakeedit.HasEntry(set, "nixpkgs"))
	assert.True(t, flakeedit.HasEntry(set, "nixpkgs.url"))
	assert.False(t, flakeedit.HasEntry(set, "url"))
	assert.False(t, flakeedit.HasEntry(set, "devshell"))

	_, err = flakeedit.Locate(tree, "packages")
	require.ErrorIs(t, err, flakeedit.ErrSectionNotFound)
}

func TestPlanInsertAndApply(t *testing.T) {
	t.Parallel()

	src := `{ inputs = { }; }`
	set, err := flakeedit.Locate(syntax.Parse(src), "inputs")
	require.NoError(t, err)

	plan, err := flakeedit.PlanInsert(set, "a", "b", flakeedit.DefaultStyle)
	require.NoError(t, err)
	assert.Equal(t, strings.Index(src, "}"), plan.Offset)
	assert.Equal(t, "\n    a.url = \"b\";\n  ", plan.Text)

	got := flakeedit.Apply(src, plan)
	assert.Equal(t, src[:plan.Offset]+plan.Text+src[plan.Offset:], got)

	assert.Panics(t, func() {
		flakeedit.Apply(src, flakeedit.Plan{Offset: len(src) + 1})
	})
}

func TestNixStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		quote string
		attr  string
	}{
		"plain": {
			input: "nixpkgs",
			quote: `"nixpkgs"`,
			attr:  "nixpkgs",
		},
		"dash and quote": {
			input: "flake-utils'",
			quote: `"flake-utils'"`,
			attr:  "flake-utils'",
		},
		"dotted": {
			input: "a.b",
			quote: `"a.b"`,
			attr:  `"a.b"`,
		},
		"keyword": {
			input: "if",
			quote: `"if"`,
			attr:  `"if"`,
		},
		"escapes": {
			input: "a\"b\\c${d}\n",
			quote: `"a\"b\\c\${d}\n"`,
			attr:  `"a\"b\\c\${d}\n"`,
		},
		"leading digit": {
			input: "1abc",
			quote: `"1abc"`,
			attr:  `"1abc"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.quote, flakeedit.QuoteString(tc.input))
			assert.Equal(t, tc.attr, flakeedit.AttrName(tc.input))
		})
	}
}
