package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/nixshellgen/pkg/nix/syntax"
)

func TestPreorderOrder(t *testing.T) {
	t.Parallel()

	tree := syntax.Parse(`{ a = 1; }`)

	got := []string{}

	for ev := range syntax.Preorder(tree.Root()) {
		n, ok := ev.Element.(*syntax.Node)
		if !ok {
			continue
		}

		prefix := "<"
		if ev.Enter {
			prefix = ">"
		}

		got = append(got, prefix+n.Kind().String())
	}

	assert.Equal(t, []string{
		">NODE_ROOT",
		">NODE_ATTR_SET",
		">NODE_ATTRPATH_VALUE",
		">NODE_ATTRPATH",
		">NODE_IDENT",
		"<NODE_IDENT",
		"<NODE_ATTRPATH",
		">NODE_LITERAL",
		"<NODE_LITERAL",
		"<NODE_ATTRPATH_VALUE",
		"<NODE_ATTR_SET",
		"<NODE_ROOT",
	}, got)
}

func TestPreorderStopsEarly(t *testing.T) {
	t.Parallel()

	tree := syntax.Parse(`[ 1 2 3 ]`)

	count := 0
	for range syntax.Preorder(tree.Root()) {
		count++
		if count == 3 {
			break
		}
	}

	assert.Equal(t, 3, count)
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	src := `{ a = { inputs = { x = 1; }; }; inputs = { y = 2; }; }`
	tree := syntax.Parse(src)
	require.Empty(t, tree.Errors())

	byName := func(name string) func(*syntax.Node) (syntax.AttrpathValue, bool) {
		return func(n *syntax.Node) (syntax.AttrpathValue, bool) {
			b, ok := syntax.Classify(n).(syntax.AttrpathValue)
			if !ok {
				return syntax.AttrpathValue{}, false
			}

			path, ok := b.Attrpath()
			if !ok || path.String() != name {
				return syntax.AttrpathValue{}, false
			}

			return b, true
		}
	}

	got, ok := syntax.FindFirst(tree.Root(), byName("inputs"))
	require.True(t, ok)
	assert.Equal(t, "inputs = { x = 1; };", got.Syntax().Text())

	got, ok = syntax.FindFirst(tree.Root(), byName("y"))
	require.True(t, ok)
	assert.Equal(t, "y = 2;", got.Syntax().Text())

	_, ok = syntax.FindFirst(tree.Root(), byName("missing"))
	assert.False(t, ok)
}
