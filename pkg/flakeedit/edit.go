package flakeedit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/macropower/nixshellgen/pkg/nix/syntax"
)

// DefaultSection is the attribute holding flake inputs.
const DefaultSection = "inputs"

// Outcome reports what an edit did.
type Outcome int

const (
	// OutcomeAdded means the entry was inserted.
	OutcomeAdded Outcome = iota + 1
	// OutcomeAlreadyPresent means the entry existed and nothing changed.
	OutcomeAlreadyPresent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeAlreadyPresent:
		return "already present"
	}

	return "unknown"
}

// Style controls the whitespace around an inserted entry. It does not adapt
// to the surrounding file: tabs or deeper nesting are not detected.
type Style struct {
	// EntryIndent precedes the new entry on its own line.
	EntryIndent string
	// CloseIndent follows the entry, before the set's closing brace.
	CloseIndent string
}

// DefaultStyle matches a conventionally formatted flake.nix, where the inputs
// set sits one level (two spaces) deep.
var DefaultStyle = Style{
	EntryIndent: "    ",
	CloseIndent: "  ",
}

// Plan is a pending insertion into the original source text.
type Plan struct {
	Text   string
	Offset int
}

// Locate finds the attribute set bound to section. The first match in
// preorder wins, so an outer or earlier binding is preferred over a later
// one.
func Locate(tree *syntax.Tree, section string) (syntax.AttrSet, error) {
	if !utf8.ValidString(tree.Source()) {
		return syntax.AttrSet{}, fmt.Errorf("%w: source is not valid UTF-8", ErrParseUnusable)
	}

	if _, ok := tree.Expr(); !ok {
		return syntax.AttrSet{}, fmt.Errorf("%w: no expression found", ErrParseUnusable)
	}

	set, ok := syntax.FindFirst(tree.Root(), func(n *syntax.Node) (syntax.AttrSet, bool) {
		binding, ok := syntax.Classify(n).(syntax.AttrpathValue)
		if !ok {
			return syntax.AttrSet{}, false
		}

		path, ok := binding.Attrpath()
		if !ok || path.String() != section {
			return syntax.AttrSet{}, false
		}

		value, ok := binding.Value()
		if !ok {
			return syntax.AttrSet{}, false
		}

		set, ok := syntax.Classify(value).(syntax.AttrSet)

		return set, ok
	})
	if !ok {
		return syntax.AttrSet{}, fmt.Errorf("%w: no %q attribute set", ErrSectionNotFound, section)
	}

	return set, nil
}

// HasEntry reports whether set directly binds name. A binding counts when its
// path equals name, or when name is its first segment, so both
// `name = { ... };` and `name.url = ...;` are matches. Comparison is on the
// trimmed source text; differently quoted spellings of the same name are not
// recognised.
func HasEntry(set syntax.AttrSet, name string) bool {
	name = strings.TrimSpace(name)

	for _, b := range set.Bindings() {
		path, ok := b.Attrpath()
		if !ok {
			continue
		}

		if path.String() == name || strings.TrimSpace(path.First()) == name {
			return true
		}
	}

	return false
}

// PlanInsert computes the insertion of `name.url = "value";` as the last
// entry of set, immediately before its closing brace. name must already be a
// rendered attribute name (see [AttrName]).
func PlanInsert(set syntax.AttrSet, name, value string, style Style) (Plan, error) {
	brace, ok := set.CloseBrace()
	if !ok {
		return Plan{}, fmt.Errorf("%w: missing closing brace", ErrMalformedSection)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(style.EntryIndent)
	sb.WriteString(name)
	sb.WriteString(".url = ")
	sb.WriteString(QuoteString(value))
	sb.WriteString(";\n")
	sb.WriteString(style.CloseIndent)

	return Plan{
		Offset: brace.Range().Start,
		Text:   sb.String(),
	}, nil
}

// Apply splices the plan into src. Every byte of src is kept, in order, on
// either side of the inserted text. Apply panics if the plan's offset lies
// outside src.
func Apply(src string, p Plan) string {
	if p.Offset < 0 || p.Offset > len(src) {
		panic(fmt.Sprintf("flakeedit: plan offset %d outside source of length %d", p.Offset, len(src)))
	}

	return src[:p.Offset] + p.Text + src[p.Offset:]
}

type options struct {
	section string
	style   Style
}

// Option configures an edit.
type Option func(*options)

// WithSection sets the attribute that holds the entries. The default is
// [DefaultSection].
func WithSection(section string) Option {
	return func(o *options) {
		o.section = section
	}
}

// WithStyle sets the whitespace used around inserted entries.
func WithStyle(style Style) Option {
	return func(o *options) {
		o.style = style
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		section: DefaultSection,
		style:   DefaultStyle,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// AddInput adds `name.url = "value";` to the section of src, unless the
// section already binds name. It returns the resulting text, which is src
// itself when nothing changed.
func AddInput(src, name, value string, opts ...Option) (string, Outcome, error) {
	return addInput(syntax.Parse(src), name, value, newOptions(opts))
}

func addInput(tree *syntax.Tree, name, value string, o *options) (string, Outcome, error) {
	src := tree.Source()

	name = strings.TrimSpace(name)
	if name == "" {
		return src, 0, fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}

	if value == "" {
		return src, 0, fmt.Errorf("%w: empty value for %q", ErrInvalidArgument, name)
	}

	set, err := Locate(tree, o.section)
	if err != nil {
		return src, 0, err
	}

	attr := AttrName(name)
	if HasEntry(set, attr) {
		return src, OutcomeAlreadyPresent, nil
	}

	plan, err := PlanInsert(set, attr, value, o.style)
	if err != nil {
		return src, 0, err
	}

	return Apply(src, plan), OutcomeAdded, nil
}
