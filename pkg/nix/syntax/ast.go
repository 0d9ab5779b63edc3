package syntax

import "strings"

// AST is a typed view of a [Node]. The set of variants is closed: [AttrSet],
// [AttrpathValue] and [Other]. Use [Classify] and a type switch to dispatch on
// node kind.
type AST interface {
	Syntax() *Node

	ast()
}

var (
	_ AST = AttrSet{}
	_ AST = AttrpathValue{}
	_ AST = Other{}
)

// Classify returns the typed view matching the node's kind.
//
//nolint:ireturn // Sum type.
func Classify(n *Node) AST {
	switch n.kind {
	case NodeAttrSet:
		return AttrSet{n}
	case NodeAttrpathValue:
		return AttrpathValue{n}
	}

	return Other{n}
}

// Other is any node that is neither an attribute set nor a binding.
type Other struct {
	node *Node
}

func (Other) ast() {}

func (o Other) Syntax() *Node { return o.node }

// Kind returns the tag of the underlying node.
func (o Other) Kind() Kind { return o.node.kind }

// AttrSet is a `{ ... }` or `rec { ... }` literal.
type AttrSet struct {
	node *Node
}

func (AttrSet) ast() {}

func (s AttrSet) Syntax() *Node { return s.node }

// IsRec reports whether the set is recursive.
func (s AttrSet) IsRec() bool {
	_, ok := s.node.FirstToken(TokenRec)

	return ok
}

// Entries returns the direct bindings and inherits of the set, in order.
func (s AttrSet) Entries() []Entry {
	entries := []Entry{}

	for _, n := range s.node.ChildNodes() {
		switch n.kind {
		case NodeAttrpathValue:
			entries = append(entries, AttrpathValue{n})
		case NodeInherit:
			entries = append(entries, Inherit{n})
		}
	}

	return entries
}

// Bindings returns the direct `path = value;` entries of the set.
func (s AttrSet) Bindings() []AttrpathValue {
	out := []AttrpathValue{}

	for _, n := range s.node.ChildNodes() {
		if n.kind == NodeAttrpathValue {
			out = append(out, AttrpathValue{n})
		}
	}

	return out
}

// CloseBrace returns the set's closing `}` token. It is absent when the set
// is unterminated.
func (s AttrSet) CloseBrace() (*Token, bool) {
	for _, t := range s.node.ChildTokens() {
		if t.text == "}" {
			return t, true
		}
	}

	return nil, false
}

// Entry is a member of an attribute set: an [AttrpathValue] or an [Inherit].
type Entry interface {
	Syntax() *Node

	entry()
}

// AttrpathValue is a `path = value;` binding.
type AttrpathValue struct {
	node *Node
}

func (AttrpathValue) ast()   {}
func (AttrpathValue) entry() {}

func (b AttrpathValue) Syntax() *Node { return b.node }

// Attrpath returns the binding's left-hand side.
func (b AttrpathValue) Attrpath() (Attrpath, bool) {
	for _, n := range b.node.ChildNodes() {
		if n.kind == NodeAttrpath {
			return Attrpath{n}, true
		}
	}

	return Attrpath{}, false
}

// Value returns the expression bound by the binding.
func (b AttrpathValue) Value() (*Node, bool) {
	seenAssign := false

	for _, c := range b.node.children {
		switch c := c.(type) {
		case *Token:
			if c.kind == TokenAssign {
				seenAssign = true
			}
		case *Node:
			if seenAssign && c.kind != NodeError {
				return c, true
			}
		}
	}

	return nil, false
}

// Inherit is an `inherit a b;` or `inherit (e) a b;` entry.
type Inherit struct {
	node *Node
}

func (Inherit) entry() {}

func (i Inherit) Syntax() *Node { return i.node }

// Attrpath is a dotted attribute name such as `nixpkgs.url`.
type Attrpath struct {
	node *Node
}

func (p Attrpath) Syntax() *Node { return p.node }

// Segments returns the attribute names of the path, without the dots.
func (p Attrpath) Segments() []*Node {
	if p.node == nil {
		return nil
	}

	return p.node.ChildNodes()
}

// First returns the text of the first segment.
func (p Attrpath) First() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}

	return segs[0].Text()
}

// String returns the path's source text, trimmed of surrounding whitespace.
func (p Attrpath) String() string {
	if p.node == nil {
		return ""
	}

	return strings.TrimSpace(p.node.Text())
}
