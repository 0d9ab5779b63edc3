package syntax

import (
	"fmt"
	"strings"
)

// Range is a half-open byte range into the source text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Element is either a [*Node] or a [*Token].
type Element interface {
	Kind() Kind
	Range() Range
	Parent() *Node
	String() string

	element()
}

var (
	_ Element = (*Node)(nil)
	_ Element = (*Token)(nil)
)

// Token is a leaf of the tree. Its text is an exact slice of the source.
type Token struct {
	parent *Node
	text   string
	kind   Kind
	offset int
}

func (*Token) element() {}

func (t *Token) Kind() Kind { return t.kind }

// Text returns the literal source text of the token.
func (t *Token) Text() string { return t.text }

func (t *Token) Range() Range {
	return Range{Start: t.offset, End: t.offset + len(t.text)}
}

func (t *Token) Parent() *Node { return t.parent }

func (t *Token) String() string { return t.text }

// Node is an interior element of the tree.
type Node struct {
	parent   *Node
	children []Element
	src      string
	rng      Range
	kind     Kind
}

func (*Node) element() {}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Range() Range { return n.rng }

func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children in document order.
func (n *Node) Children() []Element { return n.children }

// ChildNodes returns the direct children that are nodes.
func (n *Node) ChildNodes() []*Node {
	out := []*Node{}
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok {
			out = append(out, cn)
		}
	}

	return out
}

// ChildTokens returns the direct children that are tokens.
func (n *Node) ChildTokens() []*Token {
	out := []*Token{}
	for _, c := range n.children {
		if ct, ok := c.(*Token); ok {
			out = append(out, ct)
		}
	}

	return out
}

// FirstToken returns the first direct child token of the given kind.
func (n *Node) FirstToken(k Kind) (*Token, bool) {
	for _, c := range n.children {
		if ct, ok := c.(*Token); ok && ct.kind == k {
			return ct, true
		}
	}

	return nil, false
}

// Text returns the exact source text covered by the node.
func (n *Node) Text() string {
	return n.src[n.rng.Start:n.rng.End]
}

func (n *Node) String() string { return n.Text() }

// Tree is a lossless parse of one source text. Concatenating the text of every
// token in document order reproduces the source exactly.
type Tree struct {
	root   *Node
	source string
	errors []ParseError
}

// Root returns the [NodeRoot] node.
func (t *Tree) Root() *Node { return t.root }

// Source returns the text the tree was parsed from.
func (t *Tree) Source() string { return t.source }

// Errors returns the syntax errors found while parsing. A tree with errors is
// still complete: the offending tokens live in [NodeError] nodes.
func (t *Tree) Errors() []ParseError { return t.errors }

// String reassembles the source from the tree's tokens.
func (t *Tree) String() string {
	var sb strings.Builder
	sb.Grow(len(t.source))

	for ev := range Preorder(t.root) {
		if tok, ok := ev.Element.(*Token); ok && ev.Enter {
			sb.WriteString(tok.text)
		}
	}

	return sb.String()
}

// Expr returns the top-level expression of the tree, if any.
func (t *Tree) Expr() (*Node, bool) {
	for _, n := range t.root.ChildNodes() {
		if n.kind != NodeError {
			return n, true
		}
	}

	return nil, false
}

// ParseError describes a syntax problem at a byte range.
type ParseError struct {
	Message string
	Range   Range
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Range)
}
