package syntax

import "iter"

// WalkEvent is produced by [Preorder]. Every element is entered once and left
// once; a node's children are visited between its Enter and Leave events.
type WalkEvent struct {
	Element Element
	Enter   bool
}

// Preorder walks the subtree rooted at n depth-first, in document order,
// including tokens.
func Preorder(n *Node) iter.Seq[WalkEvent] {
	return func(yield func(WalkEvent) bool) {
		walk(n, yield)
	}
}

func walk(e Element, yield func(WalkEvent) bool) bool {
	if !yield(WalkEvent{Element: e, Enter: true}) {
		return false
	}

	if n, ok := e.(*Node); ok {
		for _, c := range n.children {
			if !walk(c, yield) {
				return false
			}
		}
	}

	return yield(WalkEvent{Element: e, Enter: false})
}

// FindFirst applies match to n and each of its descendant nodes in preorder
// (parent before children, children left to right) and returns the first
// result for which match reports true. The outermost, earliest match in the
// source wins.
func FindFirst[T any](n *Node, match func(*Node) (T, bool)) (T, bool) {
	for ev := range Preorder(n) {
		if !ev.Enter {
			continue
		}

		if node, ok := ev.Element.(*Node); ok {
			if v, ok := match(node); ok {
				return v, true
			}
		}
	}

	var zero T

	return zero, false
}
