package syntax

// builder assembles the tree bottom-up while the parser runs. Nodes are
// opened and closed in stack order; [builder.startNodeAt] retroactively wraps
// children that were already emitted, which is how left-recursive constructs
// such as binary operators and application are built.
type builder struct {
	stack []*Node
}

func newBuilder(src string) *builder {
	root := &Node{kind: NodeRoot, src: src}

	return &builder{stack: []*Node{root}}
}

func (b *builder) current() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *builder) startNode(k Kind) {
	cur := b.current()
	n := &Node{kind: k, src: cur.src}
	cur.children = append(cur.children, n)
	b.stack = append(b.stack, n)
}

type checkpoint int

func (b *builder) checkpoint() checkpoint {
	return checkpoint(len(b.current().children))
}

func (b *builder) startNodeAt(cp checkpoint, k Kind) {
	cur := b.current()
	n := &Node{kind: k, src: cur.src}
	n.children = append(n.children, cur.children[cp:]...)
	cur.children = append(cur.children[:cp], n)
	b.stack = append(b.stack, n)
}

func (b *builder) finishNode() {
	if len(b.stack) > 1 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *builder) token(t *Token) {
	cur := b.current()
	cur.children = append(cur.children, t)
}

// finish closes every open node and links parents and ranges.
func (b *builder) finish() *Node {
	root := b.stack[0]
	b.stack = b.stack[:1]
	link(root, nil, 0)

	return root
}

// link sets parent pointers and computes node ranges. A node without tokens
// gets an empty range at the offset where it sits.
func link(n, parent *Node, offset int) int {
	n.parent = parent
	n.rng.Start = offset

	for _, c := range n.children {
		switch c := c.(type) {
		case *Token:
			c.parent = n
			offset = c.offset + len(c.text)
		case *Node:
			offset = link(c, n, offset)
		}
	}

	n.rng.End = offset

	return offset
}
