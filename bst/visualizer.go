package bst

import "strings"

const indent = "    "

/*
visualizer draws the tree sideways: the greater subtree on top, the lesser one below, and
every level indented one step further than its parent.

	        E
	    D
	        C
	B
	    A
*/
type visualizer struct {
	tree *Tree
}

func (v *visualizer) visualize() string {
	if v.tree.root == nil {
		return "(empty)\n"
	}
	var sb strings.Builder
	v.draw(&sb, v.tree.root, 0)
	return sb.String()
}

func (v *visualizer) draw(sb *strings.Builder, n *node, depth int) {
	if n == nil {
		return
	}
	v.draw(sb, n.greater, depth+1)
	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteString(n.book.ISBN)
	sb.WriteByte('\n')
	v.draw(sb, n.lesser, depth+1)
}
