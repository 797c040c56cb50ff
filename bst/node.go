package bst

import (
	"strings"

	"bookstore/book"
)

// node owns its record and both child subtrees. There are no parent pointers.
type node struct {
	book    book.Book
	lesser  *node
	greater *node
}

/*
insert descends from n comparing ISBNs until it reaches an empty link, where the book
becomes a new leaf. It returns the (possibly new) subtree root, so the caller must rebind
its link, and whether the book was inserted.
If a node with the same ISBN already exists, the new book is discarded and the existing
node is left untouched.
*/
func insert(n *node, b book.Book) (*node, bool) {
	if n == nil {
		return &node{book: b}, true
	}

	var inserted bool
	switch cmp := strings.Compare(b.ISBN, n.book.ISBN); {
	case cmp < 0:
		n.lesser, inserted = insert(n.lesser, b)
	case cmp > 0:
		n.greater, inserted = insert(n.greater, b)
	}
	return n, inserted
}

/*
remove deletes the node holding isbn from the subtree rooted at n and returns the new
subtree root together with whether a node was removed.
  - no children:  the node disappears, its parent link becomes nil.
  - one child:    the node is replaced by that child.
  - two children: the in-order successor (leftmost node of the greater subtree) is copied
    into this node, then the successor's original node is removed from the greater subtree.
    The node itself stays in place.
*/
func remove(n *node, isbn string) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch cmp := strings.Compare(isbn, n.book.ISBN); {
	case cmp < 0:
		n.lesser, removed = remove(n.lesser, isbn)
		return n, removed
	case cmp > 0:
		n.greater, removed = remove(n.greater, isbn)
		return n, removed
	}

	if n.lesser == nil {
		child := n.greater
		n.greater = nil
		return child, true
	}
	if n.greater == nil {
		child := n.lesser
		n.lesser = nil
		return child, true
	}

	successor := n.greater.min()
	n.book = successor.book
	// the successor's key is unique inside the greater subtree, so this hits exactly one node
	n.greater, _ = remove(n.greater, successor.book.ISBN)
	return n, true
}

// min returns the leftmost node of the subtree rooted at n.
func (n *node) min() *node {
	for n.lesser != nil {
		n = n.lesser
	}
	return n
}

// search descends by comparison and returns the node holding isbn, or nil.
func (n *node) search(isbn string) *node {
	for next := n; next != nil; {
		switch cmp := strings.Compare(isbn, next.book.ISBN); {
		case cmp < 0:
			next = next.lesser
		case cmp > 0:
			next = next.greater
		default:
			return next
		}
	}
	return nil
}

// release unlinks every node of the subtree in post-order and returns how many were visited.
func (n *node) release() int {
	if n == nil {
		return 0
	}
	count := n.lesser.release() + n.greater.release() + 1
	n.lesser, n.greater = nil, nil
	return count
}

func (n *node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.lesser.height(), n.greater.height())
}
