package bst

import "bookstore/book"

/*
Tree is a binary search tree of books ordered by ISBN.
It only keeps a pointer to the root node and a record count. A Tree is not safe for
concurrent use; callers sharing one must serialize access with a single lock.
*/
type Tree struct {
	root *node
	size int
}

func New() *Tree {
	return &Tree{}
}

// Insert adds b to the tree. It returns false, leaving the tree unchanged, if a book with
// the same ISBN is already present.
func (t *Tree) Insert(b book.Book) bool {
	var inserted bool
	t.root, inserted = insert(t.root, b)
	if inserted {
		t.size++
	}
	return inserted
}

// Delete removes the book with the given ISBN. Deleting an absent ISBN is a no-op that
// returns false.
func (t *Tree) Delete(isbn string) bool {
	var removed bool
	t.root, removed = remove(t.root, isbn)
	if removed {
		t.size--
	}
	return removed
}

/*
Find returns the book stored under isbn.
It descends the tree by comparison. Identifiers are unique, so the result is the same as a
level-order scan for the first matching ISBN (see Scan), only without visiting every node.
*/
func (t *Tree) Find(isbn string) (book.Book, bool) {
	n := t.root.search(isbn)
	if n == nil {
		return book.Book{}, false
	}
	return n.book, true
}

// Len returns the number of books in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	return t.root.height()
}

// Clear tears the tree down in post-order and returns the number of released nodes.
func (t *Tree) Clear() int {
	released := t.root.release()
	t.root = nil
	t.size = 0
	return released
}

func (t *Tree) String() string {
	v := &visualizer{t}
	return v.visualize()
}
