package bst

import (
	"iter"
	"strings"

	"bookstore/book"
)

/*
Scan walks the tree level by level, using a FIFO queue seeded with the root, and yields
every book for which match returns true.
Result order is level order, not key order. The traversal runs when the sequence is ranged
over; breaking out of the loop stops it. The tree must not be modified while ranging.
*/
func (t *Tree) Scan(match func(book.Book) bool) iter.Seq[book.Book] {
	return func(yield func(book.Book) bool) {
		if t.root == nil {
			return
		}

		var q queue[*node]
		q.push(t.root)
		for !q.empty() {
			n, _ := q.pop()
			if match(n.book) && !yield(n.book) {
				return
			}
			if n.lesser != nil {
				q.push(n.lesser)
			}
			if n.greater != nil {
				q.push(n.greater)
			}
		}
	}
}

// FindByGenre yields books whose genre equals genre exactly (case-sensitive).
func (t *Tree) FindByGenre(genre string) iter.Seq[book.Book] {
	return t.Scan(func(b book.Book) bool {
		return b.Genre == genre
	})
}

// FindByAuthor yields books whose author field contains sub.
func (t *Tree) FindByAuthor(sub string) iter.Seq[book.Book] {
	return t.Scan(func(b book.Book) bool {
		return strings.Contains(b.Author, sub)
	})
}

// FindByTitle yields books whose title contains sub.
func (t *Tree) FindByTitle(sub string) iter.Seq[book.Book] {
	return t.Scan(func(b book.Book) bool {
		return strings.Contains(b.Title, sub)
	})
}

// InOrder returns a snapshot of all books sorted by ISBN (lesser, self, greater).
func (t *Tree) InOrder() []book.Book {
	books := make([]book.Book, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.lesser)
		books = append(books, n.book)
		walk(n.greater)
	}
	walk(t.root)
	return books
}
