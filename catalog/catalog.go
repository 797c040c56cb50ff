// Package catalog is the bookstore's entry point to the ordered index: it owns one tree,
// serializes access to it, and builds the sorted report.
package catalog

import (
	"iter"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"bookstore/book"
	"bookstore/bst"
	"bookstore/sorter"
)

// Catalog guards a single bst.Tree with one exclusive lock. Search results are collected
// while the lock is held, so callers never range over the live tree.
type Catalog struct {
	mu   sync.Mutex
	tree *bst.Tree
	log  logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Catalog {
	return &Catalog{
		tree: bst.New(),
		log:  log,
	}
}

// Insert adds b and reports whether it was stored. A book whose ISBN is already in the
// catalog is ignored and the existing record kept.
func (c *Catalog) Insert(b book.Book) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tree.Insert(b) {
		c.log.WithField("isbn", b.ISBN).Warn("duplicate identifier, book ignored")
		return false
	}
	c.log.WithFields(logrus.Fields{"isbn": b.ISBN, "title": b.Title}).Debug("book added")
	return true
}

// Load inserts books in order and returns how many were stored.
func (c *Catalog) Load(books []book.Book) int {
	added := 0
	for _, b := range books {
		if c.Insert(b) {
			added++
		}
	}
	return added
}

// Delete removes the book with the given ISBN and reports whether it was present.
func (c *Catalog) Delete(isbn string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tree.Delete(isbn) {
		c.log.WithField("isbn", isbn).Debug("delete: book not found")
		return false
	}
	c.log.WithField("isbn", isbn).Debug("book deleted")
	return true
}

func (c *Catalog) FindByID(isbn string) (book.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.Find(isbn)
}

func (c *Catalog) FindByGenre(genre string) []book.Book {
	return c.collect(func(t *bst.Tree) iter.Seq[book.Book] { return t.FindByGenre(genre) })
}

func (c *Catalog) FindByAuthor(sub string) []book.Book {
	return c.collect(func(t *bst.Tree) iter.Seq[book.Book] { return t.FindByAuthor(sub) })
}

func (c *Catalog) FindByTitle(sub string) []book.Book {
	return c.collect(func(t *bst.Tree) iter.Seq[book.Book] { return t.FindByTitle(sub) })
}

// ListSortedByTitle snapshots the catalog in ISBN order and sorts the snapshot by title.
func (c *Catalog) ListSortedByTitle() []book.Book {
	c.mu.Lock()
	books := c.tree.InOrder()
	c.mu.Unlock()

	sorter.ByTitle(books)
	return books
}

func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.Len()
}

// Tree renders the current shape of the index.
func (c *Catalog) Tree() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tree.String()
}

// Close releases every book. The catalog is empty, but still usable, afterwards.
func (c *Catalog) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	released := c.tree.Clear()
	c.log.WithField("released", released).Debug("catalog closed")
}

func (c *Catalog) collect(query func(*bst.Tree) iter.Seq[book.Book]) []book.Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	books := slices.Collect(query(c.tree))
	if books == nil {
		books = []book.Book{}
	}
	return books
}
