// Package sorter orders catalog snapshots for reporting.
package sorter

import (
	"strings"

	"bookstore/book"
)

/*
ByTitle sorts books in place by title, in ascending byte-wise order (no locale, no case
folding). It is a quicksort with the last element as pivot, so it is not stable: books
sharing a title end up in unspecified relative order.
*/
func ByTitle(books []book.Book) {
	quicksort(books, 0, len(books)-1)
}

func quicksort(books []book.Book, low, high int) {
	if low < high {
		p := partition(books, low, high)
		quicksort(books, low, p-1)
		quicksort(books, p+1, high)
	}
}

/*
partition moves every book whose title is strictly less than the pivot's (books[high])
to the front of [low, high], then places the pivot right after them and returns its index.
*/
func partition(books []book.Book, low, high int) int {
	pivot := books[high].Title
	i := low - 1
	for j := low; j < high; j++ {
		if strings.Compare(books[j].Title, pivot) < 0 {
			i++
			books[i], books[j] = books[j], books[i]
		}
	}
	books[i+1], books[high] = books[high], books[i+1]
	return i + 1
}
