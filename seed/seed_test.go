package seed

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var isbnPattern = regexp.MustCompile(`^978\d{10}$`)

func TestISBN(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, isbnPattern, ISBN())
	}
}

func TestBook(t *testing.T) {
	for i := 0; i < 50; i++ {
		b := Book()
		assert.Regexp(t, isbnPattern, b.ISBN)
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.Contains(t, Genres, b.Genre)
		assert.GreaterOrEqual(t, b.Price, 1.0)
		assert.LessOrEqual(t, b.Price, 100.0)
	}
}

func TestBooksAreDistinct(t *testing.T) {
	books := Books(500)
	require.Len(t, books, 500)

	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = b.ISBN
	}
	slices.Sort(keys)
	assert.Len(t, slices.Compact(keys), 500)
	assert.Empty(t, Books(0))
}
