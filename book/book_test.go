package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	b := Book{
		ISBN:   "9780141182605",
		Title:  "1984",
		Author: "George Orwell",
		Genre:  "Fiction",
		Price:  9.99,
	}
	want := "ISBN: 9780141182605\nTitle: 1984\nAuthor: George Orwell\nGenre: Fiction\nPrice: 9.99\n"
	assert.Equal(t, want, b.String())
}

func TestProjections(t *testing.T) {
	books := []Book{{ISBN: "2", Title: "b"}, {ISBN: "1", Title: "a"}}
	assert.Equal(t, []string{"2", "1"}, ISBNs(books))
	assert.Equal(t, []string{"b", "a"}, Titles(books))
	assert.Empty(t, ISBNs(nil))
}
