// Package seed generates random books for demo and load testing.
package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/go-faker/faker/v4"

	"bookstore/book"
)

// Genres is the set random books are drawn from.
var Genres = []string{"Fiction", "Fantasy", "Technical", "Children's", "Mystery", "Biography", "Poetry"}

// ISBN returns a random 13-digit identifier with the 978 book prefix.
func ISBN() string {
	return fmt.Sprintf("978%010d", rand.Int64N(10_000_000_000))
}

// Book returns one random book. Authors sometimes list a co-author, like real catalog entries.
func Book() book.Book {
	author := faker.Name()
	if rand.IntN(4) == 0 {
		author += ", " + faker.Name()
	}
	return book.Book{
		ISBN:   ISBN(),
		Title:  title(),
		Author: author,
		Genre:  Genres[rand.IntN(len(Genres))],
		Price:  math.Round((1+rand.Float64()*99)*100) / 100,
	}
}

// Books returns n random books with distinct ISBNs.
func Books(n int) []book.Book {
	books := make([]book.Book, 0, n)
	seen := make(map[string]struct{}, n)
	for len(books) < n {
		b := Book()
		if _, dup := seen[b.ISBN]; dup {
			continue
		}
		seen[b.ISBN] = struct{}{}
		books = append(books, b)
	}
	return books
}

func title() string {
	words := make([]string, 1+rand.IntN(4))
	for i := range words {
		w := faker.Word()
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
