package book

import "fmt"

/*
Book is one catalog record.
ISBN uniquely identifies a record and is used for ordering records in the index.
Author may hold several co-authors in a single string.
*/
type Book struct {
	ISBN   string
	Title  string
	Author string
	Genre  string
	Price  float64
}

// String renders the record the way the catalog prints it on the console.
func (b Book) String() string {
	return fmt.Sprintf("ISBN: %s\nTitle: %s\nAuthor: %s\nGenre: %s\nPrice: %.2f\n",
		b.ISBN, b.Title, b.Author, b.Genre, b.Price)
}

// Titles returns the titles of books in order.
func Titles(books []Book) []string {
	titles := make([]string, len(books))
	for i, b := range books {
		titles[i] = b.Title
	}
	return titles
}

// ISBNs returns the identifiers of books in order.
func ISBNs(books []Book) []string {
	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = b.ISBN
	}
	return keys
}
