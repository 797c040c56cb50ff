package catalog

import "bookstore/book"

// Classics returns the books the store starts with.
func Classics() []book.Book {
	return []book.Book{
		{ISBN: "9780131103627", Title: "The C Programming Language", Author: "Brian Kernighan, Dennis Ritchie", Genre: "Technical", Price: 45.99},
		{ISBN: "9780321856715", Title: "C Programming: A Modern Approach", Author: "K. N. King", Genre: "Technical", Price: 59.99},
		{ISBN: "9780201633610", Title: "Design Patterns: Elements of Reusable Object-Oriented Software", Author: "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides", Genre: "Technical", Price: 54.99},
		{ISBN: "9781451673319", Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", Price: 10.99},
		{ISBN: "9780141182605", Title: "1984", Author: "George Orwell", Genre: "Fiction", Price: 9.99},
		{ISBN: "9780061120084", Title: "The Catcher in the Rye", Author: "J.D. Salinger", Genre: "Fiction", Price: 11.99},
		{ISBN: "9780439023481", Title: "The Hunger Games", Author: "Suzanne Collins", Genre: "Fiction", Price: 12.99},
		{ISBN: "9780547928227", Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", Genre: "Fantasy", Price: 14.99},
		{ISBN: "9780545010221", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 13.99},
		{ISBN: "9780060256654", Title: "Where the Wild Things Are", Author: "Maurice Sendak", Genre: "Children's", Price: 8.99},
		{ISBN: "9780394800134", Title: "Green Eggs and Ham", Author: "Dr. Seuss", Genre: "Children's", Price: 7.99},
		{ISBN: "9780689870402", Title: "The Very Hungry Caterpillar", Author: "Eric Carle", Genre: "Children's", Price: 6.99},
		{ISBN: "9780439554930", Title: "Diary of a Wimpy Kid", Author: "Jeff Kinney", Genre: "Children's", Price: 10.99},
	}
}
