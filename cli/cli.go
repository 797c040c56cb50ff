package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"bookstore/book"
)

var (
	ErrEmptyField   = errors.New("field must not be empty")
	ErrInvalidPrice = errors.New("price must be a non-negative number")
)

// Store is the catalog the CLI drives.
type Store interface {
	Insert(b book.Book) bool
	Delete(isbn string) bool
	FindByID(isbn string) (book.Book, bool)
	FindByGenre(genre string) []book.Book
	FindByAuthor(sub string) []book.Book
	FindByTitle(sub string) []book.Book
	ListSortedByTitle() []book.Book
	Len() int
	Tree() string
}

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	store   Store

	heading *color.Color
	success *color.Color
	failure *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, store Store, useColor bool) *Cli {
	c := &Cli{
		scanner: s,
		out:     out,
		store:   store,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.heading, c.success, c.failure} {
		if useColor {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// Start runs the read-eval loop until EXIT or the end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
Bookstore Management System

Available Commands:
  ADD               Add a book (prompts for ISBN, title, author, genre, price)
  DEL <isbn>        Delete the book with the given ISBN
  GET <isbn>        Show the book with the given ISBN
  GENRE <genre>     List books of exactly this genre
  AUTHOR <text>     List books whose author contains text
  TITLE <text>      List books whose title contains text
  SORT              List all books sorted by title
  TREE              Show the shape of the index
  COUNT             Show the number of books
  HELP              Show this message
  EXIT              Terminate this session
`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput handles one command line and returns false when the session should end.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		c.failure.Fprintf(c.out, "Unknown command %q\n", command)
	case "help":
		c.printHelp()
	case "add":
		c.processAddCommand()
	case "del":
		c.processDeleteCommand(fields[1:])
	case "get":
		c.processGetCommand(fields[1:])
	case "genre":
		c.processSearchCommand(fields[1:], "GENRE <genre>", "Books in the %s genre:", c.store.FindByGenre)
	case "author":
		c.processSearchCommand(fields[1:], "AUTHOR <text>", "Books by %s:", c.store.FindByAuthor)
	case "title":
		c.processSearchCommand(fields[1:], "TITLE <text>", "Books with title %s:", c.store.FindByTitle)
	case "sort":
		c.heading.Fprintln(c.out, "Books sorted by title:")
		c.printBooks(c.store.ListSortedByTitle())
	case "tree":
		fmt.Fprint(c.out, c.store.Tree())
	case "count":
		fmt.Fprintf(c.out, "%d books\n", c.store.Len())
	case "exit":
		fmt.Fprintln(c.out, "Exiting program.")
		return false
	}
	return true
}

func (c *Cli) processAddCommand() {
	b, err := c.readBook()
	if err != nil {
		c.failure.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	if !c.store.Insert(b) {
		c.failure.Fprintf(c.out, "A book with ISBN %s already exists.\n", b.ISBN)
		return
	}
	c.success.Fprintln(c.out, "Book added successfully!")
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: DEL <isbn>")
		return
	}
	if !c.store.Delete(args[0]) {
		c.failure.Fprintln(c.out, "Book not found.")
		return
	}
	c.success.Fprintln(c.out, "Book deleted successfully!")
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: GET <isbn>")
		return
	}
	b, found := c.store.FindByID(args[0])
	if !found {
		c.failure.Fprintln(c.out, "Book not found.")
		return
	}
	c.success.Fprintln(c.out, "Book found!")
	fmt.Fprintln(c.out, b)
}

func (c *Cli) processSearchCommand(args []string, usage, heading string, search func(string) []book.Book) {
	if len(args) == 0 {
		fmt.Fprintf(c.out, "Usage: %s\n", usage)
		return
	}
	query := strings.Join(args, " ")
	c.heading.Fprintf(c.out, heading+"\n", query)
	c.printBooks(search(query))
}

func (c *Cli) printBooks(books []book.Book) {
	if len(books) == 0 {
		fmt.Fprintln(c.out, "No books found.")
		return
	}
	for _, b := range books {
		fmt.Fprintln(c.out, b)
	}
}

func (c *Cli) readBook() (book.Book, error) {
	var (
		b     book.Book
		price string
	)
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"ISBN", &b.ISBN},
		{"Title", &b.Title},
		{"Author", &b.Author},
		{"Genre", &b.Genre},
		{"Price", &price},
	}
	for _, f := range fields {
		v, err := c.readField(f.prompt)
		if err != nil {
			return book.Book{}, err
		}
		*f.dst = v
	}
	if strings.ContainsAny(b.ISBN, " \t") {
		return book.Book{}, errors.Errorf("ISBN %q must not contain spaces", b.ISBN)
	}

	var err error
	if b.Price, err = parsePrice(price); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

func (c *Cli) readField(name string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", name)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.Wrapf(err, "read %s", name)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "read %s", name)
	}
	v := strings.TrimSpace(c.scanner.Text())
	if v == "" {
		return "", errors.Wrap(ErrEmptyField, name)
	}
	return v, nil
}

func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, errors.Wrapf(ErrInvalidPrice, "%q", s)
	}
	return price, nil
}
