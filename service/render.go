package service

import (
	"fmt"
	"io"

	"github.com/rkbarth/catalogdb/catalog"
)

const Help = `
=== Library System Commands ===
--list                                                List all books
--add --title=<t> --author=<a> --isbn=<i> [--summary=<s>] [--dewey=<d>]    Add a new book
--read --id=<id>                                      Read a book by ID
--update --id=<id> [--title] [--author] [--isbn] [--summary] [--dewey]    Update a book
--delete --id=<id>                                    Delete a book
--help                                                Show this help message

`

func writeBookLine(w io.Writer, book *catalog.Book) {
	fmt.Fprintf(w, "ID: %d | Title: %s | Author: %s | ISBN: %s | Dewey: %s | Available: %s\n",
		book.Id, book.Title, book.Author, book.Isbn, book.Dewey, yesNo(book.Available))
}

func writeBookDetails(w io.Writer, book *catalog.Book) {
	fmt.Fprintln(w, "\n=== Book Details ===")
	fmt.Fprintf(w, "ID: %d\n", book.Id)
	fmt.Fprintf(w, "Title: %s\n", book.Title)
	fmt.Fprintf(w, "Author: %s\n", book.Author)
	fmt.Fprintf(w, "ISBN: %s\n", book.Isbn)
	fmt.Fprintf(w, "Summary: %s\n", book.Summary)
	fmt.Fprintf(w, "Dewey Decimal: %s\n", book.Dewey)
	fmt.Fprintf(w, "Available: %s\n", yesNo(book.Available))
	fmt.Fprintln(w)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
