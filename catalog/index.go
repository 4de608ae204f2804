package catalog

// IndexIsbn maps an isbn to every book holding it. Uniqueness is only
// enforced on Add, an Update may leave two books sharing an isbn, so
// entries are kept per book id instead of a single row.
type IndexIsbn struct {
	Entries map[string]map[int64]*Book
}

func NewIndexIsbn() *IndexIsbn {
	return &IndexIsbn{
		Entries: map[string]map[int64]*Book{},
	}
}

func (i *IndexIsbn) Has(isbn string) bool {
	return len(i.Entries[isbn]) > 0
}

func (i *IndexIsbn) AddBook(book *Book) {
	holders, exists := i.Entries[book.Isbn]
	if !exists {
		holders = map[int64]*Book{}
		i.Entries[book.Isbn] = holders
	}
	holders[book.Id] = book
}

func (i *IndexIsbn) RemoveBook(book *Book) {
	holders, exists := i.Entries[book.Isbn]
	if !exists {
		return
	}
	delete(holders, book.Id)
	if len(holders) == 0 {
		delete(i.Entries, book.Isbn)
	}
}
