package catalog

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/google/uuid"
)

var ErrorDuplicateIsbn = errors.New("isbn already exists")
var ErrorBookNotFound = errors.New("book not found")

// ErrorJournal is returned when a change was applied to the catalog but
// could not be recorded.
var ErrorJournal = errors.New("journal failed")

type Catalog struct {
	Books   *BTreeContainer
	Isbns   *IndexIsbn
	MaxId   int64 // Monotonic id counter, ids are never reused
	mutex   *sync.RWMutex
	journal Journal
}

// NewCatalog returns an empty catalog. journal may be nil.
func NewCatalog(journal Journal) *Catalog {
	return &Catalog{
		Books:   NewBTreeContainer(),
		Isbns:   NewIndexIsbn(),
		mutex:   &sync.RWMutex{},
		journal: journal,
	}
}

func (c *Catalog) IsIsbnTaken(isbn string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.Isbns.Has(isbn)
}

func (c *Catalog) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.Books.Len()
}

// Add stores a new available book and returns its id.
func (c *Catalog) Add(fields Fields) (int64, error) {
	c.mutex.Lock()

	if c.Isbns.Has(fields.Isbn) {
		c.mutex.Unlock()
		return 0, fmt.Errorf("%w: '%s'", ErrorDuplicateIsbn, fields.Isbn)
	}

	c.MaxId++
	book := &Book{
		Id:        c.MaxId,
		Title:     fields.Title,
		Author:    fields.Author,
		Isbn:      fields.Isbn,
		Summary:   fields.Summary,
		Dewey:     fields.Dewey,
		Available: true,
	}
	c.Books.ReplaceOrInsert(book)
	c.Isbns.AddBook(book)
	stored := *book

	c.mutex.Unlock()

	return stored.Id, c.persist(CommandAdd, stored.Id, stored)
}

// List returns a copy of every book, ascending by id.
func (c *Catalog) List() []Book {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	books := make([]Book, 0, c.Books.Len())
	c.Books.Traverse(func(book *Book) bool {
		books = append(books, *book)
		return true
	})
	return books
}

func (c *Catalog) Read(id int64) (Book, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	book, found := c.Books.Get(id)
	if !found {
		return Book{}, fmt.Errorf("%w: %d", ErrorBookNotFound, id)
	}
	return *book, nil
}

// Update overwrites the non empty fields of the book. Isbn uniqueness is
// not checked again here.
func (c *Catalog) Update(id int64, fields Fields) error {
	c.mutex.Lock()

	book, found := c.Books.Get(id)
	if !found {
		c.mutex.Unlock()
		return fmt.Errorf("%w: %d", ErrorBookNotFound, id)
	}

	c.Isbns.RemoveBook(book)
	book.patch(fields)
	c.Isbns.AddBook(book)

	c.mutex.Unlock()

	return c.persist(CommandUpdate, id, fields)
}

func (c *Catalog) Delete(id int64) error {
	c.mutex.Lock()

	book, found := c.Books.Delete(id)
	if !found {
		c.mutex.Unlock()
		return fmt.Errorf("%w: %d", ErrorBookNotFound, id)
	}
	c.Isbns.RemoveBook(book)

	c.mutex.Unlock()

	return c.persist(CommandDelete, id, nil)
}

func (c *Catalog) persist(name string, id int64, payload any) error {
	if c.journal == nil {
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: json encode payload: %w", ErrorJournal, err)
	}

	command := &Command{
		Name:      name,
		Uuid:      uuid.New().String(),
		Timestamp: time.Now().UnixNano(),
		BookId:    id,
		Payload:   data,
	}

	err = c.journal.Persist(command)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrorJournal, err)
	}

	return nil
}
