package service

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/rkbarth/catalogdb/catalog"
	"github.com/rkbarth/catalogdb/parser"
)

var ErrorMissingParameter = errors.New("missing required parameter")
var ErrorInvalidId = errors.New("invalid id")
var ErrorUnknownCommand = errors.New("unknown command")

// Service executes command lines against a catalog and writes the
// human readable outcome to out.
type Service struct {
	catalog *catalog.Catalog
	out     io.Writer
	logger  *zap.Logger
}

func NewService(c *catalog.Catalog, out io.Writer, logger *zap.Logger) *Service {
	return &Service{
		catalog: c,
		out:     out,
		logger:  logger,
	}
}

// Execute runs one command line. Every failure has already been reported
// to the output when Execute returns, the error is only informative.
func (s *Service) Execute(line string) error {

	command, params := parser.Parse(line)
	if command == "" {
		return nil
	}

	err := s.dispatch(command, params)
	if err != nil {
		s.logger.Debug("command failed", zap.String("command", command), zap.Error(err))
		return err
	}

	s.logger.Debug("command executed", zap.String("command", command))
	return nil
}

func (s *Service) dispatch(command string, params parser.Params) error {
	switch command {
	case "list":
		return s.list()
	case "add":
		return s.add(params)
	case "read":
		return s.read(params)
	case "update":
		return s.update(params)
	case "delete":
		return s.delete(params)
	case "help":
		return s.help()
	}

	fmt.Fprintf(s.out, "Unknown command: %s\n", command)
	s.help()
	return fmt.Errorf("%w: '%s'", ErrorUnknownCommand, command)
}

func (s *Service) list() error {
	books := s.catalog.List()
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books in the library.")
		return nil
	}

	fmt.Fprintln(s.out, "\n=== Library Books ===")
	for i := range books {
		writeBookLine(s.out, &books[i])
	}
	fmt.Fprintln(s.out)

	return nil
}

func (s *Service) add(params parser.Params) error {
	fields := fieldsFromParams(params)
	if fields.Title == "" || fields.Author == "" || fields.Isbn == "" {
		fmt.Fprintln(s.out, "Error: --add requires --title, --author, and --isbn parameters.")
		return fmt.Errorf("%w: add needs title, author and isbn", ErrorMissingParameter)
	}

	id, err := s.catalog.Add(fields)
	if errors.Is(err, catalog.ErrorDuplicateIsbn) {
		fmt.Fprintf(s.out, "Error: A book with ISBN %s already exists. Use --update to modify it.\n", fields.Isbn)
		return err
	}
	if err != nil && !errors.Is(err, catalog.ErrorJournal) {
		fmt.Fprintf(s.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(s.out, "Book added successfully with ID: %d\n", id)
	return s.journalWarning(err)
}

func (s *Service) read(params parser.Params) error {
	id, err := s.requireId("read", params)
	if err != nil {
		return err
	}

	book, err := s.catalog.Read(id)
	if err != nil {
		return s.notFound(id, err)
	}

	writeBookDetails(s.out, &book)
	return nil
}

func (s *Service) update(params parser.Params) error {
	id, err := s.requireId("update", params)
	if err != nil {
		return err
	}

	err = s.catalog.Update(id, fieldsFromParams(params))
	if err != nil && !errors.Is(err, catalog.ErrorJournal) {
		return s.notFound(id, err)
	}

	fmt.Fprintln(s.out, "Book updated successfully.")
	return s.journalWarning(err)
}

func (s *Service) delete(params parser.Params) error {
	id, err := s.requireId("delete", params)
	if err != nil {
		return err
	}

	err = s.catalog.Delete(id)
	if err != nil && !errors.Is(err, catalog.ErrorJournal) {
		return s.notFound(id, err)
	}

	fmt.Fprintln(s.out, "Book deleted successfully.")
	return s.journalWarning(err)
}

func (s *Service) help() error {
	io.WriteString(s.out, Help)
	return nil
}

// requireId reads the mandatory id parameter. An empty or non numeric
// value is rejected, there is no default id.
func (s *Service) requireId(command string, params parser.Params) (int64, error) {
	raw, exists := params["id"]
	if !exists {
		fmt.Fprintf(s.out, "Error: --%s requires --id parameter.\n", command)
		return 0, fmt.Errorf("%w: %s needs id", ErrorMissingParameter, command)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "Error: --id must be an integer, got '%s'.\n", raw)
		return 0, fmt.Errorf("%w: '%s'", ErrorInvalidId, raw)
	}

	return id, nil
}

func (s *Service) notFound(id int64, err error) error {
	if errors.Is(err, catalog.ErrorBookNotFound) {
		fmt.Fprintf(s.out, "Book with ID %d not found.\n", id)
		return err
	}
	fmt.Fprintf(s.out, "Error: %s\n", err.Error())
	return err
}

// journalWarning reports a change that was applied but not journaled.
func (s *Service) journalWarning(err error) error {
	if err == nil {
		return nil
	}
	s.logger.Warn("change not journaled", zap.Error(err))
	fmt.Fprintf(s.out, "Warning: %s\n", err.Error())
	return err
}

func fieldsFromParams(params parser.Params) catalog.Fields {
	return catalog.Fields{
		Title:   params["title"],
		Author:  params["author"],
		Isbn:    params["isbn"],
		Summary: params["summary"],
		Dewey:   params["dewey"],
	}
}
