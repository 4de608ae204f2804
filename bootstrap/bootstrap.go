package bootstrap

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/rkbarth/catalogdb/catalog"
	"github.com/rkbarth/catalogdb/configuration"
	"github.com/rkbarth/catalogdb/console"
	"github.com/rkbarth/catalogdb/echo"
	"github.com/rkbarth/catalogdb/logging"
	"github.com/rkbarth/catalogdb/service"
)

var VERSION = "dev"

const LibraryBanner = "Library System - Enter commands (--help for options, Ctrl+C to exit):"

func EchoBanner(prefix string) string {
	return fmt.Sprintf("Echo CLI - Enter params (--%[1]s01=value --%[1]s02=value...) or text (Ctrl+C to exit):", prefix)
}

// Library wires the catalog tool. start executes args (when any) as one
// command line and then serves the prompt until in is exhausted. stop
// flushes the logs.
func Library(c *configuration.Configuration, in io.Reader, out io.Writer) (start func(args []string) error, stop func(), err error) {

	logger, stop, err := logging.Setup(c)
	if err != nil {
		return nil, nil, err
	}

	journal := &journalLogger{
		journal: catalog.NewMemoryJournal(),
		logger:  logger,
	}
	books := catalog.NewCatalog(journal)
	if c.Samples {
		err = catalog.LoadSamples(books)
		if err != nil {
			stop()
			return nil, nil, fmt.Errorf("load samples: %w", err)
		}
	}

	s := service.NewService(books, out, logger)

	start = func(args []string) error {
		logger.Info("library starting", zap.String("version", VERSION), zap.Int("books", books.Len()))

		if len(args) > 0 {
			s.Execute(console.Arguments(args))
		}

		return console.New(in, out, c.Prompt).Run(LibraryBanner, func(line string) {
			s.Execute(line)
		})
	}

	return start, stop, nil
}

// Echo wires the echo tool. Initial args go through the same transform as
// every prompt line.
func Echo(c *configuration.Configuration, in io.Reader, out io.Writer) (start func(args []string) error, stop func(), err error) {

	logger, stop, err := logging.Setup(c)
	if err != nil {
		return nil, nil, err
	}

	transformer := echo.NewTransformer(c.EchoPrefix)
	transform := func(line string) {
		fmt.Fprintln(out, transformer.Transform(line))
	}

	start = func(args []string) error {
		logger.Info("echo starting", zap.String("version", VERSION), zap.String("marker", transformer.Marker()))

		if len(args) > 0 {
			transform(console.Arguments(args))
		}

		return console.New(in, out, c.Prompt).Run(EchoBanner(c.EchoPrefix), transform)
	}

	return start, stop, nil
}

type journalLogger struct {
	journal *catalog.MemoryJournal
	logger  *zap.Logger
}

func (j *journalLogger) Persist(command *catalog.Command) error {
	j.logger.Info("catalog changed",
		zap.String("command", command.Name),
		zap.String("uuid", command.Uuid),
		zap.Int64("book", command.BookId),
		zap.ByteString("payload", command.Payload),
	)
	return j.journal.Persist(command)
}
