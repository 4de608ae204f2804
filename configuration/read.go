package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/joho/godotenv"
)

// Read fills c from a .env file (when present), the environment and the
// optional json config file. Process arguments belong to the command line
// tools, so the flag parser only ever sees the program name.
func Read(c *Configuration) error {

	err := loadDotEnv()
	if err != nil {
		return err
	}

	args := os.Args
	os.Args = args[:1]
	defer func() { os.Args = args }()

	goconfig.Read(c)

	return nil
}

// loadDotEnv exports the variables of filenames (.env by default) that are
// not already set. Missing files are skipped.
func loadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
