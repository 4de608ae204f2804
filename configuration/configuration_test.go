package configuration

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/fulldump/biff"
)

func TestDefault(t *testing.T) {

	c := Default()

	AssertEqual(*c, Configuration{
		Prompt:     "> ",
		Samples:    true,
		EchoPrefix: "input",
		LogLevel:   "warn",
	})
}

func TestDefault_Independent(t *testing.T) {

	a := Default()
	a.Prompt = "$ "

	AssertEqual(Default().Prompt, "> ")
}

func TestRead(t *testing.T) {

	dir := t.TempDir()
	t.Chdir(dir)
	os.WriteFile(filepath.Join(dir, ".env"), []byte("PROMPT=\"catalog$ \"\n"), 0666)

	// registered so the value loaded from .env is undone afterwards
	t.Setenv("PROMPT", "")
	os.Unsetenv("PROMPT")
	t.Setenv("LOGLEVEL", "debug")

	args := os.Args
	defer func() { os.Args = args }()
	os.Args = []string{"librarian", "--add", "--title=Dune", "--isbn=1"}

	c := Default()
	err := Read(c)

	AssertNil(err)
	AssertEqual(c.Prompt, "catalog$ ")
	AssertEqual(c.LogLevel, "debug")
	AssertEqual(c.EchoPrefix, "input")
	AssertEqual(os.Args, []string{"librarian", "--add", "--title=Dune", "--isbn=1"})
}

func TestLoadDotEnv_Missing(t *testing.T) {

	err := loadDotEnv(filepath.Join(t.TempDir(), ".env"))

	AssertNil(err)
}

func TestLoadDotEnv_Malformed(t *testing.T) {

	filename := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(filename, []byte("BAD!KEY=value\n"), 0666)

	err := loadDotEnv(filename)

	AssertNotNil(err)
}
