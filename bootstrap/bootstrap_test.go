package bootstrap

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/rkbarth/catalogdb/configuration"
	"github.com/rkbarth/catalogdb/service"
)

func testConfig(t *testing.T) *configuration.Configuration {
	c := configuration.Default()
	c.LogLevel = "info"
	c.LogFile = filepath.Join(t.TempDir(), "test.log")
	return c
}

func TestLibrary(t *testing.T) {

	c := testConfig(t)
	c.Samples = false
	in := strings.NewReader("--add --title=Dune --author=Herbert --isbn=111\n\n--read --id=x\n--list\n")
	out := &bytes.Buffer{}

	start, stop, err := Library(c, in, out)
	AssertNil(err)

	err = start([]string{"--list"})
	stop()
	AssertNil(err)

	AssertEqual(out.String(), ""+
		"No books in the library.\n"+
		LibraryBanner+"\n"+
		"> Book added successfully with ID: 1\n"+
		"> "+
		"> Error: --id must be an integer, got 'x'.\n"+
		"> \n=== Library Books ===\n"+
		"ID: 1 | Title: Dune | Author: Herbert | ISBN: 111 | Dewey:  | Available: Yes\n"+
		"\n"+
		"> \n")

	logs, err := os.ReadFile(c.LogFile)
	AssertNil(err)
	AssertTrue(strings.Contains(string(logs), "catalog changed"))
}

func TestLibrary_Samples(t *testing.T) {

	c := testConfig(t)
	in := strings.NewReader("--read --id=10\n")
	out := &bytes.Buffer{}

	start, stop, err := Library(c, in, out)
	AssertNil(err)
	defer stop()

	AssertNil(start([]string{"--add", "--title=C++", "--author=X", "--isbn=978-0321714113"}))

	AssertTrue(strings.HasPrefix(out.String(),
		"Error: A book with ISBN 978-0321714113 already exists. Use --update to modify it.\n"))
	AssertTrue(strings.Contains(out.String(), "Title: Thinking in C++\n"))
}

func TestLibrary_UnknownCommandKeepsRunning(t *testing.T) {

	c := testConfig(t)
	in := strings.NewReader("--bogus\n--delete --id=1\n")
	out := &bytes.Buffer{}

	start, stop, err := Library(c, in, out)
	AssertNil(err)
	defer stop()

	AssertNil(start(nil))
	AssertTrue(strings.Contains(out.String(), "> Unknown command: bogus\n"+service.Help+"> Book deleted successfully.\n"))
}

func TestLibrary_InvalidLogLevel(t *testing.T) {

	c := testConfig(t)
	c.LogLevel = "nope"

	_, _, err := Library(c, strings.NewReader(""), &bytes.Buffer{})
	AssertNotNil(err)
}

func TestEcho(t *testing.T) {

	c := testConfig(t)
	in := strings.NewReader("--input02=world --input01=hello\nhello world\n")
	out := &bytes.Buffer{}

	start, stop, err := Echo(c, in, out)
	AssertNil(err)

	err = start([]string{"--input1=b", "--input0=a"})
	stop()
	AssertNil(err)

	AssertEqual(out.String(), ""+
		"a b\n"+
		EchoBanner("input")+"\n"+
		"> hello world\n"+
		"> hello world\n"+
		"> \n")
}

func TestEchoBanner(t *testing.T) {
	AssertEqual(EchoBanner("input"), "Echo CLI - Enter params (--input01=value --input02=value...) or text (Ctrl+C to exit):")
}

func TestEcho_PlainArguments(t *testing.T) {

	c := testConfig(t)
	out := &bytes.Buffer{}

	start, stop, err := Echo(c, strings.NewReader(""), out)
	AssertNil(err)

	err = start([]string{"hello", "world"})
	stop()
	AssertNil(err)

	AssertEqual(out.String(), "hello world\n"+EchoBanner("input")+"\n> \n")
}
