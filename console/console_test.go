package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	. "github.com/fulldump/biff"
)

func TestRun(t *testing.T) {

	in := strings.NewReader("--list\n\nlast")
	out := &bytes.Buffer{}

	lines := []string{}
	err := New(in, out, "> ").Run("Banner", func(line string) {
		lines = append(lines, line)
		out.WriteString("[" + line + "]\n")
	})

	AssertNil(err)
	AssertEqual(lines, []string{"--list", "", "last"})
	AssertEqual(out.String(), "Banner\n> [--list]\n> []\n> [last]\n> \n")
}

func TestRun_LongLine(t *testing.T) {

	long := "--echo=" + strings.Repeat("x", 2*1024*1024)
	in := strings.NewReader(long + "\n--list\n")
	out := &bytes.Buffer{}

	lines := []string{}
	err := New(in, out, "> ").Run("Banner", func(line string) {
		lines = append(lines, line)
	})

	AssertNil(err)
	AssertEqual(len(lines), 2)
	AssertEqual(len(lines[0]), len(long))
	AssertEqual(lines[1], "--list")
}

func TestRun_CarriageReturn(t *testing.T) {

	lines := []string{}
	err := New(strings.NewReader("--list\r\n"), &bytes.Buffer{}, "> ").Run("Banner", func(line string) {
		lines = append(lines, line)
	})

	AssertNil(err)
	AssertEqual(lines, []string{"--list"})
}

func TestRun_EmptyInput(t *testing.T) {

	out := &bytes.Buffer{}

	err := New(strings.NewReader(""), out, "$ ").Run("Hi", func(line string) {
		t.Fatalf("unexpected line %q", line)
	})

	AssertNil(err)
	AssertEqual(out.String(), "Hi\n$ \n")
}

func TestRun_ReadError(t *testing.T) {

	boom := errors.New("boom")
	out := &bytes.Buffer{}

	err := New(iotest.ErrReader(boom), out, "> ").Run("Hi", func(string) {})

	AssertTrue(errors.Is(err, boom))
}

func TestArguments(t *testing.T) {

	AssertEqual(Arguments([]string{"--add", "--title=Dune", "--isbn=1"}), "--add --title=Dune --isbn=1")
	AssertEqual(Arguments(nil), "")
}
