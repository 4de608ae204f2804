// Package console runs the read-eval loop shared by the command line tools.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Console struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
}

func New(in io.Reader, out io.Writer, prompt string) *Console {
	return &Console{
		In:     in,
		Out:    out,
		Prompt: prompt,
	}
}

// Arguments joins process arguments with single spaces into one command
// line.
func Arguments(args []string) string {
	return strings.Join(args, " ")
}

// Run prints banner, then prompts and hands every line to handle until the
// input ends. Lines have no length limit. At end of input a newline is
// printed and Run returns nil.
func (c *Console) Run(banner string, handle func(line string)) error {

	fmt.Fprintln(c.Out, banner)

	reader := bufio.NewReader(c.In)

	for {
		fmt.Fprint(c.Out, c.Prompt)

		line, err := reader.ReadString('\n')
		if line != "" {
			handle(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			if line != "" {
				fmt.Fprint(c.Out, c.Prompt)
			}
			fmt.Fprintln(c.Out)
			return nil
		}
		if err != nil {
			fmt.Fprintln(c.Out)
			return fmt.Errorf("read line: %w", err)
		}
	}
}
