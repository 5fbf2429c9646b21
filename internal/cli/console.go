package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
)

// Console reads answers to prompts and writes everything the user sees
type Console struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	success      *color.Color
	failure      *color.Color
	hint         *color.Color
}

// NewConsole creates a Console over the given reader and writer
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{
		stdinReader:  bufio.NewReader(r),
		stdoutWriter: w,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		success:      color.New(color.FgGreen),
		failure:      color.New(color.FgRed),
		hint:         color.New(color.FgYellow),
	}
}

// Prompt prints the label and returns the trimmed line, normalized with dictionary.NormalizeText.
// It returns io.EOF once the input is exhausted.
func (c *Console) Prompt(label string) (string, error) {
	c.Printf("%s: ", label)

	line, err := c.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			c.Println()
			return "", io.EOF
		}
	}
	return dictionary.NormalizeText(strings.TrimSpace(line)), nil
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.stdoutWriter, format, a...)
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.stdoutWriter, a...)
}

func (c *Console) Success(format string, a ...any) {
	_, _ = c.success.Fprintf(c.stdoutWriter, format+"\n", a...)
}

func (c *Console) Failure(format string, a ...any) {
	_, _ = c.failure.Fprintf(c.stdoutWriter, format+"\n", a...)
}
