package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInputClosed is returned when the input ends before an answer is read
var ErrInputClosed = errors.New("input closed")

// Prompter asks the operator for values one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter. Nil arguments default to stdin and stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the trimmed answer.
// A final line without a trailing newline is still accepted.
func (p *Prompter) Ask(label string) (string, error) {
	_, _ = fmt.Fprint(p.out, PromptStyle.Render(label+":")+" ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				_, _ = fmt.Fprintln(p.out)
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}

	return strings.TrimSpace(line), nil
}

// Reader returns the buffered input so later readers see any bytes Ask
// has already consumed from the underlying stream.
func (p *Prompter) Reader() io.Reader {
	return p.in
}

// ShowList prints a title followed by a 1-based numbered list
func (p *Prompter) ShowList(title string, items []string) {
	_, _ = fmt.Fprintln(p.out, title)
	for i, item := range items {
		_, _ = fmt.Fprintf(p.out, "%s %s\n", ListIndexStyle.Render(fmt.Sprintf("%d.", i+1)), item)
	}
}
