package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before a question is answered.
var ErrNoInput = errors.New("no input: prompt aborted")

// maxAttempts bounds how often an invalid answer is re-asked.
const maxAttempts = 3

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	src    io.Reader
	reader *bufio.Reader
	w      io.Writer
}

// NewPrompter returns a Prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{src: r, reader: bufio.NewReader(r), w: w}
}

// Reader returns the input that has not been consumed by a prompt yet. The
// original reader is returned when nothing is buffered, so a terminal stays a
// terminal for child processes.
func (p *Prompter) Reader() io.Reader {
	if p.reader.Buffered() == 0 {
		return p.src
	}
	return p.reader
}

// Input asks a free-text question. An empty answer yields def.
func (p *Prompter) Input(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "? %s (%s) ", question, def)
	} else {
		fmt.Fprintf(p.w, "? %s ", question)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Select presents a numbered list and returns the selected index.
func (p *Prompter) Select(question string, items []string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("nothing to choose for %q", question)
	}

	fmt.Fprintf(p.w, "? %s\n", question)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}

	var last string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.w, "Enter number [1-%d]: ", len(items))

		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		num, err := strconv.Atoi(line)
		if err == nil && num >= 1 && num <= len(items) {
			return num - 1, nil
		}
		last = line
		fmt.Fprintf(p.w, "Please enter a number between 1 and %d.\n", len(items))
	}

	return 0, fmt.Errorf("invalid selection %q: choose 1-%d", last, len(items))
}

// Confirm asks a yes/no question. An empty answer yields def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	var last string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(p.w, "? %s (%s) ", question, hint)

		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		last = line
		fmt.Fprintln(p.w, "Please answer yes or no.")
	}

	return false, fmt.Errorf("invalid answer %q: expected yes or no", last)
}

// readLine reads one line of input with surrounding whitespace removed. A
// final line without a trailing newline is accepted.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
