// Package prompt abstracts interactive console input behind an injectable
// interface so command decision logic stays testable without a real terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user a question and returns the entered line
type Prompter interface {
	Ask(question string) (string, error)
}

// ConsolePrompter reads answers line by line from an input stream,
// writing the question to the output stream first
type ConsolePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a ConsolePrompter reading from in and writing questions to out
func New(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask prints the question and returns the next input line, whitespace-trimmed
func (p *ConsolePrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	answer, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
