// Package presenter renders plain-text tables for console listings
package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
)

// PrintTable formats and prints rows as an aligned table with a header and
// a dashed separator line, in the manner of `kubectl get`-style CLI output.
func PrintTable(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, strings.Join(header, "\t"))

	separators := make([]string, len(header))
	for i, col := range header {
		separators[i] = strings.Repeat("-", len(col))
	}
	fmt.Fprintln(w, strings.Join(separators, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// WrapRows wraps the cell text of one column at the given display width.
// Overflow continues on follow-up rows whose other cells are left empty,
// so the table stays aligned. Rows without overflow pass through unchanged.
func WrapRows(rows [][]string, column, width int) [][]string {
	var wrapped [][]string
	for _, row := range rows {
		if column >= len(row) {
			wrapped = append(wrapped, row)
			continue
		}
		lines := wrapDisplayWidth(row[column], width)
		first := append([]string(nil), row...)
		first[column] = lines[0]
		wrapped = append(wrapped, first)
		for _, line := range lines[1:] {
			cont := make([]string, len(row))
			cont[column] = line
			wrapped = append(wrapped, cont)
		}
	}
	return wrapped
}

// wrapDisplayWidth splits s into chunks of at most width display columns.
// Width is measured with runewidth so wide characters count as two columns.
func wrapDisplayWidth(s string, width int) []string {
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	var b strings.Builder
	lineWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			lines = append(lines, b.String())
			b.Reset()
			lineWidth = 0
		}
		b.WriteRune(r)
		lineWidth += rw
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}
