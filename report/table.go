package report

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jhunt/go-ansi"
)

// ColumnWidth returns the shared width every cell is padded to: the longest
// cell across the headers and all rows, plus 2. Widths count characters,
// not bytes, so multi-byte runes do not inflate the column.
func ColumnWidth(headers []string, rows []Row) int {
	width := 0
	for _, h := range headers {
		if n := utf8.RuneCountInString(h); n > width {
			width = n
		}
	}
	for _, row := range rows {
		for _, cell := range row {
			if n := utf8.RuneCountInString(cell); n > width {
				width = n
			}
		}
	}

	return width + 2
}

// Render writes the table: a green header line, then one cyan line per row,
// every cell left-justified to the shared column width.
func Render(w io.Writer, headers []string, rows []Row) {
	width := ColumnWidth(headers, rows)

	line := ""
	for _, h := range headers {
		line += pad(h, width)
	}
	ansi.Fprintf(w, "@G{%s}\n", line)

	for _, row := range rows {
		line = ""
		for _, cell := range row {
			line += pad(cell, width)
		}
		ansi.Fprintf(w, "@C{%s}\n", line)
	}
}

// pad left-justifies s in a field of width characters.
func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}
