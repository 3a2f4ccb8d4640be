// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package columns lays out a flat list of strings as aligned text columns.
//
// Items are dealt round-robin into columns, so a list of alternating
// label/description strings rendered with two columns produces one
// label/description pair per line:
//
//	columns.Format([]string{"run", "- Run it", "stop", "- Stop it"}, 2, 2)
//
//	  run   - Run it
//	  stop  - Stop it
package columns

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter formats columns, computing the column count from the terminal
// width when asked to.
type Formatter struct {
	// Size reports the terminal size in columns and rows. If nil, an
	// 80 column terminal is assumed.
	Size func() (cols, rows int)
}

// Format lays out items in n columns with offset spaces before the first
// column. When n is 0 the column count is derived from the terminal width and
// the widest item.
func (f Formatter) Format(items []string, n, offset int) string {
	if len(items) == 0 {
		return ""
	}
	if n <= 0 {
		n = Auto(f.width(), Widest(items), offset)
	}
	return Format(items, n, offset)
}

func (f Formatter) width() int {
	if f.Size == nil {
		return 80
	}
	cols, _ := f.Size()
	if cols <= 0 {
		return 80
	}
	return cols
}

// Auto returns how many columns of the given item width fit in a terminal
// width columns wide. It is always at least 1.
func Auto(termWidth, itemWidth, offset int) int {
	per := itemWidth + offset
	if per <= 0 {
		return 1
	}
	return max(1, (termWidth-1)/per)
}

// Widest returns the display width of the widest item.
func Widest(items []string) int {
	w := 0
	for _, item := range items {
		w = max(w, width(item))
	}
	return w
}

// Format lays out items in n columns. Column i receives items i, i+n, i+2n...
// Every column except the last is padded to its widest member; the first
// column is prefixed with offset spaces. Newlines inside an item are followed
// by 2*offset spaces. A non-positive n is treated as 1.
func Format(items []string, n, offset int) string {
	if len(items) == 0 {
		return ""
	}
	n = max(1, min(n, len(items)))
	offset = max(0, offset)

	cols := make([][]string, n)
	for i, item := range items {
		cols[i%n] = append(cols[i%n], item)
	}
	for c, col := range cols {
		if c == len(cols)-1 {
			break
		}
		w := Widest(col)
		for r, cell := range col {
			col[r] = cell + strings.Repeat(" ", w-width(cell)+1)
		}
	}

	pad := strings.Repeat(" ", offset)
	indent := "\n" + strings.Repeat(" ", offset*2)
	var b strings.Builder
	for r := range cols[0] {
		row := make([]string, 0, n)
		for _, col := range cols {
			if r < len(col) {
				row = append(row, col[r])
			}
		}
		line := pad + strings.Join(row, " ")
		b.WriteString(strings.ReplaceAll(line, "\n", indent))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), " \t\r\n")
}

// width is the display width of the widest line of s.
func width(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}
