// SPDX-License-Identifier: MIT

package board

import (
	"strings"
	"unicode/utf8"
)

// Parse builds a Board from raw text, one row per line.
// A trailing newline does not produce an extra row and "\r\n" endings are accepted.
//
// Validation fails fast, in this order:
//  1. no rows → ErrEmptyGrid.
//  2. row-major scan for symbols other than '*' or '.' → *InvalidCharacterError
//     carrying the first offending symbol (or raw byte, for invalid UTF-8).
//  3. any row whose length differs from row 0 → *UnevenRowError.
//
// Rows that are all empty also yield ErrEmptyGrid.
// Complexity: O(W×H) time and memory.
func Parse(raw string) (*Board, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for i, r := range line {
			c, ok := CellFromRune(r)
			if !ok {
				ice := &InvalidCharacterError{Symbol: r, Row: y, Col: len(row)}
				if _, size := utf8.DecodeRuneInString(line[i:]); r == utf8.RuneError && size == 1 {
					ice.Raw = line[i : i+1]
				}
				return nil, ice
			}
			row = append(row, c)
		}
		cells[y] = row
	}

	return fromCells(cells)
}

// New constructs a Board from a non-empty, rectangular 2D slice of Mine and
// Blank cells. It deep-copies the input so later changes to rows do not leak in.
// Annotated cells and out-of-range values are rejected with *InvalidCharacterError.
func New(rows [][]Cell) (*Board, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		for x, c := range row {
			if c.IsMine() || c.IsBlank() {
				continue
			}
			symbol := utf8.RuneError
			if _, ok := c.Count(); ok {
				symbol = c.Rune()
			}
			return nil, &InvalidCharacterError{Symbol: symbol, Row: y, Col: x}
		}
		cells[y] = append([]Cell(nil), row...)
	}

	return fromCells(cells)
}

// fromCells checks rectangularity and wraps already-validated cells.
func fromCells(cells [][]Cell) (*Board, error) {
	w := len(cells[0])
	for y := 1; y < len(cells); y++ {
		if len(cells[y]) != w {
			return nil, &UnevenRowError{Row: y, Want: w, Got: len(cells[y])}
		}
	}
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	return &Board{Width: w, Height: len(cells), Cells: cells}, nil
}

// splitLines splits s on '\n', dropping one trailing newline and any '\r'
// that ends a line. Empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// InBounds reports whether (x,y) lies within the board.
// Complexity: O(1).
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the cell at (x,y) and whether the position is on the board.
func (b *Board) At(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Blank, false
	}
	return b.Cells[y][x], true
}

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.Height)
	for y := range cells {
		cells[y] = append([]Cell(nil), b.Cells[y]...)
	}
	return &Board{Width: b.Width, Height: b.Height, Cells: cells}
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.IsMine() {
				n++
			}
		}
	}
	return n
}
