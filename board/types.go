// SPDX-License-Identifier: MIT

package board

import "fmt"

// Symbols used by the text form of a board.
const (
	// MineSymbol marks a mined cell.
	MineSymbol = '*'
	// BlankSymbol marks a cell with no mine and no adjacent mines.
	BlankSymbol = '.'
)

// MaxCount is the largest count an annotated cell may carry.
// Eight neighbours bound real counts to 8; 9 is accepted so every decimal
// digit has a cell.
const MaxCount = 9

// Cell is a single board position: Blank, Mine, or an annotated count 1..9.
// The zero value is Blank.
type Cell uint8

const (
	// Blank is an unmined cell that has not been annotated.
	Blank Cell = 0
	// Mine is a mined cell. Mines are never rewritten.
	Mine Cell = MaxCount + 1
)

// Count returns the annotated cell for n adjacent mines.
// Count(0) is Blank: zero is rendered as an empty cell, never as "0".
// Panics if n is outside [0, MaxCount].
func Count(n int) Cell {
	if n < 0 || n > MaxCount {
		panic(fmt.Sprintf("board: count %d out of range [0,%d]", n, MaxCount))
	}
	return Cell(n)
}

// CellFromRune converts an input symbol into a cell.
// Only MineSymbol and BlankSymbol are accepted; digits are output-only.
func CellFromRune(r rune) (Cell, bool) {
	switch r {
	case MineSymbol:
		return Mine, true
	case BlankSymbol:
		return Blank, true
	default:
		return Blank, false
	}
}

// IsMine reports whether c is a mine.
func (c Cell) IsMine() bool { return c == Mine }

// IsBlank reports whether c is an unannotated blank.
func (c Cell) IsBlank() bool { return c == Blank }

// Count returns the annotated mine count and true, or 0 and false
// when c is a mine or a blank.
func (c Cell) Count() (int, bool) {
	if c >= 1 && c <= MaxCount {
		return int(c), true
	}
	return 0, false
}

// Rune returns the symbol c serializes to: '*', '.', or a digit.
func (c Cell) Rune() rune {
	switch {
	case c == Mine:
		return MineSymbol
	case c == Blank:
		return BlankSymbol
	case c <= MaxCount:
		return rune('0' + c)
	default:
		panic(fmt.Sprintf("board: invalid cell value %d", uint8(c)))
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string { return string(c.Rune()) }

// Board is a rectangular minefield.
// Width and Height define dimensions; Cells[y][x] holds the cell at column x, row y.
// Height ≥ 1 and len(Cells[y]) == Width for every row.
type Board struct {
	Width, Height int
	Cells         [][]Cell
}

// neighborOffsets lists the 8 directions N, NE, E, SE, S, SW, W, NW as (dx, dy).
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
