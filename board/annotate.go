// SPDX-License-Identifier: MIT

package board

// Annotate rewrites, in place, every blank cell with the number of mines among
// its up to 8 neighbours. Blanks with no adjacent mines stay Blank and mines are
// never touched. Counts only read Mine/Blank status, so writing while scanning
// is safe and traversal order does not matter.
//
// Annotating an already annotated board is a no-op.
// Complexity: O(W×H×8) time, O(1) extra memory.
func (b *Board) Annotate() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !b.Cells[y][x].IsBlank() {
				continue
			}
			if n := b.NeighborMines(x, y); n > 0 {
				b.Cells[y][x] = Count(n)
			}
		}
	}
}

// Annotate returns an annotated copy of b, leaving b unchanged.
func Annotate(b *Board) *Board {
	out := b.Clone()
	out.Annotate()
	return out
}

// NeighborMines counts mines adjacent to (x,y), clamped to the board:
// a corner has 3 neighbours, an edge 5 and an interior cell 8.
// Returns 0 for positions off the board.
func (b *Board) NeighborMines(x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}
	count := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if b.InBounds(nx, ny) && b.Cells[ny][nx].IsMine() {
			count++
		}
	}
	return count
}

// Annotated reports whether any cell carries a mine count.
func (b *Board) Annotated() bool {
	for _, row := range b.Cells {
		for _, c := range row {
			if _, ok := c.Count(); ok {
				return true
			}
		}
	}
	return false
}
