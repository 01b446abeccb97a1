// SPDX-License-Identifier: MIT

// Package render draws boards for people: the plain serialized form, a spaced
// grid, or a grid with row and column coordinates.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/board"
)

// ErrUnknownStyle indicates a style name ParseStyle does not recognize.
var ErrUnknownStyle = errors.New("render: unknown style")

// Style selects how a board is drawn.
type Style int

const (
	// Plain prints the serialized form, identical to the exported file.
	Plain Style = iota
	// Spaced pads every cell with one space on each side.
	Spaced
	// Coordinates adds a column header and a "y:" prefix to every row.
	Coordinates
)

var styleNames = map[Style]string{
	Plain:       "plain",
	Spaced:      "spaced",
	Coordinates: "coordinates",
}

// String returns the name ParseStyle accepts for s.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle maps a case-insensitive style name to a Style.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return Plain, fmt.Errorf("%w: %q (want plain, spaced or coordinates)", ErrUnknownStyle, name)
}

// Write draws b onto w in the given style.
func Write(w io.Writer, b *board.Board, style Style) error {
	var sb strings.Builder
	switch style {
	case Plain:
		sb.WriteString(b.String())
	case Spaced:
		for _, row := range b.Cells {
			for _, c := range row {
				sb.WriteByte(' ')
				sb.WriteRune(c.Rune())
				sb.WriteByte(' ')
			}
			sb.WriteByte('\n')
		}
	case Coordinates:
		writeCoordinates(&sb, b)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCoordinates labels columns with x mod 10 so every cell keeps one
// character; row labels are right-aligned to the widest row number.
func writeCoordinates(sb *strings.Builder, b *board.Board) {
	labelWidth := len(fmt.Sprint(b.Height - 1))
	sb.WriteString(strings.Repeat(" ", labelWidth+2))
	for x := 0; x < b.Width; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%d", x%10)
	}
	sb.WriteByte('\n')

	for y, row := range b.Cells {
		fmt.Fprintf(sb, "%*d:", labelWidth, y)
		for _, c := range row {
			sb.WriteByte(' ')
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
}
