// SPDX-License-Identifier: MIT

package board

import (
	"io"
	"strings"
)

// String serializes b: one line per row, each cell as its symbol ('*', '.' or
// a digit), with a trailing newline after the last row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for _, row := range b.Cells {
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// Annotated text is rejected: digits are not input symbols.
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}

// WriteTo implements io.WriterTo, writing the String form to w.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
