// SPDX-License-Identifier: MIT

package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board operations. Match with errors.Is; the typed
// errors below carry details and report Is for their sentinel.
var (
	// ErrEmptyGrid indicates the input has no rows or only empty rows.
	ErrEmptyGrid = errors.New("board: input must have at least one row and one column")
	// ErrInvalidCharacter indicates a symbol other than '*' or '.'.
	ErrInvalidCharacter = errors.New("board: invalid character")
	// ErrUnevenRowLengths indicates rows of differing lengths.
	ErrUnevenRowLengths = errors.New("board: all rows must have the same length")
	// ErrSourceUnreadable indicates the board source could not be read.
	ErrSourceUnreadable = errors.New("board: source could not be read")
	// ErrSinkUnwritable indicates the board could not be written out.
	ErrSinkUnwritable = errors.New("board: destination could not be written")
)

// InvalidCharacterError reports the first unknown symbol in row-major order.
// Row and Col are zero-based; Col counts runes, not bytes.
// For input that is not valid UTF-8, Symbol is utf8.RuneError and Raw holds
// the offending byte. New sets Symbol to utf8.RuneError with an empty Raw for
// values that are not cells at all.
type InvalidCharacterError struct {
	Symbol   rune
	Raw      string
	Row, Col int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("board: invalid character %s at row %d, column %d", e.Quoted(), e.Row+1, e.Col+1)
}

// Quoted returns the offending symbol as a Go-quoted literal: 'A' for a rune,
// "\xff" for an undecodable byte.
func (e *InvalidCharacterError) Quoted() string {
	if e.Raw != "" {
		return fmt.Sprintf("%q", e.Raw)
	}
	return fmt.Sprintf("%q", e.Symbol)
}

// Is makes errors.Is(err, ErrInvalidCharacter) hold.
func (e *InvalidCharacterError) Is(target error) bool { return target == ErrInvalidCharacter }

// UnevenRowError reports the first row whose length differs from row 0.
type UnevenRowError struct {
	Row       int
	Want, Got int
}

func (e *UnevenRowError) Error() string {
	return fmt.Sprintf("board: row %d has %d cells, want %d", e.Row+1, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrUnevenRowLengths) hold.
func (e *UnevenRowError) Is(target error) bool { return target == ErrUnevenRowLengths }

// File operations recorded in FileError.Op.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// FileError wraps an I/O failure while reading a board source or writing a
// destination. Unwrap exposes the underlying error, so
// errors.Is(err, fs.ErrNotExist) works alongside errors.Is(err, ErrSourceUnreadable).
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("board: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("board: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Is maps OpRead to ErrSourceUnreadable and OpWrite to ErrSinkUnwritable.
func (e *FileError) Is(target error) bool {
	switch target {
	case ErrSourceUnreadable:
		return e.Op == OpRead
	case ErrSinkUnwritable:
		return e.Op == OpWrite
	}
	return false
}
