// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/board"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/config"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a wrong invocation: bad argument count or unknown flag.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Describe renders err as a one-line diagnostic, distinct per error kind.
func Describe(err error) string {
	var (
		ice *board.InvalidCharacterError
		ure *board.UnevenRowError
		fe  *board.FileError
		ue  *UsageError
	)
	switch {
	case errors.As(err, &ue):
		return fmt.Sprintf("invalid arguments: %v", ue.Err)
	case errors.Is(err, board.ErrEmptyGrid):
		return "could not read board: the board is empty"
	case errors.As(err, &ice):
		return fmt.Sprintf("could not read board: invalid character %s at row %d, column %d (only '%c' and '%c' are allowed)",
			ice.Quoted(), ice.Row+1, ice.Col+1, board.MineSymbol, board.BlankSymbol)
	case errors.As(err, &ure):
		return fmt.Sprintf("could not read board: all rows must have the same length (row %d has %d cells, expected %d)",
			ure.Row+1, ure.Got, ure.Want)
	case errors.As(err, &fe) && fe.Op == board.OpRead:
		return fmt.Sprintf("could not read board file %s: %v", fe.Path, fe.Err)
	case errors.As(err, &fe) && fe.Op == board.OpWrite:
		return fmt.Sprintf("could not write board to %s: %v", fe.Path, fe.Err)
	case errors.Is(err, config.ErrInvalid):
		return err.Error()
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
