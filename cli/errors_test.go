// SPDX-License-Identifier: MIT

package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/board"
	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/cli"
)

func TestDescribe_DistinctPerKind(t *testing.T) {
	errs := []error{
		board.ErrEmptyGrid,
		&board.InvalidCharacterError{Symbol: 'A', Row: 0, Col: 2},
		&board.UnevenRowError{Row: 1, Want: 3, Got: 2},
		&board.FileError{Op: board.OpRead, Path: "in.txt", Err: fs.ErrNotExist},
		&board.FileError{Op: board.OpWrite, Path: "out.txt", Err: fs.ErrPermission},
		&cli.UsageError{Err: errors.New("accepts 1 arg(s), received 0")},
		errors.New("something else"),
	}

	seen := map[string]bool{}
	for _, err := range errs {
		msg := cli.Describe(err)
		require.NotEmpty(t, msg)
		require.False(t, seen[msg], "duplicate diagnostic %q", msg)
		seen[msg] = true
	}

	require.Contains(t, cli.Describe(errs[1]), "'A' at row 1, column 3")
	require.Contains(t, cli.Describe(errs[3]), "could not read board file in.txt")
	require.Contains(t, cli.Describe(errs[4]), "could not write board to out.txt")
}

func TestDescribe_InvalidUTF8(t *testing.T) {
	err := &board.InvalidCharacterError{Symbol: utf8.RuneError, Raw: "\xff", Row: 2, Col: 0}
	require.Contains(t, cli.Describe(err), `"\xff" at row 3, column 1`)
}

func TestDescribe_Wrapped(t *testing.T) {
	err := fmt.Errorf("load: %w", board.ErrEmptyGrid)
	require.Equal(t, cli.Describe(board.ErrEmptyGrid), cli.Describe(err))
}
