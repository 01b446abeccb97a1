// SPDX-License-Identifier: MIT

// Package board parses minefield boards from text and annotates every blank
// cell with the number of mines around it.
//
// What:
//
//   - Board wraps a rectangular [][]Cell grid read from '*' (mine) and '.' (blank) symbols.
//   - Parse validates raw text: non-empty, only known symbols, equal-length rows.
//   - Annotate rewrites each blank with its 8-neighbour mine count (1..8);
//     blanks with no adjacent mines stay blank.
//   - String/WriteTo/ToFile serialize back to the same one-row-per-line text.
//
// Why:
//
//   - Minesweeper tooling: produce the solution sheet of a hand-drawn field.
//   - Fixtures: turn a mine layout into the numbers a player would see.
//
// Complexity:
//
//   - Parse:    O(W×H) time and memory.
//   - Annotate: O(W×H×8) time, O(1) extra memory (in place).
//   - String:   O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows (or only empty lines).
//   - ErrInvalidCharacter: a symbol other than '*' or '.'; see *InvalidCharacterError.
//   - ErrUnevenRowLengths: a row differs in length from the first; see *UnevenRowError.
//   - ErrSourceUnreadable: the source could not be read; see *FileError.
//   - ErrSinkUnwritable: the destination could not be written; see *FileError.
//
// Quick example:
//
//	.*.*.        1*3*1
//	..*..   ->   13*31
//	..*..        .2*2.
//	.....        .111.
package board
