// SPDX-License-Identifier: MIT

package board

import (
	"io"
	"os"
	"path/filepath"
)

// FromReader reads r to EOF and parses the result.
// A read failure is returned as *FileError matching ErrSourceUnreadable.
func FromReader(r io.Reader) (*Board, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &FileError{Op: OpRead, Err: err}
	}
	return Parse(string(raw))
}

// FromFile reads and parses the board stored at path.
// A read failure is returned as *FileError matching ErrSourceUnreadable.
func FromFile(path string) (*Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}
	return Parse(string(raw))
}

// ToFile writes the String form of b to path, replacing any existing file.
// Missing parent directories are created.
// A failure is returned as *FileError matching ErrSinkUnwritable.
func (b *Board) ToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Op: OpWrite, Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return &FileError{Op: OpWrite, Path: path, Err: err}
	}
	return nil
}
