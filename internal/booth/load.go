// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package booth reads booth data files and splits them into records.
package booth

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"
)

var (
	// ErrInputNotFound reports that the booth data file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable reports any other failure to read the booth data
	// file, including content that is not valid UTF-8.
	ErrInputUnreadable = errors.New("input file unreadable")
)

// Load returns the full contents of the booth data file at path. It prints
// the resolved path to w before reading. A missing file wraps
// ErrInputNotFound; every other failure wraps ErrInputUnreadable.
func Load(path string, w io.Writer) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		resolved = path
	}
	fmt.Fprintf(w, "reading: %s\n", resolved)

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, resolved)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrInputUnreadable, resolved, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: not valid UTF-8", ErrInputUnreadable, resolved)
	}

	slog.Debug("loaded booth data", "path", resolved, "bytes", len(data))
	return string(data), nil
}
