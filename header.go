package matter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Front matter framing. The opening marker is matched against the first
// three bytes of the file; a closing delimiter must occupy an entire line.
const (
	headerMarker  = "---"
	headerClose   = "---\n"
	documentClose = "...\n"
)

// HasConfigHeader reports whether the file begins with the YAML front matter
// marker "---". Missing paths, directories, and files shorter than three
// bytes all report false; filesystem errors are swallowed, never returned.
// Only the first three bytes are read, so the check is safe on binary files.
func HasConfigHeader(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	marker := make([]byte, len(headerMarker))
	if _, err := io.ReadFull(f, marker); err != nil {
		return false
	}
	return string(marker) == headerMarker
}

// ReadConfigHeader reads YAML front matter from the top of a file and merges
// it over defaults. A file without a header yields a fresh copy of defaults
// (or an empty map) without any parsing.
func ReadConfigHeader(path string, defaults map[string]any) (map[string]any, error) {
	if !HasConfigHeader(path) {
		return Merge(defaults), nil
	}

	header, err := extractHeader(path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(header, defaults)
	if err != nil {
		return nil, fmt.Errorf("config header %s: %w", path, err)
	}
	return cfg, nil
}

// extractHeader returns the raw header body: every line after the opening
// marker line up to, but not including, the closing delimiter line. A header
// that never closes runs to the end of the file.
func extractHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read config header %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// Skip the opening marker line.
	if _, err := r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read config header %s: %w", path, err)
	}

	var body strings.Builder
	for {
		line, err := r.ReadString('\n')
		if isClosingDelimiter(line) {
			break
		}
		body.WriteString(line)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read config header %s: %w", path, err)
		}
	}
	return []byte(body.String()), nil
}

// isClosingDelimiter reports whether a line terminates a front matter
// header. The delimiter must be the whole line including its newline; a
// final "---" with no trailing newline does not close the header.
func isClosingDelimiter(line string) bool {
	return line == headerClose || line == documentClose
}
