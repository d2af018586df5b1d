package matter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadContents returns a file's contents with any front matter header
// stripped: everything after the closing delimiter line when a header is
// present, the whole file otherwise. Headerless files may be binary; header
// framing assumes text lines.
func ReadContents(path string) ([]byte, error) {
	if !HasConfigHeader(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read contents %s: %w", path, err)
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read contents %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// Skip the opening marker line.
	if _, err := r.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return []byte{}, nil
		}
		return nil, fmt.Errorf("read contents %s: %w", path, err)
	}

	// Skip the header body through the closing delimiter line.
	for {
		line, err := r.ReadString('\n')
		if isClosingDelimiter(line) {
			break
		}
		if errors.Is(err, io.EOF) {
			// Unterminated header: the whole file was metadata.
			return []byte{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read contents %s: %w", path, err)
		}
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read contents %s: %w", path, err)
	}
	return rest, nil
}
