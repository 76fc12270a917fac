package ingest

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/cwehmeyer/belegwerk/internal/encoding"
)

// textLines splits a plain-text document into lines. OCR tools export text in
// assorted encodings, so the content is decoded to UTF-8 first.
func textLines(data []byte) ([]string, error) {
	r, err := encoding.NewUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}

	var lines []string

	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scan.Scan() {
		lines = append(lines, scan.Text())
	}

	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}

	return lines, nil
}
