// Package ingest turns uploaded documents into the ordered text lines the
// field extractor consumes. It never reorders or deduplicates lines; vendor
// and date detection depend on source order.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrDocumentUnavailable means the document could not supply any text,
	// e.g. a corrupt or encrypted file.
	ErrDocumentUnavailable = errors.New("document unavailable")

	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Service dispatches text extraction by file extension.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ExtractText returns the document's text lines in source order.
func (s *Service) ExtractText(ctx context.Context, filename string, data []byte) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfLines(data)
	case ".txt":
		return textLines(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}
