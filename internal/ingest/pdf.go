package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfLines extracts text lines from a PDF, page by page in document order.
// Rows within a page keep their top-to-bottom order; blank rows are dropped.
func pdfLines(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}

	var lines []string

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrDocumentUnavailable, pageNum, err)
		}

		for _, row := range rows {
			var sb strings.Builder

			for _, word := range row.Content {
				if sb.Len() > 0 {
					sb.WriteString(" ")
				}

				sb.WriteString(word.S)
			}

			line := strings.TrimSpace(sb.String())
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}
