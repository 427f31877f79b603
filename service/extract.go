package service

import (
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor converts an uploaded binary document into plain text.
// Extraction is best-effort: any failure yields empty text, never an error,
// so uploads always succeed regardless of parse quality.
type TextExtractor interface {
	Extract(r io.ReaderAt, size int64) string
}

// PDFExtractor extracts text from PDF files, one output line per text row.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Extract(r io.ReaderAt, size int64) (text string) {
	// The pdf library panics on some malformed files; treat that as an
	// extraction failure like any other.
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return ""
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}
