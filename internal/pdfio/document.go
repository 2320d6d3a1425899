// Package pdfio wraps the PDF libraries behind the two primitives the rest
// of the tool needs: per-page plain-text extraction and page-range copying.
package pdfio

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Document is a read-only handle on the source PDF.
type Document struct {
	path   string
	file   *os.File
	reader *pdflib.Reader
}

// Open opens the source PDF for text extraction. A failure here is fatal for
// the run; there is nothing to scan.
func Open(path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Document{path: path, file: f, reader: reader}, nil
}

// Path returns the filesystem path the document was opened from.
func (d *Document) Path() string { return d.path }

// PageCount returns the total number of pages.
func (d *Document) PageCount() int { return d.reader.NumPage() }

// PageText returns the plain text of the zero-based page index i.
// Errors are per-page and recoverable; callers may skip and continue.
func (d *Document) PageText(i int) (string, error) {
	page := d.reader.Page(i + 1) // ledongthuc/pdf pages are 1-indexed
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing page object", i+1)
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", i+1, err)
	}
	return text, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error { return d.file.Close() }
