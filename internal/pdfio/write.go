package pdfio

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// WriteRange copies pages [start, end] (zero-based, inclusive) from the PDF
// at srcPath into a new PDF at outPath, preserving page content and order.
// The source file is never modified. Errors are fatal for this output file
// and are returned unwrapped of any recovery; no partial-file cleanup is
// attempted.
func WriteRange(srcPath, outPath string, start, end int) error {
	if start < 0 || end < start {
		return fmt.Errorf("invalid page range [%d, %d]", start, end)
	}
	// pdfcpu page selections are 1-based.
	selection := []string{fmt.Sprintf("%d-%d", start+1, end+1)}
	if err := api.TrimFile(srcPath, outPath, selection, nil); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
