// Package splitter turns page-ordered markers into contiguous page ranges
// and, in extraction mode, writes each range out as its own PDF.
package splitter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgallion1/chapsplit/internal/pdfio"
	"github.com/dgallion1/chapsplit/internal/scanner"
)

// Range is a contiguous span of pages belonging to one chapter or appendix.
// Page indices are zero-based and inclusive. Ranges built from the same
// marker sequence never overlap: each ends one page before the next begins.
type Range struct {
	Title     string
	Kind      scanner.Kind
	Label     string
	StartPage int
	EndPage   int
}

// PageCount returns the number of pages the range covers.
func (r Range) PageCount() int { return r.EndPage - r.StartPage + 1 }

// BuildRanges derives one Range per marker: each range ends one page before
// the next marker starts, and the last range runs to the end of the document.
// Markers must already be sorted by page, as scanner.Scan returns them.
func BuildRanges(markers []scanner.Marker, totalPages int) []Range {
	ranges := make([]Range, 0, len(markers))
	for i, m := range markers {
		end := totalPages - 1
		if i+1 < len(markers) {
			end = markers[i+1].Page - 1
		}
		ranges = append(ranges, Range{
			Title:     m.Title(),
			Kind:      m.Kind,
			Label:     m.Label,
			StartPage: m.Page,
			EndPage:   end,
		})
	}
	return ranges
}

// OutputName builds the destination filename for a range,
// e.g. "HEC22 Chapter 4.pdf".
func OutputName(prefix string, r Range) string {
	return fmt.Sprintf("%s %s.pdf", prefix, r.Title)
}

// Extract writes one PDF per range into outDir, creating the directory if
// needed. A failed write aborts the remaining ranges; already-written files
// are left in place.
func Extract(ranges []Range, srcPath, outDir, prefix string, log *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, r := range ranges {
		outPath := filepath.Join(outDir, OutputName(prefix, r))
		if err := pdfio.WriteRange(srcPath, outPath, r.StartPage, r.EndPage); err != nil {
			return fmt.Errorf("extract %s: %w", r.Title, err)
		}
		log.Info("wrote range", "file", outPath, "pages", r.PageCount())
	}
	return nil
}

// WriteReport prints the human-readable range listing with 1-based page
// numbers. It is produced in both dry-run and extraction mode.
func WriteReport(w io.Writer, ranges []Range) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "CHAPTER PAGE RANGES")
	fmt.Fprintln(w, rule)
	for _, r := range ranges {
		fmt.Fprintf(w, "%-20s Pages %4d-%4d  (%3d pages)\n",
			r.Title, r.StartPage+1, r.EndPage+1, r.PageCount())
	}
	fmt.Fprintln(w, rule)
}
