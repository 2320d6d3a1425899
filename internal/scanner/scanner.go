// Package scanner locates chapter and appendix start pages in a document's
// extracted text. It is the detection half of the tool: the splitter package
// turns its markers into page ranges.
package scanner

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

// Kind distinguishes the two marker families.
type Kind string

const (
	Chapter  Kind = "chapter"
	Appendix Kind = "appendix"
)

// Marker is the first validated occurrence of a chapter or appendix heading.
// Label is the chapter number as text, or the appendix letter (upper-cased).
// Page is a zero-based page index.
type Marker struct {
	Kind  Kind
	Label string
	Page  int
}

// Title returns the human-readable name, e.g. "Chapter 3" or "Appendix B".
func (m Marker) Title() string {
	if m.Kind == Appendix {
		return "Appendix " + m.Label
	}
	return "Chapter " + m.Label
}

// PageSource provides page count and per-page plain text for a document.
// pdfio.Document satisfies it; tests use synthetic sources.
type PageSource interface {
	PageCount() int
	PageText(i int) (string, error)
}

// Config holds the detection heuristics. The defaults (see config.Load) are
// tuned for manuals with around thirty pages of front matter; they are
// configuration, never derived from document content.
type Config struct {
	StartScanPage int // first page to scan, zero-based
	HeadWindow    int // keyword must appear within this many leading characters
	ShortPageLen  int // ...or the page text must be shorter than this
}

var (
	chapterPattern  = regexp.MustCompile(`(?i)CHAPTER\s+(\d+)`)
	appendixPattern = regexp.MustCompile(`(?i)APPENDIX\s+([A-Z])`)
)

// Scan walks the document from cfg.StartScanPage to the last page and returns
// one Marker per distinct chapter number and appendix letter, ordered by page.
// Only the first validated page per label is kept; pages whose text cannot be
// extracted are logged and skipped. An empty result is not an error.
func Scan(src PageSource, cfg Config, log *slog.Logger) []Marker {
	total := src.PageCount()

	seenChapters := map[string]int{}
	seenAppendices := map[string]int{}

	log.Info("scanning for markers", "pages", total, "first_page", cfg.StartScanPage+1)

	for page := cfg.StartScanPage; page < total; page++ {
		text, err := src.PageText(page)
		if err != nil {
			log.Warn("could not read page, skipping", "page", page+1, "error", err)
			continue
		}

		// Only the first match on a page counts as a candidate; a content
		// page may reference several chapter numbers.
		if m := chapterPattern.FindStringSubmatch(text); m != nil {
			num := m[1]
			if _, seen := seenChapters[num]; !seen && validate(text, "CHAPTER", cfg) {
				seenChapters[num] = page
				log.Info("chapter found", "chapter", num, "page", page+1)
			}
		}
		if m := appendixPattern.FindStringSubmatch(text); m != nil {
			letter := strings.ToUpper(m[1])
			if _, seen := seenAppendices[letter]; !seen && validate(text, "APPENDIX", cfg) {
				seenAppendices[letter] = page
				log.Info("appendix found", "appendix", letter, "page", page+1)
			}
		}
	}

	return merge(seenChapters, seenAppendices)
}

// validate applies the title-page heuristic: a genuine chapter or appendix
// start page has the keyword near the top of the page, or very little text
// overall (divider pages are short). A running header buried in a dense
// content page fails both tests and is rejected, leaving the label free to
// match on a later page.
func validate(text, keyword string, cfg Config) bool {
	head := text
	if len(head) > cfg.HeadWindow {
		head = head[:cfg.HeadWindow]
	}
	if strings.Contains(strings.ToUpper(head), keyword) {
		return true
	}
	return len(text) < cfg.ShortPageLen
}

// merge flattens the per-kind maps into a single marker list ordered by page.
// Label order is irrelevant once the final sort is by physical position.
func merge(chapters, appendices map[string]int) []Marker {
	markers := make([]Marker, 0, len(chapters)+len(appendices))
	for num, page := range chapters {
		markers = append(markers, Marker{Kind: Chapter, Label: num, Page: page})
	}
	for letter, page := range appendices {
		markers = append(markers, Marker{Kind: Appendix, Label: letter, Page: page})
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].Page < markers[j].Page })
	return markers
}
