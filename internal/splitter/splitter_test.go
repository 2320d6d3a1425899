package splitter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgallion1/chapsplit/internal/scanner"
)

func TestBuildRanges_EndToEnd(t *testing.T) {
	markers := []scanner.Marker{
		{Kind: scanner.Chapter, Label: "1", Page: 30},
		{Kind: scanner.Chapter, Label: "2", Page: 60},
	}

	ranges := BuildRanges(markers, 100)

	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if ranges[0].StartPage != 30 || ranges[0].EndPage != 59 {
		t.Errorf("chapter 1: expected [30,59], got [%d,%d]", ranges[0].StartPage, ranges[0].EndPage)
	}
	if ranges[1].StartPage != 60 || ranges[1].EndPage != 99 {
		t.Errorf("chapter 2: expected [60,99], got [%d,%d]", ranges[1].StartPage, ranges[1].EndPage)
	}
	if ranges[0].Title != "Chapter 1" || ranges[1].Title != "Chapter 2" {
		t.Errorf("unexpected titles: %q, %q", ranges[0].Title, ranges[1].Title)
	}
}

func TestBuildRanges_ContiguousAndNonOverlapping(t *testing.T) {
	markers := []scanner.Marker{
		{Kind: scanner.Chapter, Label: "1", Page: 30},
		{Kind: scanner.Chapter, Label: "2", Page: 47},
		{Kind: scanner.Chapter, Label: "3", Page: 48},
		{Kind: scanner.Appendix, Label: "A", Page: 90},
	}
	const total = 120

	ranges := BuildRanges(markers, total)

	for i := 0; i < len(ranges)-1; i++ {
		if ranges[i].EndPage+1 != ranges[i+1].StartPage {
			t.Errorf("gap or overlap between range %d and %d: end=%d next start=%d",
				i, i+1, ranges[i].EndPage, ranges[i+1].StartPage)
		}
	}
	last := ranges[len(ranges)-1]
	if last.EndPage != total-1 {
		t.Errorf("last range must extend to document end: got %d, want %d", last.EndPage, total-1)
	}

	covered := 0
	for _, r := range ranges {
		if r.EndPage < r.StartPage {
			t.Errorf("range %s is inverted: [%d,%d]", r.Title, r.StartPage, r.EndPage)
		}
		covered += r.PageCount()
	}
	if want := total - markers[0].Page; covered != want {
		t.Errorf("ranges must cover the scanned region exactly: covered %d pages, want %d", covered, want)
	}
}

func TestBuildRanges_SingleMarker(t *testing.T) {
	markers := []scanner.Marker{{Kind: scanner.Appendix, Label: "A", Page: 30}}

	ranges := BuildRanges(markers, 50)

	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if ranges[0].StartPage != 30 || ranges[0].EndPage != 49 {
		t.Errorf("expected [30,49], got [%d,%d]", ranges[0].StartPage, ranges[0].EndPage)
	}
}

func TestBuildRanges_Empty(t *testing.T) {
	if ranges := BuildRanges(nil, 100); len(ranges) != 0 {
		t.Errorf("expected no ranges for no markers, got %v", ranges)
	}
}

func TestOutputName(t *testing.T) {
	ch := Range{Title: "Chapter 4", Kind: scanner.Chapter, Label: "4"}
	if got := OutputName("HEC22", ch); got != "HEC22 Chapter 4.pdf" {
		t.Errorf("expected %q, got %q", "HEC22 Chapter 4.pdf", got)
	}
	ap := Range{Title: "Appendix B", Kind: scanner.Appendix, Label: "B"}
	if got := OutputName("HEC22", ap); got != "HEC22 Appendix B.pdf" {
		t.Errorf("expected %q, got %q", "HEC22 Appendix B.pdf", got)
	}
}

func TestWriteReport(t *testing.T) {
	ranges := []Range{
		{Title: "Chapter 1", StartPage: 30, EndPage: 59},
		{Title: "Appendix A", StartPage: 60, EndPage: 99},
	}

	var buf bytes.Buffer
	WriteReport(&buf, ranges)
	out := buf.String()

	if !strings.Contains(out, "CHAPTER PAGE RANGES") {
		t.Errorf("report missing header:\n%s", out)
	}
	// Page numbers are reported 1-based.
	if !strings.Contains(out, "Chapter 1") || !strings.Contains(out, "31-  60") {
		t.Errorf("report missing chapter 1 line:\n%s", out)
	}
	if !strings.Contains(out, "Appendix A") || !strings.Contains(out, "61- 100") {
		t.Errorf("report missing appendix A line:\n%s", out)
	}
	if !strings.Contains(out, "( 30 pages)") || !strings.Contains(out, "( 40 pages)") {
		t.Errorf("report missing page counts:\n%s", out)
	}

	// Lines appear in page order.
	if strings.Index(out, "Chapter 1") > strings.Index(out, "Appendix A") {
		t.Errorf("ranges must be reported in page order:\n%s", out)
	}
}
