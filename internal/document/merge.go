package document

import "strings"

const (
	// StartMarker opens the generated region.
	StartMarker = "<!-- AUTO-GENERATED-CONTENT:START -->"

	// EndMarker closes the generated region.
	EndMarker = "<!-- AUTO-GENERATED-CONTENT:END -->"

	// DefaultTitle is the heading of a newly created document.
	DefaultTitle = "ARCHITECTURE.md"
)

// Markers is a pair of sentinel lines delimiting the generated region.
type Markers struct {
	Start string
	End   string
}

// DefaultMarkers are the markers used when none are configured.
var DefaultMarkers = Markers{Start: StartMarker, End: EndMarker}

// NewDocument returns the skeleton written when the document does not exist.
func NewDocument() string {
	return DefaultMarkers.NewDocument(DefaultTitle)
}

// Merge splices generated into existing using the default markers.
func Merge(existing, generated string) string {
	return DefaultMarkers.Merge(existing, generated)
}

// NewDocument returns a document holding only a title and an empty region.
func (m Markers) NewDocument(title string) string {
	return "# " + title + "\n\n" + m.Start + "\n" + m.End + "\n"
}

// Merge replaces the region between the marker lines of existing with
// generated. Markers are found by comparing whole lines (surrounding
// whitespace ignored), never by searching inside lines.
//
// The region is valid when the document has exactly one start line followed
// by exactly one end line, or when its last two marker lines are a start and
// an end with the end on the final non-blank line (a block appended by an
// earlier merge). Otherwise a fresh region is appended and existing is kept
// as is. Content outside the region is preserved byte for byte.
func (m Markers) Merge(existing, generated string) string {
	pieces := strings.SplitAfter(existing, "\n")
	start, end, ok := m.locate(pieces)
	if !ok {
		return existing + "\n" + m.Start + "\n" + generated + "\n" + m.End + "\n"
	}

	var before, after strings.Builder
	for _, p := range pieces[:start] {
		before.WriteString(p)
	}
	endLine := pieces[end]
	after.WriteString(endLine[len(strings.TrimRight(endLine, "\r\n")):])
	for _, p := range pieces[end+1:] {
		after.WriteString(p)
	}

	return before.String() + m.Start + "\n" + generated + "\n" + m.End + after.String()
}

// locate returns the indexes of the start and end marker lines.
func (m Markers) locate(pieces []string) (int, int, bool) {
	var starts, ends []int
	lastContent := -1
	for i, p := range pieces {
		line := strings.TrimSpace(p)
		switch line {
		case m.Start:
			starts = append(starts, i)
		case m.End:
			ends = append(ends, i)
		}
		if line != "" {
			lastContent = i
		}
	}

	if len(starts) == 1 && len(ends) == 1 && starts[0] < ends[0] {
		return starts[0], ends[0], true
	}

	if len(starts) == 0 || len(ends) == 0 {
		return 0, 0, false
	}
	s, e := starts[len(starts)-1], ends[len(ends)-1]
	if e == lastContent && s < e && (len(ends) == 1 || ends[len(ends)-2] < s) {
		return s, e, true
	}
	return 0, 0, false
}
