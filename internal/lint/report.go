package lint

import (
	"sort"
	"strings"
)

// Edit replaces the half-open byte range [Start, End) with Text. A zero-width
// range is an insertion.
type Edit struct {
	Start uint32
	End   uint32
	Text  string
}

// Fix is the atomic edit set for one container. The edits are sorted by start
// and mutually non-overlapping; the host applies all of them or none.
type Fix []Edit

// Span returns the byte range covered by the whole fix.
func (f Fix) Span() (uint32, uint32) {
	if len(f) == 0 {
		return 0, 0
	}
	start, end := f[0].Start, f[0].End
	for _, e := range f[1:] {
		if e.Start < start {
			start = e.Start
		}
		if e.End > end {
			end = e.End
		}
	}
	return start, end
}

// Apply splices the fix into content and returns the rewritten text. Edits are
// applied back to front so earlier offsets stay valid.
func (f Fix) Apply(content []byte) []byte {
	edits := make([]Edit, len(f))
	copy(edits, f)
	// Back to front; on equal starts the wider edit goes first so a zero-width
	// insertion at the same offset ends up before the replaced text.
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].Start != edits[j].Start {
			return edits[i].Start > edits[j].Start
		}
		return edits[i].End > edits[j].End
	})

	out := make([]byte, len(content))
	copy(out, content)
	for _, e := range edits {
		rest := append([]byte(e.Text), out[e.End:]...)
		out = append(out[:e.Start], rest...)
	}
	return out
}

// Violation is one reported rule breach, optionally carrying a fix.
type Violation struct {
	Path    string
	Rule    string
	Line    uint32 // 1-based
	Col     uint32 // 1-based
	Start   uint32
	End     uint32
	Message string
	Fix     Fix
}

// Interpolate substitutes {name} placeholders in a message template.
func Interpolate(template string, fields map[string]string) string {
	pairs := make([]string, 0, len(fields)*2)
	for k, v := range fields {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// SortViolations orders violations by path, line, then column so output is
// identical across runs.
func SortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Path != vs[j].Path {
			return vs[i].Path < vs[j].Path
		}
		if vs[i].Line != vs[j].Line {
			return vs[i].Line < vs[j].Line
		}
		return vs[i].Col < vs[j].Col
	})
}
