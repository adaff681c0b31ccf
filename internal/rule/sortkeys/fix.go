package sortkeys

import (
	"sort"
	"strings"

	"github.com/keysort/keysort/internal/lint"
)

// buildFix computes the edit set that rewrites every segment of the container
// into sorted order in one shot. Each displaced entry's text is written into
// its target slot, and its owned leading/trailing comments are cut from their
// old location and reinserted around the slot. The result is a single atomic
// fix; edits are verified non-overlapping before being returned.
func (r *Rule) buildFix(src *lint.Source, segs []Segment) lint.Fix {
	var fix lint.Fix
	for _, seg := range segs {
		fix = append(fix, r.segmentEdits(src, seg)...)
	}
	return normalize(fix)
}

// segmentEdits emits edits for one segment. perm maps each slot to the index
// of the entry that belongs there; entries without a static name keep their
// slots, so dynamic keys and the entries around them never cross.
func (r *Rule) segmentEdits(src *lint.Source, seg Segment) []lint.Edit {
	perm := r.sortedOrder(seg.Entries)

	var edits []lint.Edit
	for slot, from := range perm {
		if from == slot {
			continue
		}
		dst := seg.Entries[slot] // current occupant, moving away
		mov := seg.Entries[from] // entry that belongs in this slot

		edits = append(edits, lint.Edit{
			Start: dst.Node.StartByte(),
			End:   dst.Node.EndByte(),
			Text:  src.NodeText(mov.Node),
		})
		edits = append(edits, cutLeading(src, dst)...)
		if e, ok := insertLeading(src, dst, mov); ok {
			edits = append(edits, e)
		}
		if e, ok := trailingEdit(src, dst, mov); ok {
			edits = append(edits, e)
		}
	}
	return edits
}

// sortedOrder returns, for each slot, the index of the entry that belongs
// there after a stable sort. Comparator ties (case-insensitive duplicates)
// retain their relative input order.
func (r *Rule) sortedOrder(entries []*Entry) []int {
	known := make([]int, 0, len(entries))
	for i, e := range entries {
		if e.Known {
			known = append(known, i)
		}
	}
	sorted := make([]int, len(known))
	copy(sorted, known)
	sort.SliceStable(sorted, func(a, b int) bool {
		return r.cmp.Less(entries[sorted[a]].Name, entries[sorted[b]].Name)
	})

	perm := make([]int, len(entries))
	for i := range perm {
		perm[i] = i
	}
	for k, slot := range known {
		perm[slot] = sorted[k]
	}
	return perm
}

// cutLeading removes the departing entry's owned leading comment lines.
func cutLeading(src *lint.Source, dst *Entry) []lint.Edit {
	var edits []lint.Edit
	var lastEnd uint32
	for _, c := range dst.Lead {
		start := src.LineStart(c.StartByte())
		if start < lastEnd {
			start = lastEnd // two owned comments on one line
		}
		end := c.EndByte()
		if int(end) < len(src.Bytes()) && src.Bytes()[end] == '\n' {
			end++
		}
		edits = append(edits, lint.Edit{Start: start, End: end})
		lastEnd = end
	}
	return edits
}

// insertLeading places the incoming entry's owned leading comments on their
// own lines directly above the target slot.
func insertLeading(src *lint.Source, dst, mov *Entry) (lint.Edit, bool) {
	if len(mov.Lead) == 0 {
		return lint.Edit{}, false
	}

	lineStart := src.LineStart(dst.Node.StartByte())
	indent := src.Text(lineStart, dst.Node.StartByte())
	pos := lineStart
	if strings.TrimSpace(indent) != "" {
		// slot shares its line with earlier tokens; drop in right before it
		pos = dst.Node.StartByte()
		indent = ""
	}

	var b strings.Builder
	for _, c := range mov.Lead {
		b.WriteString(indent)
		b.WriteString(src.NodeText(c))
		b.WriteByte('\n')
	}
	return lint.Edit{Start: pos, End: pos, Text: b.String()}, true
}

// trailingEdit replaces the slot's same-line trailing comments with the
// incoming entry's, as one edit anchored after the slot's delimiter. A line
// break is appended when a line comment would otherwise swallow the token
// that follows on the same line.
func trailingEdit(src *lint.Source, dst, mov *Entry) (lint.Edit, bool) {
	delimEnd := dst.Node.EndByte()
	if dst.Comma != nil {
		delimEnd = dst.Comma.EndByte()
	}
	cutEnd := delimEnd
	if n := len(dst.Trail); n > 0 {
		cutEnd = dst.Trail[n-1].EndByte()
	}

	var b strings.Builder
	lineComment := false
	for _, c := range mov.Trail {
		text := src.NodeText(c)
		b.WriteByte(' ')
		b.WriteString(text)
		lineComment = strings.HasPrefix(text, "//")
	}
	if b.Len() == 0 && cutEnd == delimEnd {
		return lint.Edit{}, false
	}
	if lineComment && int(cutEnd) < len(src.Bytes()) && src.Bytes()[cutEnd] != '\n' {
		b.WriteByte('\n')
	}
	return lint.Edit{Start: delimEnd, End: cutEnd, Text: b.String()}, true
}

// normalize orders the edits and verifies they do not overlap. A conflicting
// set would corrupt unrelated text, so it yields no fix at all rather than a
// partial one.
func normalize(fix lint.Fix) lint.Fix {
	if len(fix) == 0 {
		return nil
	}
	sort.SliceStable(fix, func(i, j int) bool {
		if fix[i].Start != fix[j].Start {
			return fix[i].Start < fix[j].Start
		}
		return fix[i].End < fix[j].End
	})
	for i := 1; i < len(fix); i++ {
		if fix[i].Start < fix[i-1].End {
			return nil
		}
	}
	return fix
}
