package sortkeys

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/keysort/keysort/internal/lint"
)

// Entry is one keyed member of an object literal together with the comments
// it owns. Entries are derived fresh from the tree on every pass.
type Entry struct {
	Node  *sitter.Node
	Name  string
	Known bool
	Lead  []*sitter.Node // own-line comments directly above the entry
	Trail []*sitter.Node // same-line comments after the delimiter
	Comma *sitter.Node
}

// Segment is a maximal run of entries between spread boundaries. Each segment
// is sorted independently; entries never cross a boundary and spreads never
// move.
type Segment struct {
	Entries []*Entry
}

// collect splits the object's members into segments at spread elements,
// attaching owned comments per the vertical-adjacency rule. The second return
// is the member count (spreads included), used for the minKeys exemption.
func collect(obj *sitter.Node, src *lint.Source) ([]Segment, int) {
	var segs []Segment
	var cur []*Entry
	var pending []*sitter.Node
	total := 0

	flush := func() {
		if len(cur) > 0 {
			segs = append(segs, Segment{Entries: cur})
			cur = nil
		}
	}

	for i := 0; i < int(obj.ChildCount()); i++ {
		child := obj.Child(i)
		switch child.Type() {
		case "comment":
			pending = append(pending, child)

		case "pair", "shorthand_property_identifier", "method_definition":
			e := &Entry{Node: child}
			e.Name, e.Known = extractName(child, src)
			e.Lead = ownedLeading(pending)
			pending = nil
			i = attachTrailing(obj, i, e)
			cur = append(cur, e)
			total++

		case "spread_element":
			pending = nil
			flush()
			total++

		default:
			// braces, commas, error nodes
			pending = nil
		}
	}
	flush()
	return segs, total
}

// ownedLeading filters a pending comment run down to the comments the next
// entry owns: those starting on a line of their own. A comment that shares a
// line with the non-comment token before it belongs to the earlier entry and
// stays put.
func ownedLeading(pending []*sitter.Node) []*sitter.Node {
	var owned []*sitter.Node
	for _, c := range pending {
		prev := c.PrevSibling()
		if prev != nil && prev.Type() != "comment" && prev.EndPoint().Row == c.StartPoint().Row {
			continue
		}
		owned = append(owned, c)
	}
	return owned
}

// attachTrailing consumes the comma and any comments on the entry's last line
// that follow it, returning the index of the last consumed child.
func attachTrailing(obj *sitter.Node, i int, e *Entry) int {
	j := i + 1
	for j < int(obj.ChildCount()) {
		next := obj.Child(j)
		switch next.Type() {
		case ",":
			if e.Comma != nil {
				return j - 1
			}
			e.Comma = next
		case "comment":
			if next.StartPoint().Row != e.Node.EndPoint().Row {
				return j - 1
			}
			e.Trail = append(e.Trail, next)
		default:
			return j - 1
		}
		j++
	}
	return j - 1
}
