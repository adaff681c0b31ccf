package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Source is a read-only view of one file's text for the duration of a single
// pass. Rules describe changes as edits; they never mutate the buffer.
type Source struct {
	content []byte
}

// NewSource wraps a file's content.
func NewSource(content []byte) *Source {
	return &Source{content: content}
}

// Bytes returns the underlying buffer.
func (s *Source) Bytes() []byte {
	return s.content
}

// Text returns the text of the half-open byte range [start, end).
func (s *Source) Text(start, end uint32) string {
	return string(s.content[start:end])
}

// NodeText returns the source text covered by n.
func (s *Source) NodeText(n *sitter.Node) string {
	return string(s.content[n.StartByte():n.EndByte()])
}

// LineStart returns the offset of the first byte of the line containing off.
func (s *Source) LineStart(off uint32) uint32 {
	i := off
	for i > 0 && s.content[i-1] != '\n' {
		i--
	}
	return i
}

// TokenBefore returns the sibling immediately preceding n, skipping comments
// unless includeComments is set. Returns nil at the start of the parent.
func (s *Source) TokenBefore(n *sitter.Node, includeComments bool) *sitter.Node {
	for prev := n.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if prev.Type() == "comment" && !includeComments {
			continue
		}
		return prev
	}
	return nil
}

// TokenAfter returns the sibling immediately following n, skipping comments
// unless includeComments is set. Returns nil at the end of the parent.
func (s *Source) TokenAfter(n *sitter.Node, includeComments bool) *sitter.Node {
	for next := n.NextSibling(); next != nil; next = next.NextSibling() {
		if next.Type() == "comment" && !includeComments {
			continue
		}
		return next
	}
	return nil
}

// CommentsBefore returns the unbroken run of comment siblings directly before n,
// in source order.
func (s *Source) CommentsBefore(n *sitter.Node) []*sitter.Node {
	var run []*sitter.Node
	for prev := n.PrevSibling(); prev != nil && prev.Type() == "comment"; prev = prev.PrevSibling() {
		run = append([]*sitter.Node{prev}, run...)
	}
	return run
}

// CommentsAfter returns the unbroken run of comment siblings directly after n.
func (s *Source) CommentsAfter(n *sitter.Node) []*sitter.Node {
	var run []*sitter.Node
	for next := n.NextSibling(); next != nil && next.Type() == "comment"; next = next.NextSibling() {
		run = append(run, next)
	}
	return run
}
