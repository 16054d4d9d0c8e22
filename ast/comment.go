package ast

import "strings"

// Comment is the comment attached to a node: the comment lines written
// above it and the comment on the line it starts on.
type Comment struct {
	// Owner is the node the comment belongs to.
	Owner  Node
	Above  string
	Inline string
	// Foot holds comment lines written after the node that introduce
	// nothing below them, such as a comment closing a block or one
	// separated from the next entry by a blank line.
	Foot string
}

// Value returns the full comment text: the non-empty parts joined by a
// newline.
func (c Comment) Value() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Above, c.Inline, c.Foot} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// IsEmpty reports whether the comment carries no text.
func (c Comment) IsEmpty() bool { return c.Above == "" && c.Inline == "" && c.Foot == "" }

// Lines returns the comment text split into lines.
func (c Comment) Lines() []string {
	v := c.Value()
	if v == "" {
		return nil
	}
	return strings.Split(v, "\n")
}
