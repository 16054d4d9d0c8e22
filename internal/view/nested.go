package view

import (
	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

type nested struct {
	cache
	inner View
	after line.Line
	seq   bool
}

// Nested returns the block of lines belonging to after: the lines following
// it up to the first content line indented at or below it.
func Nested(v View, after line.Line) View { return &nested{inner: v, after: after} }

// NestedSequence returns the sequence written at the same indentation as
// the key on line after, as in "key:\n- a\n- b".
func NestedSequence(v View, after line.Line) View { return &nested{inner: v, after: after, seq: true} }

func (n *nested) Lines() []line.Line { return n.get(n.compute) }

func (n *nested) compute() []line.Line {
	ls := n.inner.Lines()
	start := Search(ls, n.after.Number)
	if start < len(ls) && ls[start].Number == n.after.Number {
		start++
	}
	ind := n.after.Indentation()
	end := start
	for end < len(ls) {
		l := ls[end]
		if l.Significant() && !n.belongs(l, ind) {
			break
		}
		end++
	}
	// Comments at or left of the parent's column introduce what follows,
	// together with the blank lines after them.
	cut := end
	for i := end - 1; i >= start; i-- {
		l := ls[i]
		if l.IsBlank() {
			continue
		}
		if !l.IsComment() || l.Indentation() > ind {
			break
		}
		cut = i
	}
	return ls[start:cut]
}

func (n *nested) belongs(l line.Line, ind int) bool {
	if l.Indentation() > ind {
		return true
	}
	return n.seq && l.Indentation() == ind && l.IsItem()
}

func (n *nested) Original() []line.Line { return n.inner.Original() }
