// Package line models one line of YAML source text.
//
// Lines are immutable. Everything the readers need to know about a line
// (indentation, content without comments, the comment itself, the leading
// sequence and complex-key markers) is derived from the raw text on demand.
package line

import (
	"fmt"
	"strings"
)

// Line is one physical line of a document, or a logical line produced by
// joining a multi-line flow collection.
type Line struct {
	// Number is the 0-based position of the line in the input.
	Number  int
	raw     string
	compact bool
}

// New returns the line with the given position and raw text. A trailing
// carriage return is dropped.
func New(number int, raw string) Line {
	return Line{Number: number, raw: strings.TrimSuffix(raw, "\r")}
}

// Raw returns the text of the line as it appeared in the input.
func (l Line) Raw() string { return l.raw }

// WithRaw returns a copy of l carrying different text. The position and
// compact flag are kept.
func (l Line) WithRaw(raw string) Line {
	l.raw = raw
	return l
}

// Indentation returns the number of leading spaces.
func (l Line) Indentation() int {
	n := 0
	for n < len(l.raw) && l.raw[n] == ' ' {
		n++
	}
	return n
}

// Trimmed returns the content of the line with indentation, trailing
// whitespace and any inline comment removed.
func (l Line) Trimmed() string {
	s := l.raw
	if i := CommentIndex(s); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Comment returns the text of the comment carried by the line, without the
// '#' marker and the single space following it.
func (l Line) Comment() string {
	i := CommentIndex(l.raw)
	if i < 0 {
		return ""
	}
	c := strings.TrimPrefix(l.raw[i:], "#")
	c = strings.TrimPrefix(c, " ")
	return strings.TrimRight(c, " \t")
}

// HasComment reports whether the line carries a comment.
func (l Line) HasComment() bool { return CommentIndex(l.raw) >= 0 }

// IsComment reports whether the whole line is a comment.
func (l Line) IsComment() bool {
	return strings.HasPrefix(strings.TrimLeft(l.raw, " \t"), "#")
}

// IsBlank reports whether the line holds only whitespace.
func (l Line) IsBlank() bool { return strings.TrimSpace(l.raw) == "" }

// Significant reports whether the line holds content, that is whether it is
// neither blank nor a comment line.
func (l Line) Significant() bool { return !l.IsBlank() && !l.IsComment() }

// Compact reports whether the line was synthesized from the content that
// follows a "- " or "? " marker.
func (l Line) Compact() bool { return l.compact }

// ShiftTo returns a compact line where everything before column col is
// replaced by spaces. It turns "- key: v" into "  key: v" so the content
// after a marker can be read as a block of its own.
func (l Line) ShiftTo(col int) Line {
	if col > len(l.raw) {
		col = len(l.raw)
	}
	return Line{
		Number:  l.Number,
		raw:     strings.Repeat(" ", col) + l.raw[col:],
		compact: true,
	}
}

// IsDirective reports whether the line is a "%" directive.
func (l Line) IsDirective() bool { return strings.HasPrefix(l.raw, "%") }

// IsStartMarker reports whether the line is a "---" document start marker.
// The marker may be followed by a comment or by content.
func (l Line) IsStartMarker() bool { return isMarker(l.raw, "---") }

// IsEndMarker reports whether the line is a "..." document end marker.
func (l Line) IsEndMarker() bool { return isMarker(l.raw, "...") }

func isMarker(raw, m string) bool {
	if !strings.HasPrefix(raw, m) {
		return false
	}
	rest := raw[len(m):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// MarkerContent returns the content after a document marker, trimmed and
// without comment.
func (l Line) MarkerContent() string {
	t := l.Trimmed()
	if len(t) < 3 {
		return ""
	}
	return strings.TrimSpace(t[3:])
}

// IsItem reports whether the line starts with a sequence item marker.
func (l Line) IsItem() bool {
	t := l.Trimmed()
	return t == "-" || strings.HasPrefix(t, "- ")
}

func (l Line) String() string {
	return fmt.Sprintf("%d: %s", l.Number+1, l.raw)
}
