package line

import (
	"strings"
)

// Marker is a leading "- ", "? " or ": " indicator on a line.
type Marker struct {
	// Kind is '-', '?' or ':'.
	Kind byte
	// Column is the column of the indicator itself.
	Column int
	// Next is the column of the content following the indicator.
	Next int
}

// Parts is the structural decomposition of a line's content.
type Parts struct {
	Markers []Marker
	// Column is the column of the content following the markers.
	Column int
	// Key is the text before the mapping colon, if HasKey is set.
	Key    string
	HasKey bool
	// Value is the remaining content: the text after the colon of a
	// mapping entry, or the whole content after the markers.
	Value string
}

// Parts decomposes the line. A ':' marker is only recognised as the first
// marker, where it introduces the value of a complex key.
func (l Line) Parts() Parts {
	s := l.Trimmed()
	col := l.Indentation()
	var p Parts
	for s != "" {
		c := s[0]
		if c != '-' && c != '?' && c != ':' {
			break
		}
		if c == ':' && len(p.Markers) > 0 {
			break
		}
		if len(s) > 1 && s[1] != ' ' && s[1] != '\t' {
			break
		}
		rest := strings.TrimLeft(s[1:], " \t")
		next := col + len(s) - len(rest)
		p.Markers = append(p.Markers, Marker{Kind: c, Column: col, Next: next})
		s, col = rest, next
	}
	p.Column = col
	if i := MappingColon(s); i >= 0 {
		p.HasKey = true
		p.Key = strings.TrimSpace(s[:i])
		p.Value = strings.TrimSpace(s[i+1:])
		return p
	}
	p.Value = s
	return p
}

// Leading returns the kind of the first marker, or 0 if there is none.
func (p Parts) Leading() byte {
	if len(p.Markers) == 0 {
		return 0
	}
	return p.Markers[0].Kind
}

// Opens reports whether the line introduces a nested block on the lines
// that follow: a key or marker with nothing after it.
func (p Parts) Opens() bool {
	return p.Value == "" && (p.HasKey || len(p.Markers) > 0)
}

// Compound reports whether the content after the first marker is itself a
// block structure (a mapping entry or another marker) rather than a value.
func (p Parts) Compound() bool {
	return p.HasKey || len(p.Markers) > 1
}

// Owner returns the column that the content of a block scalar introduced on
// this line must be indented beyond.
func (p Parts) Owner(indent int) int {
	switch {
	case p.HasKey:
		return p.Column
	case len(p.Markers) > 0:
		return p.Markers[len(p.Markers)-1].Column
	}
	return indent
}
