package parser

import (
	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/internal/debug"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

// segment is the range of lines holding one document.
type segment struct {
	from, to int
	// marker is the "---" line opening the document, or nil for a document
	// without one.
	marker *line.Line
}

// segments splits lines into documents. A document starts at every "---"
// marker and ends at the next marker, at "..." or at the end of the input.
// Content before the first marker or after "..." is a document of its own
// if it holds anything but comments and directives. Input made only of
// comments is a single empty document carrying them.
func segments(lines []line.Line) []segment {
	var segs []segment
	explicit := false
	for _, l := range lines {
		if l.IsStartMarker() {
			explicit = true
			break
		}
	}
	cur := &segment{}
	closeAt := func(end int) {
		if cur == nil {
			return
		}
		cur.to = end
		if cur.marker != nil || hasContent(lines[cur.from:cur.to], !explicit && cur.from == 0) {
			segs = append(segs, *cur)
		}
		cur = nil
	}
	for i := range lines {
		l := lines[i]
		switch {
		case l.IsStartMarker():
			closeAt(i)
			cur = &segment{from: i + 1, marker: &lines[i]}
		case l.IsEndMarker():
			closeAt(i)
			cur = &segment{from: i + 1}
		}
	}
	closeAt(len(lines))
	if debug.Stream() {
		for i, s := range segs {
			debug.Logf("document %d: lines %d-%d", i, s.from+1, s.to)
		}
	}
	return segs
}

func hasContent(ls []line.Line, comments bool) bool {
	for _, l := range ls {
		if l.IsDirective() {
			continue
		}
		if l.Significant() || (comments && l.IsComment()) {
			return true
		}
	}
	return false
}

// document reads the document held by seg.
func (p *Parser) document(seg segment) (ast.Node, error) {
	v := view.NoDirectives(view.Range(p.store, seg.from, seg.to))
	v = view.CollapsedFlow(view.CollapsedFlow(v, '[', ']'), '{', '}')
	v, err := view.WellIndented(v)
	if err != nil {
		return nil, err
	}
	cs := commentSource{lead: leadComment(v), inline: seg.marker}
	if seg.marker != nil {
		if content := seg.marker.MarkerContent(); content != "" {
			if !line.IsIndicator(content) {
				return p.inline(content, v, *seg.marker, cs)
			}
			return p.read(v, seg.marker, cs)
		}
	}
	// A scalar root has no entries to carry the comments around it.
	if first, ok := view.FirstSignificant(v); ok {
		switch classify(first) {
		case shapeScalar, shapeFlowSequence, shapeFlowMapping:
			cs.above = &first
			cs.foot = footComment(v, first, 0, nil)
		}
	}
	return p.read(v, seg.marker, cs)
}
