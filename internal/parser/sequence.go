package parser

import (
	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

func (s *sequence) readItems() ([]ast.Node, error) {
	level := view.SameIndentation(s.v).Lines()
	items := make([]ast.Node, 0, len(level))
	for i, l := range level {
		if l.Parts().Leading() != '-' {
			return nil, &errors.SyntaxError{Message: "expected a sequence item", Line: l.Number + 1}
		}
		cs := lineComments(l)
		cs.foot = footComment(s.v, l, claimed(view.Nested(s.v, l), l), nextLine(level, i))
		item, err := s.p.item(s.v, l, cs)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// item reads the node following the marker of l: a sequence item, a
// complex key or a complex value. Structured content written after the
// marker, as in "- key: v" or "- - a", is read as a compact block together
// with the lines nested under l.
func (p *Parser) item(v view.View, l line.Line, cs commentSource) (ast.Node, error) {
	parts := l.Parts()
	children := view.Nested(v, l)
	switch {
	case parts.Compound():
		cs.inline = nil
		return p.read(view.Compact(l.ShiftTo(parts.Markers[0].Next), children), nil, cs)
	case parts.Value == "":
		return p.read(children, &l, cs)
	}
	return p.inline(parts.Value, children, l, cs)
}

// inline reads a value written on the same line as its key or marker.
func (p *Parser) inline(value string, children view.View, owner line.Line, cs commentSource) (ast.Node, error) {
	if ind, ok := line.ParseIndicator(value); ok {
		return p.blockScalar(children, owner, owner.Parts().Owner(owner.Indentation()), ind, cs)
	}
	if first, ok := view.FirstSignificant(children); ok {
		return nil, &errors.IndentationError{
			Message:       "nested block after a value on the same line",
			Line:          first.Number + 1,
			Text:          first.Raw(),
			Reference:     owner.Number + 1,
			ReferenceText: owner.Raw(),
		}
	}
	if value[0] == '[' || value[0] == '{' {
		return p.flow(value, owner, cs)
	}
	return p.scalar(value, owner, cs)
}
