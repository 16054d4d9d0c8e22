package parser

import (
	"strings"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

// commentSource locates the comment of a node: the comment lines above one
// line and the inline comment of another. Document roots carry their
// leading comment block directly.
type commentSource struct {
	above  *line.Line
	inline *line.Line
	lead   string
	foot   string
}

// lineComments attributes both the comments above l and its inline comment.
// A compact line has no lines above it of its own.
func lineComments(l line.Line) commentSource {
	cs := commentSource{inline: &l}
	if !l.Compact() {
		cs.above = &l
	}
	return cs
}

func (cs commentSource) withInline(l line.Line) commentSource {
	if cs.inline == nil || !cs.inline.HasComment() {
		cs.inline = &l
	}
	return cs
}

func (cs commentSource) comment(store []line.Line) ast.Comment {
	var c ast.Comment
	switch {
	case cs.lead != "" && cs.above != nil:
		c.Above = joinComments(cs.lead, above(store, *cs.above))
	case cs.lead != "":
		c.Above = cs.lead
	case cs.above != nil:
		c.Above = above(store, *cs.above)
	}
	if cs.inline != nil && !cs.inline.IsComment() {
		c.Inline = cs.inline.Comment()
	}
	c.Foot = cs.foot
	return c
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}

// above collects the run of comment lines directly preceding l. The run
// stops at any line that is not a comment, at blank lines and at comments
// indented deeper than l, which belong to the block before it.
func above(store []line.Line, l line.Line) string {
	ind := l.Indentation()
	var parts []string
	for i := l.Number - 1; i >= 0 && i < len(store); i-- {
		o := store[i]
		if !o.IsComment() || o.Indentation() > ind {
			break
		}
		parts = append(parts, o.Comment())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "\n")
}

// leadComment returns the comment block opening a document, provided a
// blank line or the end of the document separates it from the content.
// Otherwise the block belongs to the first node.
func leadComment(v view.View) string {
	ls := v.Lines()
	var parts []string
	i := 0
	for ; i < len(ls) && ls[i].IsComment(); i++ {
		parts = append(parts, ls[i].Comment())
	}
	if len(parts) == 0 || (i < len(ls) && !ls[i].IsBlank()) {
		return ""
	}
	return strings.Join(parts, "\n")
}

// footComment collects the comment lines following the entry or item that
// ends on line last, up to next, the line of the following one. The first
// owned lines nested under last belong to the node read from them, and the
// comment run directly above next belongs to next.
func footComment(v view.View, last line.Line, owned int, next *line.Line) string {
	ls := v.Lines()
	from := view.Search(ls, last.Number+1) + owned
	to := len(ls)
	if next != nil {
		to = view.Search(ls, next.Number)
		for to > from && !next.Compact() && ls[to-1].IsComment() && ls[to-1].Indentation() <= next.Indentation() {
			to--
		}
	}
	var parts []string
	for _, l := range ls[min(from, to):to] {
		if l.IsComment() {
			parts = append(parts, l.Comment())
		}
	}
	return strings.Join(parts, "\n")
}

// claimed returns how many of the lines nested under l, children, the node
// read from l owns: all of a nested block, the content of a block scalar
// and none of the comments below a single-line value.
func claimed(children view.View, l line.Line) int {
	parts := l.Parts()
	ls := children.Lines()
	switch {
	case len(parts.Markers) > 0 && parts.Compound():
		return len(ls)
	case parts.Value != "":
		ind, ok := line.ParseIndicator(parts.Value)
		if !ok {
			return 0
		}
		_, end := blockContent(ls, parts.Owner(l.Indentation()), ind)
		return end
	}
	first, ok := view.FirstSignificant(children)
	if !ok {
		return 0
	}
	switch classify(first) {
	case shapeMapping, shapeSequence, shapeBlockScalar:
		return len(ls)
	}
	return 0
}

func nullScalar(v view.View, cs commentSource) ast.Node {
	return withComment(ast.Null(), v, cs)
}

func withComment(n ast.Node, v view.View, cs commentSource) ast.Node {
	c := cs.comment(v.Original())
	if c.IsEmpty() {
		return n
	}
	return ast.WithComment(n, c)
}
