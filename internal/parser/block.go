package parser

import (
	"strings"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

// blockScalar reads the content lines of a literal or folded scalar. The
// content must be indented deeper than column owner; its indentation is the
// explicit indicator or that of the first non-blank line.
func (p *Parser) blockScalar(v view.View, header line.Line, owner int, ind line.Indicator, cs commentSource) (ast.Node, error) {
	ls := v.Lines()
	base, end := blockContent(ls, owner, ind)
	ls = ls[:end]
	var content []string
	for _, l := range ls {
		if l.IsBlank() {
			raw := l.Raw()
			if base >= 0 && len(raw) > base {
				content = append(content, raw[base:])
			} else {
				content = append(content, "")
			}
			continue
		}
		if l.Indentation() < base || l.Indentation() <= owner {
			return nil, &errors.IndentationError{
				Message:       "line is less indented than the block scalar content",
				Line:          l.Number + 1,
				Text:          l.Raw(),
				Reference:     header.Number + 1,
				ReferenceText: header.Raw(),
			}
		}
		content = append(content, l.Raw()[base:])
	}

	trailing := 0
	for len(content) > 0 && strings.TrimSpace(content[len(content)-1]) == "" {
		content = content[:len(content)-1]
		trailing++
	}
	var value string
	style := ast.Literal
	if ind.Folded {
		style = ast.Folded
		value = fold(content)
	} else {
		value = strings.Join(content, "\n")
	}
	switch ind.Chomping {
	case line.Clip:
		if !ind.Folded && len(content) > 0 {
			value += "\n"
		}
	case line.Keep:
		if len(content) > 0 {
			value += "\n"
		}
		value += strings.Repeat("\n", trailing)
	}
	return withComment(ast.NewStyledScalar(value, style), p.store, cs), nil
}

// blockContent returns the indentation of the content of a block scalar
// held by ls and the number of lines the scalar spans. Comment lines left of
// the content after the last content line are ordinary comments, not part
// of the scalar.
func blockContent(ls []line.Line, owner int, ind line.Indicator) (base, end int) {
	base = -1
	if ind.Indent > 0 {
		base = max(owner, 0) + ind.Indent
	} else {
		for _, l := range ls {
			if !l.IsBlank() {
				base = l.Indentation()
				break
			}
		}
	}
	last := -1
	for i, l := range ls {
		if !l.IsBlank() && !(l.IsComment() && l.Indentation() < base) {
			last = i
		}
	}
	end = last + 1
	for end < len(ls) && ls[end].IsBlank() {
		end++
	}
	return base, end
}

// fold joins the lines of a folded scalar. A single break between two
// ordinary lines becomes a space and each blank line between them a
// newline. Breaks around more-indented lines are kept.
func fold(content []string) string {
	var b strings.Builder
	prevNormal := false
	blanks := 0
	for i, c := range content {
		if c == "" {
			blanks++
			continue
		}
		normal := c[0] != ' ' && c[0] != '\t'
		switch {
		case i == blanks:
			b.WriteString(strings.Repeat("\n", blanks))
		case prevNormal && normal && blanks == 0:
			b.WriteByte(' ')
		case prevNormal && normal:
			b.WriteString(strings.Repeat("\n", blanks))
		default:
			b.WriteString(strings.Repeat("\n", blanks+1))
		}
		b.WriteString(c)
		prevNormal = normal
		blanks = 0
	}
	return b.String()
}
