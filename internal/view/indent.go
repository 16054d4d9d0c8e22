package view

import (
	"strings"

	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

type level struct {
	column int
	line   line.Line
}

// WellIndented checks that every content line of v sits at a column its
// enclosing blocks allow and returns v unchanged.
//
// A line may be indented deeper than the previous content line only if that
// line opens a nested block ("key:", "-", "?"). A line indented less must
// return exactly to a column already in use by an enclosing block. Content
// of block scalars must not be indented less than its first line. Outside
// block scalars, indentation is made of spaces only.
func WellIndented(v View) (View, error) {
	var (
		stack []level
		prev  line.Line
		opens bool
		// block is the owner column of the block scalar being skipped, and
		// base the indentation of its content.
		block = -1
		base  = -1
		owner line.Line
	)
	for _, l := range v.Lines() {
		if block >= 0 {
			if l.IsBlank() {
				continue
			}
			if l.Indentation() > block {
				switch {
				case base < 0:
					base = l.Indentation()
				case l.Indentation() < base && !l.IsComment():
					return nil, indentationError(l, owner, "line is less indented than the block scalar content")
				}
				continue
			}
			block = -1
		}
		if !l.Significant() {
			continue
		}
		if raw := l.Raw(); strings.ContainsRune(raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))], '\t') {
			return nil, &errors.SyntaxError{
				Message: "tab character used for indentation",
				Line:    l.Number + 1,
				Column:  strings.IndexByte(raw, '\t') + 1,
			}
		}
		ind := l.Indentation()
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			if ind > top.column {
				if !opens {
					return nil, indentationError(l, prev, "line is indented deeper than a line without a nested block")
				}
			} else {
				for len(stack) > 0 && stack[len(stack)-1].column > ind {
					top = stack[len(stack)-1]
					stack = stack[:len(stack)-1]
				}
				if len(stack) == 0 || stack[len(stack)-1].column != ind {
					return nil, indentationError(l, top.line, "line does not align with any enclosing block")
				}
				stack = stack[:len(stack)-1]
			}
		}
		p := l.Parts()
		stack = append(stack, level{column: ind, line: l})
		for i, m := range p.Markers {
			if i+1 < len(p.Markers) || p.HasKey {
				stack = append(stack, level{column: m.Next, line: l})
			}
		}
		prev, opens = l, p.Opens()
		if ind, ok := line.ParseIndicator(p.Value); ok {
			block = p.Owner(l.Indentation())
			base = -1
			if ind.Indent > 0 {
				base = block + ind.Indent
			}
			owner = l
		}
	}
	return v, nil
}

func indentationError(l, ref line.Line, msg string) error {
	return &errors.IndentationError{
		Message:       msg,
		Line:          l.Number + 1,
		Text:          l.Raw(),
		Reference:     ref.Number + 1,
		ReferenceText: ref.Raw(),
	}
}
