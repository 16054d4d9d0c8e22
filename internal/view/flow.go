package view

import (
	"strings"

	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

type collapsedFlow struct {
	cache
	inner       View
	open, close byte
}

// CollapsedFlow returns v with every flow collection opened by open and
// spanning several lines joined into one logical line. The joined line keeps
// the number and indentation of the line the collection starts on. Comment
// lines inside the collection are dropped; the first inline comment found is
// kept on the joined line.
//
// Content of block scalars is passed through untouched.
func CollapsedFlow(v View, open, close byte) View {
	return &collapsedFlow{inner: v, open: open, close: close}
}

func (c *collapsedFlow) Lines() []line.Line { return c.get(c.compute) }

func (c *collapsedFlow) compute() []line.Line {
	ls := c.inner.Lines()
	out := make([]line.Line, 0, len(ls))
	block := -1
	for i := 0; i < len(ls); i++ {
		l := ls[i]
		if block >= 0 {
			if !l.Significant() || l.Indentation() > block {
				out = append(out, l)
				continue
			}
			block = -1
		}
		if !l.Significant() {
			out = append(out, l)
			continue
		}
		text := l.Trimmed()
		start := c.flowStart(text)
		if start < 0 || line.Depth(text[start:]) == 0 {
			if p := l.Parts(); line.IsIndicator(p.Value) {
				block = p.Owner(l.Indentation())
			}
			out = append(out, l)
			continue
		}
		comment := l.Comment()
		j := i + 1
		for depth := line.Depth(text[start:]); j < len(ls) && depth > 0; j++ {
			n := ls[j]
			if !n.Significant() {
				continue
			}
			if comment == "" {
				comment = n.Comment()
			}
			text = join(text, n.Trimmed())
			depth = line.Depth(text[start:])
		}
		raw := strings.Repeat(" ", l.Indentation()) + text
		if comment != "" {
			raw += " # " + comment
		}
		out = append(out, l.WithRaw(raw))
		i = j - 1
	}
	return out
}

// flowStart returns the offset in text where a value beginning with the
// open character starts, or -1.
func (c *collapsedFlow) flowStart(text string) int {
	off := 0
	for len(text) > 1 && (text[0] == '-' || text[0] == '?' || text[0] == ':') && (text[1] == ' ' || text[1] == '\t') {
		rest := strings.TrimLeft(text[1:], " \t")
		off += len(text) - len(rest)
		text = rest
	}
	if i := line.MappingColon(text); i >= 0 {
		rest := strings.TrimLeft(text[i+1:], " \t")
		off += len(text) - len(rest)
		text = rest
	}
	if text != "" && text[0] == c.open {
		return off
	}
	return -1
}

// join concatenates two pieces of a flow collection. Pieces meet without a
// separator around flow indicators and with a single space otherwise.
func join(acc, next string) string {
	if acc == "" || next == "" {
		return acc + next
	}
	if strings.ContainsRune("[{,", rune(acc[len(acc)-1])) || strings.ContainsRune("]},", rune(next[0])) {
		return acc + next
	}
	return acc + " " + next
}

func (c *collapsedFlow) Original() []line.Line { return c.inner.Original() }
