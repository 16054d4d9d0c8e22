// Package formatter prints YAML node trees in block style.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-yamldoc/ast"
)

const (
	defaultIndent        = 2
	defaultLineSeparator = "\n"
)

var errNilNode = errors.New("yamldoc: cannot format a nil node")

// Config controls the output of a Formatter. Zero fields take their
// defaults.
type Config struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// LineSeparator terminates every printed line.
	LineSeparator string
	// Colors highlights the output when set.
	Colors *Colors
	// OmitComments drops all comments from the output.
	OmitComments bool
}

// Formatter writes a YAML node tree to an output stream.
type Formatter struct {
	w            io.Writer
	indent       int
	nl           string
	colors       *Colors
	omitComments bool
}

// New returns a new formatter that writes to w.
func New(w io.Writer, cfg Config) *Formatter {
	f := &Formatter{
		w:            w,
		indent:       defaultIndent,
		nl:           defaultLineSeparator,
		colors:       cfg.Colors,
		omitComments: cfg.OmitComments,
	}
	if cfg.Indent > 0 {
		f.indent = cfg.Indent
	}
	if cfg.LineSeparator != "" {
		f.nl = cfg.LineSeparator
	}
	return f
}

// Format writes the YAML text of node to the writer. A stream prints every
// document after a "---" marker; a document that is null and carries no
// comment prints nothing.
func (f *Formatter) Format(node ast.Node) error {
	if node == nil {
		return errNilNode
	}
	var (
		lines []string
		err   error
	)
	if node.Kind() == ast.KindStream {
		lines, err = f.stream(node)
	} else {
		lines, err = f.document(node, false)
	}
	if err != nil {
		return err
	}
	for _, l := range lines {
		if err := f.write(l); err != nil {
			return err
		}
		if err := f.write(f.nl); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) stream(node ast.Node) ([]string, error) {
	s, ok := node.(ast.Stream)
	if !ok {
		return nil, unsupported(node)
	}
	var lines []string
	for _, doc := range s.Documents() {
		if doc == nil {
			return nil, errNilNode
		}
		if doc.Kind() == ast.KindStream {
			return nil, errors.New("yamldoc: cannot format a stream inside a stream")
		}
		d, err := f.document(doc, true)
		if err != nil {
			return nil, err
		}
		lines = append(lines, d...)
	}
	return lines, nil
}

// document prints a document root. The comment of the root is printed as a
// block of its own, separated from the content by a blank line, and its
// foot after the content. A marked document carries its inline comment on
// the marker line.
func (f *Formatter) document(n ast.Node, marked bool) ([]string, error) {
	c := f.comment(n)
	var lines []string
	if marked {
		lines = append(lines, f.colors.marker("---")+f.inline(c.Inline))
		c.Inline = ""
	}
	lead := c.Above
	var content []string
	switch n.Kind() {
	case ast.KindScalar:
		s, ok := n.(ast.Scalar)
		if !ok {
			return nil, unsupported(n)
		}
		if s.IsNull() {
			return append(lines, f.commentLines(c.Value(), 0)...), nil
		}
		head, body := f.scalar(s, f.indent)
		content = append([]string{head + f.inline(c.Inline)}, body...)
	case ast.KindMapping, ast.KindSequence:
		if empty, ok := f.empty(n); ok {
			content = []string{empty + f.inline(c.Inline)}
			break
		}
		lead = joinLines(c.Above, c.Inline)
		var err error
		if content, err = f.block(n, 0); err != nil {
			return nil, err
		}
	default:
		return nil, unsupported(n)
	}
	if lead != "" {
		lines = append(lines, f.commentLines(lead, 0)...)
		lines = append(lines, "")
	}
	lines = append(lines, content...)
	return append(lines, f.commentLines(c.Foot, 0)...), nil
}

func joinLines(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + "\n" + b
}

// foot prints the foot comment of n at column col. A blank line keeps it
// apart from a following sibling so that it does not read back as the
// comment above that sibling.
func (f *Formatter) foot(n ast.Node, col int, last bool) []string {
	lines := f.commentLines(f.comment(n).Foot, col)
	if len(lines) > 0 && !last {
		lines = append(lines, "")
	}
	return lines
}

// value prints n as the value of a key or sequence item written at column
// col. It returns the text completing the line of the key or item and the
// lines nested under it.
func (f *Formatter) value(n ast.Node, col int) (string, []string, error) {
	if n == nil {
		return " " + f.colors.null("null"), nil, nil
	}
	inline := f.inline(f.comment(n).Inline)
	switch n.Kind() {
	case ast.KindScalar:
		s, ok := n.(ast.Scalar)
		if !ok {
			return "", nil, unsupported(n)
		}
		head, body := f.scalar(s, col+f.indent)
		return " " + head + inline, body, nil
	case ast.KindMapping, ast.KindSequence:
		if empty, ok := f.empty(n); ok {
			return " " + empty + inline, nil, nil
		}
		body, err := f.block(n, col+f.indent)
		return inline, body, err
	case ast.KindStream:
		return "", nil, errors.New("yamldoc: cannot format a stream inside a document")
	}
	return "", nil, unsupported(n)
}

// block prints a non-empty mapping or sequence at column col.
func (f *Formatter) block(n ast.Node, col int) ([]string, error) {
	switch n := n.(type) {
	case ast.Mapping:
		return f.mapping(n, col)
	case ast.Sequence:
		return f.sequence(n, col)
	}
	return nil, unsupported(n)
}

func (f *Formatter) mapping(m ast.Mapping, col int) ([]string, error) {
	var lines []string
	entries := m.Entries()
	for i, e := range entries {
		lines = append(lines, f.commentLines(f.comment(e.Value).Above, col)...)
		head, body, err := f.value(e.Value, col)
		if err != nil {
			return nil, err
		}
		if key, ok := simpleKey(e.Key); ok {
			lines = append(lines, pad(col)+f.key(key)+f.colors.indicator(":")+head)
		} else {
			key, err := f.complexKey(e.Key, col)
			if err != nil {
				return nil, err
			}
			lines = append(lines, key...)
			lines = append(lines, pad(col)+f.colors.indicator(":")+head)
		}
		lines = append(lines, body...)
		lines = append(lines, f.foot(e.Value, col, i == len(entries)-1)...)
	}
	return lines, nil
}

func simpleKey(k ast.Node) (ast.Scalar, bool) {
	if k == nil {
		return ast.Null(), true
	}
	s := ast.ScalarOf(k)
	return s, s != nil
}

func (f *Formatter) key(s ast.Scalar) string {
	if s.IsNull() {
		return f.colors.null("null")
	}
	return f.colors.key(plainOrQuoted(s))
}

// complexKey prints the "?" line of a key that is a mapping or a sequence
// and the key block nested under it.
func (f *Formatter) complexKey(k ast.Node, col int) ([]string, error) {
	mark := pad(col) + f.colors.indicator("?")
	if k.Kind() == ast.KindStream {
		return nil, errors.New("yamldoc: cannot format a stream as a mapping key")
	}
	if empty, ok := f.empty(k); ok {
		return []string{mark + " " + empty}, nil
	}
	body, err := f.block(k, col+f.indent)
	if err != nil {
		return nil, err
	}
	return append([]string{mark}, body...), nil
}

func (f *Formatter) sequence(s ast.Sequence, col int) ([]string, error) {
	var lines []string
	items := s.Items()
	for i, item := range items {
		c := f.comment(item)
		last := i == len(items)-1
		lines = append(lines, f.commentLines(c.Above, col)...)
		dash := pad(col) + f.colors.indicator("-")
		if c.Inline == "" && f.compact(item) {
			// The item starts on the line of its marker: "- key: value".
			body, err := f.block(item, col+2)
			if err != nil {
				return nil, err
			}
			body[0] = dash + " " + body[0][col+2:]
			lines = append(lines, body...)
			lines = append(lines, f.foot(item, col, last)...)
			continue
		}
		head, body, err := f.value(item, col)
		if err != nil {
			return nil, err
		}
		lines = append(lines, dash+head)
		lines = append(lines, body...)
		lines = append(lines, f.foot(item, col, last)...)
	}
	return lines, nil
}

// compact reports whether the first line of item can share the line of its
// sequence marker.
func (f *Formatter) compact(item ast.Node) bool {
	if item == nil {
		return false
	}
	switch item.Kind() {
	case ast.KindMapping:
		m, ok := item.(ast.Mapping)
		if !ok || m.Len() == 0 {
			return false
		}
		first := m.Entries()[0]
		if _, ok := simpleKey(first.Key); !ok {
			return false
		}
		return first.Value == nil || f.comment(first.Value).Above == ""
	case ast.KindSequence:
		s, ok := item.(ast.Sequence)
		if !ok || s.Len() == 0 {
			return false
		}
		first := s.Items()[0]
		return first == nil || f.comment(first).Above == ""
	}
	return false
}

// empty returns "{}" or "[]" for an empty mapping or sequence.
func (f *Formatter) empty(n ast.Node) (string, bool) {
	switch n := n.(type) {
	case ast.Mapping:
		if n.Len() == 0 {
			return f.colors.indicator("{}"), true
		}
	case ast.Sequence:
		if n.Len() == 0 {
			return f.colors.indicator("[]"), true
		}
	}
	return "", false
}

// scalar prints s on a single line, or as a block scalar header followed by
// its content lines at column col.
func (f *Formatter) scalar(s ast.Scalar, col int) (string, []string) {
	if s.IsNull() {
		return f.colors.null("null"), nil
	}
	var (
		header string
		lines  []string
		ok     bool
	)
	switch s.Style() {
	case ast.Literal:
		header, lines, ok = literal(s.Value())
	case ast.Folded:
		header, lines, ok = folded(s.Value())
	}
	if !ok {
		return f.colors.scalar(plainOrQuoted(s)), nil
	}
	for i, l := range lines {
		if l != "" {
			lines[i] = pad(col) + f.colors.scalar(l)
		}
	}
	return f.colors.indicator(header), lines
}

// plainOrQuoted returns the single-line text of s. Quoted scalars keep
// their quotes; plain ones are quoted only when they would not read back
// as the same text.
func plainOrQuoted(s ast.Scalar) string {
	v := s.Value()
	switch s.Style() {
	case ast.DoubleQuoted:
		return doubleQuote(v)
	case ast.SingleQuoted:
		if printable(v) {
			return singleQuote(v)
		}
		return doubleQuote(v)
	}
	switch {
	case !needsQuotes(v):
		return v
	case strings.ContainsRune(v, '"') && printable(v):
		return singleQuote(v)
	}
	return doubleQuote(v)
}

func (f *Formatter) comment(n ast.Node) ast.Comment {
	if f.omitComments || n == nil {
		return ast.Comment{}
	}
	return n.Comment()
}

func (f *Formatter) inline(text string) string {
	if text == "" {
		return ""
	}
	return " " + f.colors.comment("# "+strings.ReplaceAll(text, "\n", " "))
}

func (f *Formatter) commentLines(text string, col int) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	lines := make([]string, len(parts))
	for i, p := range parts {
		c := "#"
		if p != "" {
			c += " " + p
		}
		lines[i] = pad(col) + f.colors.comment(c)
	}
	return lines
}

func pad(col int) string { return strings.Repeat(" ", col) }

func unsupported(n ast.Node) error {
	return fmt.Errorf("yamldoc: unsupported node type for formatting: %T", n)
}
