package formatter

import "github.com/fatih/color"

// Colors is the palette used to highlight printed YAML. A nil field leaves
// that part of the output uncolored.
type Colors struct {
	Key       *color.Color
	Scalar    *color.Color
	Null      *color.Color
	Comment   *color.Color
	Indicator *color.Color
	Marker    *color.Color
}

// DefaultColors returns the default palette. Its colors are always
// enabled; callers decide whether to use them at all.
func DefaultColors() *Colors {
	c := &Colors{
		Key:       color.RGB(128, 168, 196),
		Scalar:    color.RGB(8, 196, 16),
		Null:      color.RGB(168, 0, 196),
		Comment:   color.New(color.FgBlue),
		Indicator: color.RGB(255, 0, 196),
		Marker:    color.New(color.Bold),
	}
	for _, col := range []*color.Color{c.Key, c.Scalar, c.Null, c.Comment, c.Indicator, c.Marker} {
		col.EnableColor()
	}
	return c
}

func paint(col *color.Color, s string) string {
	if col == nil || s == "" {
		return s
	}
	return col.Sprint(s)
}

func (c *Colors) key(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Key, s)
}

func (c *Colors) scalar(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Scalar, s)
}

func (c *Colors) null(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Null, s)
}

func (c *Colors) comment(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Comment, s)
}

func (c *Colors) indicator(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Indicator, s)
}

func (c *Colors) marker(s string) string {
	if c == nil {
		return s
	}
	return paint(c.Marker, s)
}
