package line

// Chomping controls what happens to the final line breaks of a block scalar.
type Chomping byte

const (
	// Clip keeps a single final line break.
	Clip Chomping = iota
	// Strip removes all final line breaks.
	Strip
	// Keep retains every final line break.
	Keep
)

// Indicator is the header of a block scalar: "|" or ">" optionally followed
// by an indentation digit and a chomping indicator, in either order.
type Indicator struct {
	Folded   bool
	Chomping Chomping
	// Indent is the explicit indentation, relative to the owning node, or 0.
	Indent int
}

// ParseIndicator parses s as a block scalar header.
func ParseIndicator(s string) (Indicator, bool) {
	var ind Indicator
	if s == "" {
		return ind, false
	}
	switch s[0] {
	case '|':
	case '>':
		ind.Folded = true
	default:
		return ind, false
	}
	var chomp, digit bool
	for _, c := range s[1:] {
		switch {
		case (c == '-' || c == '+') && !chomp:
			chomp = true
			ind.Chomping = Strip
			if c == '+' {
				ind.Chomping = Keep
			}
		case c >= '1' && c <= '9' && !digit:
			digit = true
			ind.Indent = int(c - '0')
		default:
			return Indicator{}, false
		}
	}
	return ind, true
}

// IsIndicator reports whether s is a block scalar header.
func IsIndicator(s string) bool {
	_, ok := ParseIndicator(s)
	return ok
}
