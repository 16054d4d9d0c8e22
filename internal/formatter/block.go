package formatter

import (
	"strings"
	"unicode"
)

// chomp splits the trailing newlines off v.
func chomp(v string) (string, int) {
	body := strings.TrimRight(v, "\n")
	return body, len(v) - len(body)
}

// blockable reports whether body can be the content of a block scalar. The
// first line fixes the content indentation, so it cannot be blank or start
// with white space, and blank content lines must be empty.
func blockable(body string) bool {
	if body == "" || isSpace(body[0]) || body[0] == '\n' {
		return false
	}
	for _, l := range strings.Split(body, "\n") {
		if l != "" && strings.TrimSpace(l) == "" {
			return false
		}
		for _, r := range l {
			if r != '\t' && !unicode.IsPrint(r) {
				return false
			}
		}
	}
	return true
}

// literal returns the header and content lines of a literal block scalar
// holding v.
func literal(v string) (string, []string, bool) {
	body, n := chomp(v)
	if !blockable(body) {
		return "", nil, false
	}
	header := "|"
	switch {
	case n == 0:
		header = "|-"
	case n > 1:
		header = "|+"
	}
	lines := strings.Split(body, "\n")
	for i := 1; i < n; i++ {
		lines = append(lines, "")
	}
	return header, lines, true
}

// folded returns the header and content lines of a folded block scalar
// holding v. Every line of v is written on a line of its own; the blank
// lines between them are chosen so that folding restores the breaks.
func folded(v string) (string, []string, bool) {
	body, n := chomp(v)
	if !blockable(body) {
		return "", nil, false
	}
	var lines []string
	prev, breaks := "", 0
	for _, seg := range strings.Split(body, "\n") {
		breaks++
		if seg == "" {
			continue
		}
		if prev != "" {
			blanks := breaks - 1
			if normal(prev) && normal(seg) {
				blanks = breaks
			}
			for range blanks {
				lines = append(lines, "")
			}
		}
		lines = append(lines, seg)
		prev, breaks = seg, 0
	}
	header := ">-"
	if n > 0 {
		header = ">+"
		for i := 1; i < n; i++ {
			lines = append(lines, "")
		}
	}
	return header, lines, true
}

func normal(s string) bool { return !isSpace(s[0]) }
