package line

// walk calls fn for every byte of s that lies outside a quoted scalar,
// together with the flow depth in effect before that byte. Walking stops
// when fn returns false.
//
// A quote only opens a quoted scalar where a scalar may begin: at the start
// of the content, after a flow indicator, or after a "- ", "? " or ": "
// marker. Inside single quotes '' is an escaped quote, inside double quotes
// a backslash escapes the next character.
func walk(s string, fn func(i, depth int) bool) {
	var quote byte
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch quote {
		case '"':
			switch c {
			case '\\':
				i++
			case '"':
				quote = 0
			}
			continue
		case '\'':
			if c == '\'' {
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
					continue
				}
				quote = 0
			}
			continue
		}
		if (c == '"' || c == '\'') && opensQuote(s, i, depth) {
			quote = c
			continue
		}
		if !fn(i, depth) {
			return
		}
		switch c {
		case '[', '{':
			depth++
		case ']', '}':
			if depth > 0 {
				depth--
			}
		}
	}
}

func opensQuote(s string, i, depth int) bool {
	j := i - 1
	for j >= 0 && (s[j] == ' ' || s[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	spaced := j < i-1
	switch s[j] {
	case '[', '{', ',':
		return true
	case ':':
		return spaced || depth > 0
	case '-', '?':
		return spaced
	}
	return false
}

// CommentIndex returns the offset of the '#' that starts a comment in s, or
// -1 if s carries no comment. A '#' only starts a comment at the beginning
// of s or after whitespace, and never inside a quoted scalar.
func CommentIndex(s string) int {
	at := -1
	walk(s, func(i, _ int) bool {
		if s[i] == '#' && (i == 0 || s[i-1] == ' ' || s[i-1] == '\t') {
			at = i
			return false
		}
		return true
	})
	return at
}

// MappingColon returns the offset of the ':' separating a key from its
// value in s, or -1. The colon must be outside quotes and flow collections
// and be followed by whitespace or the end of s.
func MappingColon(s string) int {
	at := -1
	walk(s, func(i, depth int) bool {
		if s[i] == ':' && depth == 0 && (i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t') {
			at = i
			return false
		}
		return true
	})
	return at
}

// FlowColon is like MappingColon but also accepts a colon that directly
// follows a quoted key, as in {"a":1}.
func FlowColon(s string) int {
	at := -1
	walk(s, func(i, depth int) bool {
		if s[i] != ':' || depth != 0 {
			return true
		}
		if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t' || (i > 0 && (s[i-1] == '"' || s[i-1] == '\'')) {
			at = i
			return false
		}
		return true
	})
	return at
}

// Depth returns the flow depth at the end of s: the number of '[' and '{'
// left open.
func Depth(s string) int {
	depth := 0
	walk(s, func(i, d int) bool {
		switch s[i] {
		case '[', '{':
			depth = d + 1
		case ']', '}':
			depth = d - 1
			if depth < 0 {
				depth = 0
			}
		}
		return true
	})
	return depth
}

// Closing returns the offset of the bracket closing the flow collection
// opened by s[0], or -1 if it is never closed.
func Closing(s string) int {
	at := -1
	walk(s, func(i, depth int) bool {
		if (s[i] == ']' || s[i] == '}') && depth == 1 {
			at = i
			return false
		}
		return true
	})
	return at
}

// Split splits s around every sep that lies outside quotes and nested flow
// collections.
func Split(s string, sep byte) []string {
	var parts []string
	start := 0
	walk(s, func(i, depth int) bool {
		if s[i] == sep && depth == 0 {
			parts = append(parts, s[start:i])
			start = i + 1
		}
		return true
	})
	return append(parts, s[start:])
}
