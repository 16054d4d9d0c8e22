package formatter

import (
	"fmt"
	"strings"
	"unicode"
)

// leading holds the characters a plain scalar cannot start with.
const leading = "#&*!|>'\"%@`[]{},"

// needsQuotes reports whether s must be quoted to read back as the same
// plain scalar.
func needsQuotes(s string) bool {
	if s == "" || s == "null" {
		return true
	}
	if isSpace(s[0]) || isSpace(s[len(s)-1]) {
		return true
	}
	if strings.HasPrefix(s, "---") || strings.HasPrefix(s, "...") {
		return true
	}
	if strings.IndexByte(leading, s[0]) >= 0 {
		return true
	}
	switch s[0] {
	case '-', '?', ':':
		if len(s) == 1 || isSpace(s[1]) {
			return true
		}
	}
	switch {
	case strings.Contains(s, ": "), strings.Contains(s, " #"), strings.HasSuffix(s, ":"):
		return true
	case strings.ContainsAny(s, "[]{},"):
		return true
	case strings.Contains(s, " '"), strings.Contains(s, ` "`):
		return true
	}
	return !printable(s)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' }

func printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// doubleQuote writes s as a double-quoted scalar, escaping quotes,
// backslashes and every character that is not printable.
func doubleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		case '\a':
			b.WriteString(`\a`)
		case '\b':
			b.WriteString(`\b`)
		case '\v':
			b.WriteString(`\v`)
		case '\f':
			b.WriteString(`\f`)
		case 0x1b:
			b.WriteString(`\e`)
		case 0x85:
			b.WriteString(`\N`)
		case 0xa0:
			b.WriteString(`\_`)
		case 0x2028:
			b.WriteString(`\L`)
		case 0x2029:
			b.WriteString(`\P`)
		default:
			switch {
			case unicode.IsPrint(r):
				b.WriteRune(r)
			case r <= 0xff:
				fmt.Fprintf(&b, `\x%02X`, r)
			case r <= 0xffff:
				fmt.Fprintf(&b, `\u%04X`, r)
			default:
				fmt.Fprintf(&b, `\U%08X`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
