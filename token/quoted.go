package token

import (
	"strings"
)

// IsAtomByte reports whether c may appear in a bareword atom.
func IsAtomByte(c byte) bool {
	return isSafeByte(c) || c == '-'
}

// isSafeByte excludes '-' so that written barewords never start like a
// negative number.
func isSafeByte(c byte) bool {
	switch {
	case asciiDigit(c), 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	}
	switch c {
	case '_', '$', '/', ':', '.':
		return true
	}
	return false
}

// NeedsQuote reports whether s must be written quoted to read back as the
// same string: it is empty, has a byte outside the safe set, or reads as a
// float literal.
func NeedsQuote(s string) bool {
	if s == "" || !allBytes(s, isSafeByte) {
		return true
	}
	return IsFloat(s)
}

// Quote writes s in double quotes, escaping '"' and '\'.
func Quote(s string) string {
	buf := strings.Builder{}
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(c)
	}
	buf.WriteByte('"')
	return buf.String()
}

// QuoteIfNeeded returns s bare when NeedsQuote allows it, quoted otherwise.
func QuoteIfNeeded(s string) string {
	if NeedsQuote(s) {
		return Quote(s)
	}
	return s
}

// unquote decodes the quoted string whose opening '"' is at d[start]. It
// returns the content and the offset just past the closing quote.
func unquote(d []byte, start int, pd *PosDoc) (string, int, error) {
	var buf []byte
	i := start + 1
	from := i
	for i < len(d) {
		switch d[i] {
		case '"':
			if buf == nil {
				return string(d[from:i]), i + 1, nil
			}
			buf = append(buf, d[from:i]...)
			return string(buf), i + 1, nil
		case '\\':
			buf = append(buf, d[from:i]...)
			esc := i
			i++
			if i == len(d) {
				return "", 0, NewTokenizeErr(ErrUnclosedString, pd.Pos(start))
			}
			switch c := d[i]; c {
			case '"', '\\':
				buf = append(buf, c)
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			default:
				if c < '0' || c > '3' || i+2 >= len(d) || !octal(d[i+1]) || !octal(d[i+2]) {
					return "", 0, NewTokenizeErr(ErrUnknownEscape, pd.Pos(esc))
				}
				r := rune(c-'0')*64 + rune(d[i+1]-'0')*8 + rune(d[i+2]-'0')
				buf = append(buf, string(r)...)
				i += 2
			}
			i++
			from = i
		default:
			i++
		}
	}
	return "", 0, NewTokenizeErr(ErrUnclosedString, pd.Pos(start))
}

func octal(c byte) bool {
	return '0' <= c && c <= '7'
}
