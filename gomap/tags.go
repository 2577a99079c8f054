package gomap

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseStructTag parses a struct tag string and returns a map of key-value pairs.
// Handles comma-separated values: `plist:"key1=value1,key2=value2,flag"`
// Supports quoted values with spaces: `plist:"default='a b'"`
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for i := 0; i < len(tag); i++ {
		char := tag[i]
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(char)
		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(char)
		case (char == ',' || char == ' ') && !inSingleQuote && !inDoubleQuote:
			flush()
		default:
			current.WriteByte(char)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("invalid tag %q: unterminated quote", tag)
	}
	flush()

	for _, part := range parts {
		if idx := strings.Index(part, "="); idx >= 0 {
			key := strings.TrimSpace(part[:idx])
			if key == "" {
				return nil, fmt.Errorf("invalid tag: empty key in %q", part)
			}
			result[key] = unquoteValue(strings.TrimSpace(part[idx+1:]))
			continue
		}
		result[part] = ""
	}
	return result, nil
}

// unquoteValue removes surrounding single or double quotes from a value.
func unquoteValue(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '\'' || first == '"') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// WireKey returns the lower camel case form of a Go field name, with
// initialisms treated as words: LayerID is layerId, XHeight is xHeight.
func WireKey(name string) string {
	rs := []rune(name)
	var b strings.Builder
	word := 0
	start := 0
	emit := func(end int) {
		if end <= start {
			return
		}
		w := strings.ToLower(string(rs[start:end]))
		if word > 0 {
			r := []rune(w)
			r[0] = unicode.ToUpper(r[0])
			w = string(r)
		}
		b.WriteString(w)
		word++
		start = end
	}
	for i := 1; i < len(rs); i++ {
		if !unicode.IsUpper(rs[i]) {
			continue
		}
		prev := rs[i-1]
		if unicode.IsLower(prev) || unicode.IsDigit(prev) {
			emit(i)
			continue
		}
		if unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
			emit(i)
		}
	}
	emit(len(rs))
	return b.String()
}
