package token

import (
	"errors"
	"strconv"
	"strings"
)

type NumKind int

const (
	NotNumber NumKind = iota
	IntNumber
	FloatNumber
)

// Numeric classifies the text of a bareword atom.
//
// Text made only of digits and upper case 'A'-'F' with at least one
// letter is not a number (it reads as hex, e.g. a glyph id). Text with a
// leading zero made only of digits is not a number either. Anything else
// is an integer if it parses as one, then a float, else not a number.
func Numeric(s string) (NumKind, int64, float64) {
	if s == "" {
		return NotNumber, 0, 0
	}
	if allBytes(s, hexUpper) && !allBytes(s, asciiDigit) {
		return NotNumber, 0, 0
	}
	if len(s) > 1 && s[0] == '0' && allBytes(s, asciiDigit) {
		return NotNumber, 0, 0
	}
	if isInteger(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IntNumber, i, 0
		}
	}
	if IsFloat(s) {
		// out of range values saturate to ±Inf or 0
		f, err := strconv.ParseFloat(s, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return FloatNumber, 0, f
		}
	}
	return NotNumber, 0, 0
}

// IsFloat reports whether s is a decimal floating point literal: optional
// sign, digits with an optional '.', optional exponent, at least one
// mantissa digit; or inf, infinity, nan in any case.
func IsFloat(s string) bool {
	d := []byte(s)
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	switch strings.ToLower(string(d)) {
	case "inf", "infinity", "nan":
		return true
	}
	digits := asciiDigits(d)
	f := fract(d[digits:])
	if digits == 0 && f < 2 {
		return false
	}
	rest := d[digits+f:]
	if len(rest) == 0 {
		return true
	}
	return exp(rest) == len(rest)
}

func isInteger(s string) bool {
	d := []byte(s)
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	return len(d) > 0 && asciiDigits(d) == len(d)
}

func allBytes(s string, f func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if !f(s[i]) {
			return false
		}
	}
	return true
}

func hexUpper(c byte) bool {
	return asciiDigit(c) || ('A' <= c && c <= 'F')
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// exp returns the length of an exponent at the start of d, or 0.
func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract returns the length of a '.' and the digits following it at the
// start of d, or 0. A lone '.' has length 1.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}
