package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedChar = errors.New("unexpected character")
	ErrUnclosedString = errors.New("unclosed string")
	ErrUnknownEscape  = errors.New("unknown escape")
)

// TokenizeErr is a lexing failure at a position in the document.
type TokenizeErr struct {
	Err error
	Pos *Pos
}

func NewTokenizeErr(e error, pos *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: pos}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Pos.String())
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

// UnexpectedCharErr reports a character that cannot start a value.
type UnexpectedCharErr struct {
	Char rune
}

func (e *UnexpectedCharErr) Error() string {
	return fmt.Sprintf("%s %q", ErrUnexpectedChar, e.Char)
}

func (e *UnexpectedCharErr) Unwrap() error {
	return ErrUnexpectedChar
}

func UnexpectedErr(c rune, pos *Pos) error {
	return NewTokenizeErr(&UnexpectedCharErr{Char: c}, pos)
}
