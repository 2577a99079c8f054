package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/plist/token"
)

var (
	ErrParse             = errors.New("parse error")
	ErrNotAString        = fmt.Errorf("%w: dictionary key is not a string", ErrParse)
	ErrExpectedEquals    = fmt.Errorf("%w: expected '='", ErrParse)
	ErrExpectedSemicolon = fmt.Errorf("%w: expected ';'", ErrParse)
	ErrExpectedComma     = fmt.Errorf("%w: expected ','", ErrParse)
	ErrUnexpectedEOF     = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailingContent   = fmt.Errorf("%w: trailing content after document", ErrParse)
	ErrTooDeep           = fmt.Errorf("%w: nesting too deep", ErrParse)

	// lexing errors, also reported as ErrParse
	ErrUnexpectedChar = token.ErrUnexpectedChar
	ErrUnclosedString = token.ErrUnclosedString
	ErrUnknownEscape  = token.ErrUnknownEscape
)

func posErr(e error, pos *token.Pos) error {
	return token.NewTokenizeErr(e, pos)
}

func lexErr(e error) error {
	return fmt.Errorf("%w: %w", ErrParse, e)
}
