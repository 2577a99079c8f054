package parse

import (
	"github.com/signadot/plist/debug"
	"github.com/signadot/plist/ir"
	"github.com/signadot/plist/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	tz := token.NewTokenizer(d)
	res, err := parseValue(tz, 0, pOpts)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed at offset %d: %v\n", tz.Offset(), err)
		}
		return nil, err
	}
	if !pOpts.allowTrailing && !tz.AtEOF() {
		return nil, posErr(ErrTrailingContent, tz.Pos())
	}
	return res, nil
}

func parseValue(tz *token.Tokenizer, depth int, opts *parseOpts) (*ir.Node, error) {
	tok, err := tz.Next()
	if err != nil {
		return nil, lexErr(err)
	}
	switch tok.Type {
	case token.TString:
		return ir.FromString(tok.Text), nil
	case token.TAtom:
		return atom(tok.Text), nil
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, posErr(ErrTooDeep, tok.Pos)
		}
		return parseDict(tz, depth+1, opts)
	case token.TLParen:
		if depth >= opts.maxDepth {
			return nil, posErr(ErrTooDeep, tok.Pos)
		}
		return parseArray(tz, depth+1, opts)
	default:
		return nil, posErr(ErrUnexpectedEOF, tok.Pos)
	}
}

func atom(s string) *ir.Node {
	switch kind, i, f := token.Numeric(s); kind {
	case token.IntNumber:
		return ir.FromInt(i)
	case token.FloatNumber:
		return ir.FromFloat(f)
	default:
		return ir.FromString(s)
	}
}

func parseDict(tz *token.Tokenizer, depth int, opts *parseOpts) (*ir.Node, error) {
	fields := map[string]*ir.Node{}
	for {
		if tz.Expect('}') {
			return ir.FromMap(fields), nil
		}
		tok, err := tz.Next()
		if err != nil {
			return nil, lexErr(err)
		}
		if tok.Type != token.TString && tok.Type != token.TAtom {
			return nil, posErr(ErrNotAString, tok.Pos)
		}
		if !tz.Expect('=') {
			return nil, posErr(ErrExpectedEquals, tz.Pos())
		}
		val, err := parseValue(tz, depth, opts)
		if err != nil {
			return nil, err
		}
		// a repeated key keeps the last value
		fields[tok.Text] = val
		if !tz.Expect(';') {
			return nil, posErr(ErrExpectedSemicolon, tz.Pos())
		}
	}
}

func parseArray(tz *token.Tokenizer, depth int, opts *parseOpts) (*ir.Node, error) {
	values := []*ir.Node{}
	if tz.Expect(')') {
		return ir.FromSlice(values), nil
	}
	for {
		val, err := parseValue(tz, depth, opts)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
		if tz.Expect(')') {
			return ir.FromSlice(values), nil
		}
		if !tz.Expect(',') {
			return nil, posErr(ErrExpectedComma, tz.Pos())
		}
		if tz.Expect(')') {
			return ir.FromSlice(values), nil
		}
	}
}
