package token

import (
	"unicode/utf8"
)

// Tokenizer reads tokens from a document one at a time.
type Tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{d: d, doc: NewPosDoc(d)}
}

// Offset returns the offset just past the last consumed token.
func (t *Tokenizer) Offset() int {
	return t.i
}

func (t *Tokenizer) Pos() *Pos {
	return t.doc.Pos(t.i)
}

// PosAt returns the position of offset i.
func (t *Tokenizer) PosAt(i int) *Pos {
	return t.doc.Pos(i)
}

func (t *Tokenizer) skipWS() {
	for t.i < len(t.d) {
		switch t.d[t.i] {
		case ' ', '\t', '\r', '\n':
			t.i++
		default:
			return
		}
	}
}

// Next returns the next token. At end of input it returns a TEOF token.
func (t *Tokenizer) Next() (*Token, error) {
	t.skipWS()
	start := t.i
	pos := t.doc.Pos(start)
	if start == len(t.d) {
		return &Token{Type: TEOF, Pos: pos}, nil
	}
	switch c := t.d[start]; c {
	case '{':
		t.i++
		return &Token{Type: TLCurl, Pos: pos, Bytes: t.d[start:t.i]}, nil
	case '(':
		t.i++
		return &Token{Type: TLParen, Pos: pos, Bytes: t.d[start:t.i]}, nil
	case '"':
		s, end, err := unquote(t.d, start, t.doc)
		if err != nil {
			return nil, err
		}
		t.i = end
		return &Token{Type: TString, Pos: pos, Bytes: t.d[start:end], Text: s}, nil
	default:
		if !IsAtomByte(c) {
			r, _ := utf8.DecodeRune(t.d[start:])
			return nil, UnexpectedErr(r, pos)
		}
		end := start + 1
		for end < len(t.d) && IsAtomByte(t.d[end]) {
			end++
		}
		t.i = end
		return &Token{Type: TAtom, Pos: pos, Bytes: t.d[start:end], Text: string(t.d[start:end])}, nil
	}
}

// Expect consumes c if it is the next non space byte.
func (t *Tokenizer) Expect(c byte) bool {
	t.skipWS()
	if t.i < len(t.d) && t.d[t.i] == c {
		t.i++
		return true
	}
	return false
}

// AtEOF reports whether only white space remains.
func (t *Tokenizer) AtEOF() bool {
	t.skipWS()
	return t.i == len(t.d)
}
