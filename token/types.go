package token

import "fmt"

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TLParen
	TString
	TAtom
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:    "TEOF",
		TLCurl:  "TLCurl",
		TLParen: "TLParen",
		TString: "TString",
		TAtom:   "TAtom",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  *Pos
	// Bytes is the raw source of the token.
	Bytes []byte
	// Text is the decoded content of a TString or TAtom.
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
