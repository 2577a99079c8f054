// Package token provides tokenization of the property list text format.
//
// A [Tokenizer] produces [Token]s on demand: end of input, '{', '(', quoted
// strings and bareword atoms. Punctuation between values ('=', ';', ',',
// '}' and ')') is consumed with [Tokenizer.Expect].
//
// [Numeric] implements the rule deciding whether a bareword is a number,
// and [NeedsQuote] the matching rule for writing strings back.
package token
