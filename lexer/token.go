/*
File    : sst/lexer/token.go

Package lexer implements lexical analysis for SST source text.
*/
package lexer

import "fmt"

// TokenKind classifies a Token. SST does not distinguish keywords at
// lex time: reserved words such as "if" or "func" are lexed as plain
// IDENT tokens and recognized contextually by the parser (spec §4.1).
type TokenKind string

const (
	IDENT        TokenKind = "IDENT"
	NUMBER_INT   TokenKind = "NUMBER_INT"
	NUMBER_FLOAT TokenKind = "NUMBER_FLOAT"
	STRING       TokenKind = "STRING"
	SEMICOLON    TokenKind = "SEMICOLON"
	SYMBOL       TokenKind = "SYMBOL"
	EOF          TokenKind = "EOF"
)

// Token is a (kind, payload) pair together with its source position,
// used only for human-readable diagnostics (spec §3, §7).
type Token struct {
	Kind    TokenKind
	Literal string
	Line    int
	Column  int
}

// NewToken builds a Token without position metadata.
func NewToken(kind TokenKind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
}

// reservedWords lists identifiers the parser treats specially. The
// lexer never looks at this set — it exists here purely so callers
// outside the parser (e.g. REPL tab completion) can reuse it without
// importing parser and risking an import cycle.
var reservedWords = map[string]bool{
	"use": true, "newtype": true, "func": true, "always": true,
	"if": true, "elif": true, "else": true, "end": true, "while": true,
	"return": true, "break": true, "continue": true,
	"true": true, "false": true,
	"and": true, "or": true, "not": true,
	"num": true, "fl": true, "str": true, "bool": true, "li": true,
}

// IsReservedWord reports whether ident names a word the parser
// assigns special grammar meaning to.
func IsReservedWord(ident string) bool {
	return reservedWords[ident]
}
