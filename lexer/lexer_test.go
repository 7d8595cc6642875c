package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextToken_Arithmetic(t *testing.T) {
	tokens, err := Tokenize(`123 + 2.5 - 12 % 3;`)
	require.NoError(t, err)

	kinds := make([]TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		NUMBER_INT, SYMBOL, NUMBER_FLOAT, SYMBOL, NUMBER_INT, SYMBOL, NUMBER_INT, SEMICOLON, EOF,
	}, kinds)
}

func TestNextToken_TwoCharOperators(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{">=", ">="},
		{"<=", "<="},
		{"==", "=="},
		{"!=", "!="},
		{">", ">"},
		{"<", "<"},
		{"=", "="},
		{"!", "!"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize(tt.input)
		require.NoError(t, err)
		require.Len(t, tokens, 2) // operator + EOF
		assert.Equal(t, SYMBOL, tokens[0].Kind)
		assert.Equal(t, tt.literal, tokens[0].Literal)
	}
}

func TestNextToken_Strings(t *testing.T) {
	tokens, err := Tokenize(`"hello" "with \" quote"`)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "hello", tokens[0].Literal)
	assert.Equal(t, `with \" quote`, tokens[1].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"oops`)
	assert.Error(t, err)
}

func TestNextToken_MalformedNumber(t *testing.T) {
	_, err := Tokenize(`1.2.3`)
	assert.Error(t, err)
}

func TestNextToken_Comments(t *testing.T) {
	src := "num a = 1; // trailing\n# hash comment\n/* block\ncomment */ num b = 2;"
	tokens, err := Tokenize(src)
	require.NoError(t, err)
	var literals []string
	for _, tok := range tokens {
		if tok.Kind != EOF {
			literals = append(literals, tok.Literal)
		}
	}
	assert.Equal(t, []string{"num", "a", "=", "1", ";", "num", "b", "=", "2", ";"}, literals)
}

func TestNextToken_IdentifiersNotKeywordsAtLexTime(t *testing.T) {
	tokens, err := Tokenize("if while func")
	require.NoError(t, err)
	for _, tok := range tokens[:3] {
		assert.Equal(t, IDENT, tok.Kind)
	}
}

func TestTokenize_EOFIsStable(t *testing.T) {
	lx := NewLexer("num a = 1;")
	for {
		tok, err := lx.NextToken()
		require.NoError(t, err)
		if tok.Kind == EOF {
			break
		}
	}
	again, err := lx.NextToken()
	require.NoError(t, err)
	assert.Equal(t, EOF, again.Kind)
}
