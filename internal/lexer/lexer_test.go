package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/langerr"
	"github.com/ShubhamPipaliya2007/tinylang-compiler/internal/token"
)

func TestTokenizePunctuationAndOperators(t *testing.T) {
	toks, err := Tokenize(`int x = 1 + 2 * 3 / 4 - (5) == 6 != 7 && 8 || !9;`)
	require.NoError(t, err)

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.INT_TYPE, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
		token.STAR, token.INT, token.SLASH, token.INT, token.MINUS, token.LPAREN,
		token.INT, token.RPAREN, token.EQ, token.INT, token.NE, token.INT,
		token.AND, token.INT, token.OR, token.NOT, token.INT, token.SEMI, token.EOF,
	}, kinds)
}

func TestTokenizeKeywordsAndIdents(t *testing.T) {
	toks, err := Tokenize(`ComeAndDo main class Foo if else while for return print input read true false x_1`)
	require.NoError(t, err)
	require.Len(t, toks, 16)
	assert.Equal(t, token.COME_AND_DO, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, token.CLASS, toks[2].Kind)
	assert.Equal(t, token.IDENT, toks[3].Kind)
	assert.Equal(t, token.IF, toks[4].Kind)
	assert.Equal(t, token.ELSE, toks[5].Kind)
	assert.Equal(t, token.WHILE, toks[6].Kind)
	assert.Equal(t, token.FOR, toks[7].Kind)
	assert.Equal(t, token.RETURN, toks[8].Kind)
	assert.Equal(t, token.PRINT, toks[9].Kind)
	assert.Equal(t, token.INPUT, toks[10].Kind)
	assert.Equal(t, token.READ, toks[11].Kind)
	assert.Equal(t, token.BOOL, toks[12].Kind)
	assert.Equal(t, token.BOOL, toks[13].Kind)
	assert.Equal(t, token.IDENT, toks[14].Kind)
}

func TestTokenizeStringAndCharLiterals(t *testing.T) {
	toks, err := Tokenize(`string s = "hello world"; char c = 'a';`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", toks[3].Literal)
	assert.Equal(t, token.STRING, toks[3].Kind)
	assert.Equal(t, "a", toks[8].Literal)
	assert.Equal(t, token.CHAR, toks[8].Kind)
}

func TestTokenizeFloatAndInt(t *testing.T) {
	toks, err := Tokenize(`3.14 42 0.5`)
	require.NoError(t, err)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.Equal(t, "3.14", toks[0].Literal)
	assert.Equal(t, token.INT, toks[1].Kind)
	assert.Equal(t, token.FLOAT, toks[2].Kind)
}

func TestTokenizeSkipsComments(t *testing.T) {
	toks, err := Tokenize("int x; // trailing\n/* block\ncomment */ int y;")
	require.NoError(t, err)
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.INT_TYPE, token.IDENT, token.SEMI, token.INT_TYPE, token.IDENT, token.SEMI, token.EOF,
	}, kinds)
}

func TestUnterminatedStringReportsLexError(t *testing.T) {
	_, err := Tokenize(`string s = "never closed`)
	require.Error(t, err)
	var lerr *langerr.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, langerr.Lex, lerr.Kind)
}

func TestUnknownCharacterReportsLexError(t *testing.T) {
	_, err := Tokenize(`int x = 1 @ 2;`)
	require.Error(t, err)
	var lerr *langerr.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, langerr.Lex, lerr.Kind)
}

func TestMalformedCharLiteral(t *testing.T) {
	_, err := Tokenize(`char c = 'ab';`)
	require.Error(t, err)
	var lerr *langerr.Error
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, langerr.Lex, lerr.Kind)
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	toks, err := Tokenize("int x;\nint y;")
	require.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	// second declaration starts on line 2
	var found bool
	for _, tok := range toks {
		if tok.Line == 2 && tok.Kind == token.INT_TYPE {
			found = true
		}
	}
	assert.True(t, found)
}
