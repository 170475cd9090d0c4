// Package lexer implements a lexical scanner for the card-query mini-language.
//
// The lexer never fails: unterminated quotes and regexes simply consume to
// end of input, and anything it cannot otherwise classify becomes a WORD.
package lexer

import (
	"strings"

	"github.com/cardquery/cardsearch/token"
)

// Lexer scans a query string into a sequence of tokens.
type Lexer struct {
	input        string
	position     int // start of current rune
	readPosition int // start of next rune
	ch           byte
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize runs the lexer to completion and returns every token, EOF included.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.ch) {
		l.readChar()
	}
}

// isSpecial reports whether ch always terminates a bare WORD.
func isSpecial(ch byte) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\r', ':', '=', '!', '<', '>', '(', ')', '"', '/':
		return true
	default:
		return false
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	start := l.position

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Value: "", Start: start, End: start}
	case ':':
		l.readChar()
		return token.Token{Type: token.COLON, Value: ":", Start: start, End: l.position}
	case '(':
		l.readChar()
		return token.Token{Type: token.LPAREN, Value: "(", Start: start, End: l.position}
	case ')':
		l.readChar()
		return token.Token{Type: token.RPAREN, Value: ")", Start: start, End: l.position}
	case '-':
		l.readChar()
		return token.Token{Type: token.DASH, Value: "-", Start: start, End: l.position}
	case '=':
		l.readChar()
		return token.Token{Type: token.EQ, Value: "=", Start: start, End: l.position}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.NEQ, Value: "!=", Start: start, End: l.position}
		}
		l.readChar()
		return token.Token{Type: token.BANG, Value: "!", Start: start, End: l.position}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.LTE, Value: "<=", Start: start, End: l.position}
		}
		l.readChar()
		return token.Token{Type: token.LT, Value: "<", Start: start, End: l.position}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.GTE, Value: ">=", Start: start, End: l.position}
		}
		l.readChar()
		return token.Token{Type: token.GT, Value: ">", Start: start, End: l.position}
	case '"', '\'':
		return l.readQuoted()
	case '/':
		return l.readRegex()
	default:
		return l.readWord()
	}
}

// readQuoted consumes a "..." or '...' string. The opposite quote character
// may appear unescaped inside; an unterminated quote runs to end of input.
func (l *Lexer) readQuoted() token.Token {
	start := l.position
	quote := l.ch
	l.readChar() // skip opening quote

	var sb strings.Builder
	for l.ch != quote && l.ch != 0 {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	if l.ch == quote {
		l.readChar() // skip closing quote
	}
	return token.Token{Type: token.QUOTED, Value: sb.String(), Start: start, End: l.position}
}

// readRegex consumes a /.../ pattern. \/ is the only recognized escape;
// an unterminated regex runs to end of input.
func (l *Lexer) readRegex() token.Token {
	start := l.position
	l.readChar() // skip opening slash

	var sb strings.Builder
	for l.ch != '/' && l.ch != 0 {
		if l.ch == '\\' && l.peekChar() == '/' {
			sb.WriteByte('/')
			l.readChar()
			l.readChar()
			continue
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	if l.ch == '/' {
		l.readChar() // skip closing slash
	}
	return token.Token{Type: token.REGEX, Value: sb.String(), Start: start, End: l.position}
}

// readWord consumes contiguous non-whitespace, non-special characters.
// A leading apostrophe is handled by readQuoted and a leading dash is a
// DASH token; an apostrophe or dash inside a word (can't, 2021-06) is an
// ordinary word character.
func (l *Lexer) readWord() token.Token {
	start := l.position
	for !isSpecial(l.ch) {
		l.readChar()
	}
	value := l.input[start:l.position]
	tok := token.Token{Type: token.WORD, Value: value, Start: start, End: l.position}
	if strings.EqualFold(value, "or") {
		tok.Type = token.OR
	}
	return tok
}
