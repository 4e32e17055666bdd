// Package lex is a small tokenizer built on instream cursors.
//
// It recognizes identifiers, numbers, double-quoted strings and operator
// punctuation, which covers the token set of most configuration and
// expression languages. Whitespace is skipped through the stream's own
// whitespace policy, so comment syntax is configured on the stream:
//
//	s := instream.NewRuneStream(src, instream.WithWhitespace(lex.CommentWhitespace("#", "//")))
//	toks, err := lex.New(s).All()
package lex

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/coregex"
	"github.com/coregx/instream"
	"github.com/coregx/instream/pattern"
)

// Kind is the type of a token.
type Kind uint8

const (
	EOF Kind = iota
	Ident
	Number
	String
	Punct
)

var kindNames = [...]string{
	EOF:    "EOF",
	Ident:  "Ident",
	Number: "Number",
	String: "String",
	Punct:  "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Token is one lexeme. Offset is measured in the units of the stream it was
// read from. For String tokens Text is the content between the quotes with
// escapes left as written.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// SyntaxError reports input the lexer cannot tokenize.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("lex: offset %d: %s", e.Offset, e.Msg)
}

var (
	identRe  = pattern.MustCompile(`^[\pL_][\pL\pN_]*`)
	numberRe = pattern.MustCompile(`^[0-9]+`)
	stringRe = pattern.MustCompile(`^"((?:[^"\\\n]|\\.)*)"`)
	punctRe  = pattern.MustCompile(`^(?:==|!=|<=|>=|&&|\|\||->|[-+*/%=<>!&|^~?:;,.()\[\]{}@$])`)

	// A number is read piecewise: integer part, then an optional fraction
	// and an optional exponent, each extracted only when it matches.
	fractionRe = pattern.MustCompile(`^\.[0-9]+`)
	exponentRe = pattern.MustCompile(`^[eE][-+]?[0-9]+`)
)

// CommentWhitespace returns a whitespace policy that also skips line
// comments introduced by any of prefixes.
func CommentWhitespace(prefixes ...string) pattern.Matcher {
	if len(prefixes) == 0 {
		return instream.DefaultWhitespace
	}
	quoted := make([]string, len(prefixes))
	for i, p := range prefixes {
		quoted[i] = coregex.QuoteMeta(p)
	}
	return pattern.MustCompile(`^(?:\s+|(?:` + strings.Join(quoted, "|") + `)[^\n]*)+`)
}

// Lexer splits a stream into tokens.
type Lexer struct {
	s      instream.PatternCursor
	peeked *Token
}

// New returns a lexer reading from s.
func New(s instream.PatternCursor) *Lexer {
	return &Lexer{s: s}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token. At the end of input it returns a token of
// kind EOF, and keeps doing so on further calls.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

// All returns every remaining token, excluding the final EOF.
func (l *Lexer) All() ([]Token, error) {
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok.Kind == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (l *Lexer) scan() (Token, error) {
	l.s.ExtractWs()

	offset := l.s.Offset()
	u, ok := l.s.Peek()
	if !ok {
		return Token{Kind: EOF, Offset: offset}, nil
	}
	r, _ := utf8.DecodeRuneInString(u)

	switch {
	case r == '_' || unicode.IsLetter(r):
		return l.match(Ident, identRe, 0, offset)
	case r >= '0' && r <= '9':
		return l.number(offset)
	case r == '"':
		tok, err := l.match(String, stringRe, 1, offset)
		if err != nil {
			return Token{}, &SyntaxError{Offset: offset, Msg: "unterminated string"}
		}
		return tok, nil
	default:
		return l.match(Punct, punctRe, 0, offset)
	}
}

// number reads an integer part and extends it with a fraction and an
// exponent when they follow.
func (l *Lexer) number(offset int) (Token, error) {
	tok, err := l.match(Number, numberRe, 0, offset)
	if err != nil {
		return Token{}, err
	}
	if frac, ok := l.s.ExtractRegexp(fractionRe, 0); ok {
		tok.Text += frac
	}
	if exp, ok := l.s.ExtractRegexp(exponentRe, 0); ok {
		tok.Text += exp
	}
	return tok, nil
}

// match extracts m at the current offset. The patterns are all anchored, so
// a failed match leaves the offset untouched.
func (l *Lexer) match(kind Kind, m pattern.Matcher, group, offset int) (Token, error) {
	text, ok := l.s.ExtractRegexp(m, group)
	if !ok {
		u, _ := l.s.Peek()
		return Token{}, &SyntaxError{Offset: offset, Msg: fmt.Sprintf("unexpected %q", u)}
	}
	return Token{Kind: kind, Text: text, Offset: offset}, nil
}
