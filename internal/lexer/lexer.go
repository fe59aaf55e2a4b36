// Package lexer turns source text into a token stream (spec's C3): a
// character-level scan groups the input into words, numbers, strings, and
// punctuation; a second pass consults the lexicon to classify each word as
// a keyword, a content-class token (NOUN/VERB/ADJECTIVE/...), or a plain
// identifier, folding multi-word expressions and verb inflection along the
// way.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/logos-lang/logos/internal/diagnostics"
	"github.com/logos-lang/logos/internal/token"
)

// rawKind distinguishes the coarse shapes produced by the character scan,
// before lexicon classification decides a word's token.Kind.
type rawKind int

const (
	rawWord rawKind = iota
	rawNumber
	rawString
	rawPunct
	rawNewline
	rawBlockHeader
)

type rawToken struct {
	kind rawKind
	text string
	span token.Span
	num  float64
}

// Lexer scans source text one rune at a time, in the style of a
// hand-written recursive-descent lexer: position/readPosition track byte
// offsets, ch holds the rune under the cursor.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
	atLineStart  bool
}

func newLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0, atLineStart: true}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) skipInlineWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func isWordRune(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '\'' || ch == '_'
}

func isDigitRune(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize scans the full source into a classified token stream, plus any
// diagnostics raised along the way (an unterminated string, an illegal
// character). Scanning never aborts early: every recoverable error is
// recorded in the bag so later stages can report more than one problem per
// run.
func Tokenize(source string) ([]token.Token, *diagnostics.Bag) {
	bag := &diagnostics.Bag{}
	raws := scan(source, bag)
	toks := classify(raws, bag)
	return toks, bag
}

func scan(source string, bag *diagnostics.Bag) []rawToken {
	l := newLexer(source)
	var out []rawToken
	for {
		if l.atLineStart && l.ch == '#' && l.peekChar() == '#' {
			out = append(out, l.readBlockHeader())
			l.atLineStart = false
			continue
		}
		l.skipInlineWhitespace()
		if l.ch == 0 {
			break
		}
		start := l.position
		switch {
		case l.ch == '\n':
			l.readChar()
			out = append(out, rawToken{kind: rawNewline, text: "\n", span: token.Span{Start: start, End: l.position}})
			l.atLineStart = true
			continue
		case l.ch == '"':
			out = append(out, l.readString(bag))
		case isDigitRune(l.ch):
			out = append(out, l.readNumber())
		case isWordRune(l.ch):
			out = append(out, l.readWord())
		case strings.ContainsRune(".,:()[]-+*/<>", l.ch):
			out = append(out, l.readPunct())
		default:
			bag.Add(diagnostics.Diagnostic{
				Kind:    diagnostics.LexUnknownChar,
				Span:    token.Span{Start: start, End: l.position + 1},
				Message: "unrecognized character " + strconv.QuoteRune(l.ch),
			})
			l.readChar()
			continue
		}
		l.atLineStart = false
	}
	out = append(out, rawToken{kind: rawPunct, text: "", span: token.Span{Start: len(source), End: len(source)}})
	return out
}

func (l *Lexer) readBlockHeader() rawToken {
	start := l.position
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	text := strings.TrimSpace(l.input[start:l.position])
	return rawToken{kind: rawBlockHeader, text: text, span: token.Span{Start: start, End: l.position}}
}

func (l *Lexer) readWord() rawToken {
	start := l.position
	for isWordRune(l.ch) || (isDigitRune(l.ch) && l.position > start) {
		l.readChar()
	}
	return rawToken{kind: rawWord, text: l.input[start:l.position], span: token.Span{Start: start, End: l.position}}
}

func (l *Lexer) readNumber() rawToken {
	start := l.position
	for isDigitRune(l.ch) {
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigitRune(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigitRune(l.ch) {
			l.readChar()
		}
	}
	text := l.input[start:l.position]
	val, _ := strconv.ParseFloat(text, 64)
	_ = isFloat
	return rawToken{kind: rawNumber, text: text, span: token.Span{Start: start, End: l.position}, num: val}
}

func (l *Lexer) readString(bag *diagnostics.Bag) rawToken {
	start := l.position
	l.readChar() // opening quote
	contentStart := l.position
	for l.ch != '"' && l.ch != 0 {
		l.readChar()
	}
	content := l.input[contentStart:l.position]
	if l.ch == 0 {
		bag.Add(diagnostics.Diagnostic{
			Kind:    diagnostics.LexUnterminatedString,
			Span:    token.Span{Start: start, End: l.position},
			Message: "unterminated string literal",
			Tip:     "add a closing \" to the string.",
		})
	} else {
		l.readChar() // closing quote
	}
	return rawToken{kind: rawString, text: content, span: token.Span{Start: start, End: l.position}}
}

var punctKinds = map[rune]token.Kind{
	'.': token.PERIOD, ',': token.COMMA, ':': token.COLON,
	'(': token.LPAREN, ')': token.RPAREN,
	'[': token.LBRACKET, ']': token.RBRACKET,
	'+': token.PLUS, '-': token.MINUS, '*': token.STAR, '/': token.SLASH,
	'<': token.LT, '>': token.GT,
}

func (l *Lexer) readPunct() rawToken {
	start := l.position
	if l.ch == '-' && l.peekChar() == '>' {
		l.readChar()
		l.readChar()
		return rawToken{kind: rawPunct, text: "->", span: token.Span{Start: start, End: l.position}}
	}
	if l.ch == ':' && l.peekChar() == '-' {
		l.readChar()
		l.readChar()
		return rawToken{kind: rawPunct, text: ":-", span: token.Span{Start: start, End: l.position}}
	}
	ch := l.ch
	l.readChar()
	return rawToken{kind: rawPunct, text: string(ch), span: token.Span{Start: start, End: l.position}}
}
