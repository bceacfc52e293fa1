/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lexer scans CoolData source text into a flat sequence of located tokens.
package lexer

import (
	"errors"
	"fmt"
	"unicode"

	"bennypowers.dev/cooldata/token"
	"bennypowers.dev/cooldata/value"
)

// ErrLex is the sentinel wrapped by every *LexError.
var ErrLex = errors.New("lex error")

// LexError reports invalid input found while scanning.
type LexError struct {
	// Msg describes the problem.
	Msg string
	// Loc is the location of the offending character.
	Loc token.Location
	// Start is where the token containing the offending character began.
	// It equals Loc for errors that are not inside a literal.
	Start token.Location
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
}

// Unwrap returns ErrLex so callers can use errors.Is.
func (e *LexError) Unwrap() error {
	return ErrLex
}

var punctuation = map[rune]token.Kind{
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	',': token.Comma,
	'=': token.Equals,
}

// Lexer holds the cursor state for a single scan.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	col    int
	tokens []token.Token
}

// New creates a lexer over text.
func New(text string) *Lexer {
	return &Lexer{
		src:  []rune(text),
		line: 1,
		col:  1,
	}
}

// Tokenize scans text and returns its tokens.
func Tokenize(text string) ([]token.Token, error) {
	return New(text).Tokenize()
}

// Tokenize scans the whole input. It returns the first error encountered;
// no tokens are returned on failure.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case r == '\n':
			l.emit(token.Newline, "", l.loc())
			l.advance()
		case unicode.IsSpace(r):
			l.advance()
		case isDigit(r):
			if err := l.scanNumber(); err != nil {
				return nil, err
			}
		case value.IsAlpha(r):
			l.scanIdentifier()
		case r == '"':
			if err := l.scanString(); err != nil {
				return nil, err
			}
		default:
			kind, ok := punctuation[r]
			if !ok {
				at := l.loc()
				return nil, &LexError{Msg: fmt.Sprintf("unexpected character %q", r), Loc: at, Start: at}
			}
			l.emit(kind, "", l.loc())
			l.advance()
		}
	}
	return l.tokens, nil
}

func (l *Lexer) loc() token.Location {
	return token.Location{Line: l.line, Column: l.col}
}

func (l *Lexer) emit(kind token.Kind, text string, at token.Location) {
	l.tokens = append(l.tokens, token.Token{Kind: kind, Text: text, Loc: at})
}

// advance consumes one character and keeps line/column in step with it.
func (l *Lexer) advance() {
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
		return
	}
	l.col++
}

func (l *Lexer) scanNumber() error {
	start := l.loc()
	begin := l.pos
	seenDot := false

	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '.') {
		if l.src[l.pos] == '.' {
			if seenDot {
				return &LexError{Msg: "double period `.` in numeric literal", Loc: l.loc(), Start: start}
			}
			seenDot = true
		}
		l.advance()
	}

	kind := token.Int
	if seenDot {
		kind = token.Float
	}
	l.emit(kind, string(l.src[begin:l.pos]), start)
	return nil
}

// scanIdentifier accepts alphabetic characters only: digits, underscores
// and hyphens end the identifier.
func (l *Lexer) scanIdentifier() {
	start := l.loc()
	begin := l.pos
	l.advance()
	for l.pos < len(l.src) && value.IsAlpha(l.src[l.pos]) {
		l.advance()
	}
	l.emit(token.Identifier, string(l.src[begin:l.pos]), start)
}

func (l *Lexer) scanString() error {
	start := l.loc()
	l.advance()
	begin := l.pos

	for {
		if l.pos >= len(l.src) {
			return &LexError{Msg: "unterminated string literal", Loc: l.loc(), Start: start}
		}
		r := l.src[l.pos]
		if r == '"' {
			break
		}
		if r == '\n' {
			return &LexError{Msg: "un-allowed newline in string literal", Loc: l.loc(), Start: start}
		}
		l.advance()
	}

	text := string(l.src[begin:l.pos])
	l.advance()
	l.emit(token.String, text, start)
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
