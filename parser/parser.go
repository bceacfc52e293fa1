/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser builds a value tree from CoolData tokens by recursive descent.
package parser

import (
	"fmt"

	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/lexer"
	"bennypowers.dev/cooldata/token"
	"bennypowers.dev/cooldata/value"
)

// Options configures parsing.
type Options struct {
	// MaxDepth limits how deeply objects and lists may nest.
	// Zero means unlimited.
	MaxDepth int
}

// Parser holds the cursor over one token stream.
type Parser struct {
	tokens []token.Token
	pos    int
	depth  int
	opts   Options
}

// New creates a parser over tokens.
func New(tokens []token.Token, opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// Parse builds the top-level object from tokens.
func Parse(tokens []token.Token, opts Options) (*value.Object, error) {
	return New(tokens, opts).Parse()
}

// ParseString tokenizes and parses text.
func ParseString(text string, opts Options) (*value.Object, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts)
}

// ParseFile reads path from filesystem and parses its contents.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (*value.Object, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseString(string(data), opts)
}

// Parse consumes the whole token stream as a document.
// The top level is a sequence of fields without enclosing braces.
func (p *Parser) Parse() (*value.Object, error) {
	obj := value.NewObject()
	for {
		tok, ok := p.peek()
		if !ok {
			return obj, nil
		}
		switch tok.Kind {
		case token.Newline:
			p.pos++
		case token.Identifier:
			if err := p.parseField(obj); err != nil {
				return nil, err
			}
		default:
			return nil, p.expected("identifier", tok)
		}
	}
}

func (p *Parser) peek() (token.Token, bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// next consumes one token, failing with UnexpectedEOF when none remain.
func (p *Parser) next(expected string) (token.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return token.Token{}, p.eof(expected)
	}
	p.pos++
	return tok, nil
}

func (p *Parser) expected(expected string, got token.Token) error {
	return &ParseError{Kind: ExpectedToken, Expected: expected, Got: &got, Loc: got.Loc}
}

func (p *Parser) eof(expected string) error {
	var loc token.Location
	if n := len(p.tokens); n > 0 {
		loc = p.tokens[n-1].Loc
	} else {
		loc = token.Location{Line: 1, Column: 1}
	}
	return &ParseError{Kind: UnexpectedEOF, Expected: expected, Loc: loc}
}

// parseField reads `name = value` and stores it in obj. A repeated name
// replaces the earlier value.
func (p *Parser) parseField(obj *value.Object) error {
	name, err := p.next("identifier")
	if err != nil {
		return err
	}
	eq, err := p.next("=")
	if err != nil {
		return err
	}
	if eq.Kind != token.Equals {
		return p.expected("=", eq)
	}
	v, err := p.parseValue("value")
	if err != nil {
		return err
	}
	obj.Set(name.Text, v)
	return nil
}

// parseValue reads a scalar, an object body or a list body. expected names
// the token reported when the next token cannot start a value.
func (p *Parser) parseValue(expected string) (value.Value, error) {
	tok, err := p.next(expected)
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.LeftBrace:
		return p.parseObject(tok)
	case token.LeftBracket:
		return p.parseList(tok)
	case token.Int, token.Float, token.String:
		return scalar(tok)
	default:
		return nil, p.expected(expected, tok)
	}
}

func scalar(tok token.Token) (value.Value, error) {
	switch tok.Kind {
	case token.Int:
		n, err := value.ParseInt(tok.Text)
		if err != nil {
			return nil, &LiteralError{Loc: tok.Loc, Err: err}
		}
		return n, nil
	case token.Float:
		f, err := value.ParseFloat(tok.Text)
		if err != nil {
			return nil, &LiteralError{Loc: tok.Loc, Err: err}
		}
		return f, nil
	default:
		return value.String(tok.Text), nil
	}
}

func (p *Parser) enter(open token.Token) error {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		return &ParseError{
			Kind:     TooDeep,
			Expected: fmt.Sprintf("nesting exceeds maximum depth %d", p.opts.MaxDepth),
			Got:      &open,
			Loc:      open.Loc,
		}
	}
	return nil
}

// parseObject reads fields until the closing brace. The opening brace has
// already been consumed.
func (p *Parser) parseObject(open token.Token) (*value.Object, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	obj := value.NewObject()
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.eof("}")
		}
		switch tok.Kind {
		case token.RightBrace:
			p.pos++
			return obj, nil
		case token.Newline:
			p.pos++
		case token.Identifier:
			if err := p.parseField(obj); err != nil {
				return nil, err
			}
		default:
			return nil, p.expected("}", tok)
		}
	}
}

// parseList reads elements until the closing bracket. Commas and newlines
// between elements are optional and carry no meaning.
func (p *Parser) parseList(open token.Token) (*value.List, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	list := value.NewList()
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, p.eof("]")
		}
		switch tok.Kind {
		case token.RightBracket:
			p.pos++
			return list, nil
		case token.Comma, token.Newline:
			p.pos++
		case token.LeftBrace, token.LeftBracket, token.Int, token.Float, token.String:
			v, err := p.parseValue("]")
			if err != nil {
				return nil, err
			}
			list.Append(v)
		default:
			return nil, p.expected("]", tok)
		}
	}
}
