/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"errors"
	"fmt"

	"bennypowers.dev/cooldata/token"
)

// Sentinel errors for use with errors.Is.
var (
	ErrExpectedToken = errors.New("expected token")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrTooDeep       = errors.New("nesting too deep")
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// ExpectedToken means a token other than the expected one was found.
	ExpectedToken ErrorKind = iota
	// UnexpectedEOF means the token stream ended while a token was expected.
	UnexpectedEOF
	// TooDeep means the nesting limit in Options.MaxDepth was exceeded.
	TooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case TooDeep:
		return "TooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ParseError reports a grammar violation in the token stream.
type ParseError struct {
	Kind ErrorKind
	// Expected describes what the parser wanted, e.g. "=", "value" or "]".
	Expected string
	// Got is the offending token. It is nil for UnexpectedEOF.
	Got *token.Token
	// Loc is the offending token's location. For UnexpectedEOF it is the
	// location of the last token in the stream.
	Loc token.Location
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedEOF:
		return fmt.Sprintf("%s: unexpected end of input, expected %s", e.Loc, quote(e.Expected))
	case TooDeep:
		return fmt.Sprintf("%s: %s", e.Loc, e.Expected)
	default:
		return fmt.Sprintf("%s: expected %s, got %s", e.Loc, quote(e.Expected), e.Got)
	}
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case TooDeep:
		return ErrTooDeep
	default:
		return ErrExpectedToken
	}
}

// quote wraps punctuation in backticks and leaves descriptive words alone.
func quote(expected string) string {
	switch expected {
	case "value", "identifier":
		return expected
	default:
		return "`" + expected + "`"
	}
}

// LiteralError reports a number token whose text cannot be represented.
// Err is the *value.ValueError describing the literal.
type LiteralError struct {
	Loc token.Location
	Err error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("%s: %v", e.Loc, e.Err)
}

func (e *LiteralError) Unwrap() error {
	return e.Err
}
