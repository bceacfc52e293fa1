/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the lexical tokens of a CoolData document.
package token

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	// Identifier is a bare field name, e.g. `name`.
	Identifier Kind = iota
	// Equals is the `=` separating a field name from its value.
	Equals
	// String is a double-quoted text literal. Text excludes the quotes.
	String
	// Int is a numeric literal without a decimal point.
	Int
	// Float is a numeric literal with exactly one decimal point.
	Float
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	Comma        // ,
	// Newline terminates fields and list elements.
	Newline
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Equals:
		return "Equals"
	case String:
		return "String"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case LeftBrace:
		return "LeftBrace"
	case RightBrace:
		return "RightBrace"
	case LeftBracket:
		return "LeftBracket"
	case RightBracket:
		return "RightBracket"
	case Comma:
		return "Comma"
	case Newline:
		return "Newline"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Symbol returns the source spelling of punctuation kinds, or the kind name
// for kinds that carry text.
func (k Kind) Symbol() string {
	switch k {
	case Equals:
		return "="
	case LeftBrace:
		return "{"
	case RightBrace:
		return "}"
	case LeftBracket:
		return "["
	case RightBracket:
		return "]"
	case Comma:
		return ","
	case Newline:
		return "newline"
	default:
		return k.String()
	}
}

// HasText reports whether tokens of this kind carry literal text.
func (k Kind) HasText() bool {
	return k == Identifier || k == String || k == Int || k == Float
}

// IsScalar reports whether the kind is a scalar literal.
func (k Kind) IsScalar() bool {
	return k == String || k == Int || k == Float
}

// Location is a 1-based line and column in the source text.
// Columns count characters, not bytes.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String formats the location as line:column.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Token is a classified, located lexical unit.
type Token struct {
	Kind Kind     `json:"kind"`
	Text string   `json:"text,omitempty"`
	Loc  Location `json:"loc"`
}

// String returns a debug representation, e.g. Int(42) or `{`.
func (t Token) String() string {
	switch {
	case t.Kind == String:
		return fmt.Sprintf("String(%q)", t.Text)
	case t.Kind.HasText():
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case t.Kind == Newline:
		return "Newline"
	default:
		return "`" + t.Kind.Symbol() + "`"
	}
}
