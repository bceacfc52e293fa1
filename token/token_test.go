/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"bennypowers.dev/cooldata/token"
)

func TestKind_Symbol(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		expected string
	}{
		{token.Equals, "="},
		{token.LeftBrace, "{"},
		{token.RightBrace, "}"},
		{token.LeftBracket, "["},
		{token.RightBracket, "]"},
		{token.Comma, ","},
		{token.Newline, "newline"},
		{token.Identifier, "Identifier"},
		{token.Float, "Float"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Symbol(); got != tt.expected {
				t.Errorf("Symbol() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	if got := token.RightBracket.String(); got != "RightBracket" {
		t.Errorf("String() = %q", got)
	}
	if got := token.Kind(99).String(); got != "Kind(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestKind_Classes(t *testing.T) {
	for _, k := range []token.Kind{token.Identifier, token.String, token.Int, token.Float} {
		if !k.HasText() {
			t.Errorf("%s should carry text", k)
		}
	}
	for _, k := range []token.Kind{token.Equals, token.LeftBrace, token.Comma, token.Newline} {
		if k.HasText() {
			t.Errorf("%s should not carry text", k)
		}
	}
	if token.Identifier.IsScalar() {
		t.Error("Identifier is not a scalar")
	}
	if !token.Int.IsScalar() || !token.Float.IsScalar() || !token.String.IsScalar() {
		t.Error("literals are scalars")
	}
}

func TestToken_String(t *testing.T) {
	loc := token.Location{Line: 1, Column: 1}
	tests := []struct {
		name     string
		tok      token.Token
		expected string
	}{
		{"int", token.Token{Kind: token.Int, Text: "42", Loc: loc}, "Int(42)"},
		{"float", token.Token{Kind: token.Float, Text: "2.5", Loc: loc}, "Float(2.5)"},
		{"identifier", token.Token{Kind: token.Identifier, Text: "name", Loc: loc}, "Identifier(name)"},
		{"string", token.Token{Kind: token.String, Text: "hi", Loc: loc}, `String("hi")`},
		{"punctuation", token.Token{Kind: token.Equals, Loc: loc}, "`=`"},
		{"newline", token.Token{Kind: token.Newline, Loc: loc}, "Newline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLocation_String(t *testing.T) {
	if got := (token.Location{Line: 3, Column: 14}).String(); got != "3:14" {
		t.Errorf("String() = %q, want 3:14", got)
	}
}
