/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator lints CoolData token streams for constructs that parse
// but are probably mistakes.
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/cooldata/token"
)

// ValidationError represents a lint finding.
type ValidationError struct {
	// FilePath is the path to the file containing the finding.
	FilePath string
	// Loc is where the offending token starts.
	Loc token.Location
	// Path is the dotted path to the affected value, e.g. "server.ports.0".
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(":")
	}
	sb.WriteString(e.Loc.String())
	sb.WriteString(": ")
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// frame tracks one open object or list while walking the stream.
type frame struct {
	list bool
	// seg is this container's own path segment within its parent.
	seg  string
	seen map[string]token.Location
	// key is the most recent field name in an object frame.
	key string
	// index counts elements started so far in a list frame.
	index int
}

// element returns the path segment for the next value in this frame.
func (f *frame) element() string {
	if f.list {
		seg := strconv.Itoa(f.index)
		f.index++
		return seg
	}
	return f.key
}

// Lint reports:
//   - keys defined more than once in the same object (the last one wins silently)
//   - float literals ending in a decimal point, e.g. `2.`
//   - integer literals with leading zeros, e.g. `007`
//
// The stream is expected to parse; on malformed input findings are best effort.
func Lint(tokens []token.Token) []ValidationError {
	return LintWithPath(tokens, "")
}

// LintWithPath lints tokens and includes filePath in findings.
func LintWithPath(tokens []token.Token, filePath string) []ValidationError {
	var errors []ValidationError
	stack := []*frame{{seen: map[string]token.Location{}}}

	pathTo := func(last string) string {
		segs := make([]string, 0, len(stack))
		for _, f := range stack[1:] {
			segs = append(segs, f.seg)
		}
		return strings.Join(append(segs, last), ".")
	}

	for _, tok := range tokens {
		top := stack[len(stack)-1]

		switch tok.Kind {
		case token.Identifier:
			if top.list {
				continue
			}
			if first, dup := top.seen[tok.Text]; dup {
				errors = append(errors, ValidationError{
					FilePath:   filePath,
					Loc:        tok.Loc,
					Path:       pathTo(tok.Text),
					Message:    fmt.Sprintf("duplicate key %q, first defined at %s", tok.Text, first),
					Suggestion: "the last value wins; remove the earlier definition",
				})
			}
			top.seen[tok.Text] = tok.Loc
			top.key = tok.Text

		case token.LeftBrace, token.LeftBracket:
			stack = append(stack, &frame{
				list: tok.Kind == token.LeftBracket,
				seg:  top.element(),
				seen: map[string]token.Location{},
			})

		case token.RightBrace, token.RightBracket:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		case token.Float:
			path := pathTo(top.element())
			if strings.HasSuffix(tok.Text, ".") {
				errors = append(errors, ValidationError{
					FilePath:   filePath,
					Loc:        tok.Loc,
					Path:       path,
					Message:    fmt.Sprintf("float literal %q has no digits after the decimal point", tok.Text),
					Suggestion: fmt.Sprintf("write %s0", tok.Text),
				})
			}

		case token.Int:
			path := pathTo(top.element())
			if len(tok.Text) > 1 && tok.Text[0] == '0' {
				trimmed := strings.TrimLeft(tok.Text, "0")
				if trimmed == "" {
					trimmed = "0"
				}
				errors = append(errors, ValidationError{
					FilePath:   filePath,
					Loc:        tok.Loc,
					Path:       path,
					Message:    fmt.Sprintf("integer literal %q has leading zeros", tok.Text),
					Suggestion: "write " + trimmed,
				})
			}

		case token.String:
			top.element()
		}
	}

	return errors
}
