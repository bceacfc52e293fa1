/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render serializes a value tree back to CoolData text.
//
// Output re-parses to an equal tree as long as strings contain no `"` or
// newline and numbers are non-negative. The text format has no escapes
// and no sign, so those values cannot be written faithfully.
package render

import (
	"io"
	"strconv"
	"strings"

	"bennypowers.dev/cooldata/value"
)

// DefaultIndent is used when Options.Indent is empty.
const DefaultIndent = "  "

// Options configures rendering.
type Options struct {
	// Indent is repeated once per nesting level.
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return DefaultIndent
	}
	return o.Indent
}

// Render returns obj as a top-level document with default options.
func Render(obj *value.Object) string {
	return RenderWith(obj, Options{})
}

// RenderWith returns obj as a top-level document.
func RenderWith(obj *value.Object, opts Options) string {
	r := renderer{indent: opts.indent()}
	r.fields(obj, 0)
	return r.sb.String()
}

// RenderValue returns the source text for a single value, as it would
// appear on the right of `=` at the top level.
func RenderValue(v value.Value) string {
	r := renderer{indent: DefaultIndent}
	r.value(v, 0)
	return r.sb.String()
}

// Write renders obj to w.
func Write(w io.Writer, obj *value.Object, opts Options) error {
	_, err := io.WriteString(w, RenderWith(obj, opts))
	return err
}

// FormatFloat returns the shortest decimal text for f that re-lexes as a
// Float literal.
func FormatFloat(f value.Float) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

type renderer struct {
	sb     strings.Builder
	indent string
}

func (r *renderer) pad(depth int) {
	for range depth {
		r.sb.WriteString(r.indent)
	}
}

// fields writes one `name = value` line per field in key order.
func (r *renderer) fields(obj *value.Object, depth int) {
	for name, v := range obj.All() {
		r.pad(depth)
		r.sb.WriteString(name)
		r.sb.WriteString(" = ")
		r.value(v, depth)
		r.sb.WriteByte('\n')
	}
}

func (r *renderer) value(v value.Value, depth int) {
	switch x := v.(type) {
	case value.Int:
		r.sb.WriteString(strconv.FormatInt(int64(x), 10))
	case value.Float:
		r.sb.WriteString(FormatFloat(x))
	case value.String:
		r.sb.WriteByte('"')
		r.sb.WriteString(string(x))
		r.sb.WriteByte('"')
	case *value.Object:
		if x.Len() == 0 {
			r.sb.WriteString("{}")
			return
		}
		r.sb.WriteString("{\n")
		r.fields(x, depth+1)
		r.pad(depth)
		r.sb.WriteByte('}')
	case *value.List:
		r.sb.WriteByte('[')
		for i, item := range x.Values() {
			if i > 0 {
				r.sb.WriteString(", ")
			}
			r.value(item, depth)
		}
		r.sb.WriteByte(']')
	}
}
