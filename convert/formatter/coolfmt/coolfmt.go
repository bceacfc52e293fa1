/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package coolfmt formats value trees as CoolData source.
package coolfmt

import (
	"fmt"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/render"
	"bennypowers.dev/cooldata/value"
)

// Formatter outputs CoolData text.
type Formatter struct {
	Indent string
}

// New creates a new CoolData formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format renders obj. With a KeyCase set, every rewritten key must still
// be a valid field name, so only camel and pascal are useful here.
func (f *Formatter) Format(obj *value.Object, opts formatter.Options) ([]byte, error) {
	if opts.KeyCase != formatter.KeyCaseKeep {
		renamed, err := rekey(obj, opts.KeyCase)
		if err != nil {
			return nil, err
		}
		obj = renamed
	}
	return []byte(render.RenderWith(obj, render.Options{Indent: f.Indent})), nil
}

func rekey(obj *value.Object, c formatter.KeyCase) (*value.Object, error) {
	out := value.NewObject()
	sources := make(map[string]string, obj.Len())
	for k, v := range obj.All() {
		name := formatter.TransformKey(k, c)
		if !value.ValidName(name) {
			return nil, fmt.Errorf("%w: %q becomes %q, which is not a valid field name", formatter.ErrInvalidKey, k, name)
		}
		if prev, ok := sources[name]; ok {
			return nil, formatter.CollisionError(prev, k, name)
		}
		sources[name] = k
		child, err := rekeyValue(v, c)
		if err != nil {
			return nil, err
		}
		out.Set(name, child)
	}
	return out, nil
}

func rekeyValue(v value.Value, c formatter.KeyCase) (value.Value, error) {
	switch x := v.(type) {
	case *value.Object:
		return rekey(x, c)
	case *value.List:
		out := value.NewList()
		for _, item := range x.Values() {
			child, err := rekeyValue(item, c)
			if err != nil {
				return nil, err
			}
			out.Append(child)
		}
		return out, nil
	default:
		return v, nil
	}
}
