/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yamlfmt provides YAML formatting for value trees.
package yamlfmt

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/value"
)

// Formatter outputs YAML.
type Formatter struct{}

// New creates a new YAML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts obj to YAML with two-space indentation.
func (f *Formatter) Format(obj *value.Object, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	native, err := formatter.ToNative(obj, opts)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(native); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
