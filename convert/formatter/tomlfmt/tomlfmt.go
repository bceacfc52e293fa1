/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tomlfmt provides TOML formatting for value trees.
package tomlfmt

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/value"
)

// Formatter outputs TOML. The document maps to the root table; nested
// objects become sub-tables.
type Formatter struct{}

// New creates a new TOML formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts obj to TOML.
func (f *Formatter) Format(obj *value.Object, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	native, err := formatter.ToNative(obj, opts)
	if err != nil {
		return nil, err
	}
	if err := enc.Encode(native); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
