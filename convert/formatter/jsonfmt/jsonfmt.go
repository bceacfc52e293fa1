/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsonfmt provides nested JSON formatting for value trees.
package jsonfmt

import (
	"github.com/segmentio/encoding/json"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/value"
)

// Formatter outputs nested JSON mirroring the document structure.
type Formatter struct{}

// New creates a new JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts obj to indented JSON.
func (f *Formatter) Format(obj *value.Object, opts formatter.Options) ([]byte, error) {
	native, err := formatter.ToNative(obj, opts)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(native, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
