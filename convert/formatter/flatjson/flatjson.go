/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson provides flat key-value JSON formatting for value trees.
package flatjson

import (
	"github.com/segmentio/encoding/json"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/value"
)

// Formatter outputs flat key-value JSON.
type Formatter struct{}

// New creates a new flat JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts obj to flat key-value JSON.
func (f *Formatter) Format(obj *value.Object, opts formatter.Options) ([]byte, error) {
	native, err := formatter.Flatten(obj, opts)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(native, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
