/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package coolfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/convert/formatter/coolfmt"
	"bennypowers.dev/cooldata/value"
)

func TestFormat_KeyCase(t *testing.T) {
	inner := value.NewObject()
	inner.Set("MaxConns", value.Int(10))
	obj := value.NewObject()
	obj.Set("Server", inner)

	got, err := coolfmt.New().Format(obj, formatter.Options{KeyCase: formatter.KeyCaseCamel})
	require.NoError(t, err)
	assert.Equal(t, "server = {\n  maxConns = 10\n}\n", string(got))
}

func TestFormat_KeyCaseErrors(t *testing.T) {
	collide := value.NewObject()
	collide.Set("fooBar", value.Int(1))
	collide.Set("FooBar", value.Int(2))

	snake := value.NewObject()
	snake.Set("fooBar", value.Int(1))

	tests := []struct {
		name    string
		obj     *value.Object
		keyCase formatter.KeyCase
	}{
		{"collision", collide, formatter.KeyCaseCamel},
		{"invalid name", snake, formatter.KeyCaseSnake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := coolfmt.New().Format(tt.obj, formatter.Options{KeyCase: tt.keyCase})
			assert.ErrorIs(t, err, formatter.ErrInvalidKey)
		})
	}
}
