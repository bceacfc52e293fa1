/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cooldata/value"
)

func TestLookup(t *testing.T) {
	root := sample()

	tests := []struct {
		path string
		want value.Value
	}{
		{"name", value.Int(42)},
		{"nested.inner", value.String("value")},
		{"items.2", value.String("three")},
		{"items.3.a", value.Int(1)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := value.Lookup(root, tt.path)
			require.NoError(t, err)
			assert.True(t, value.Equal(got, tt.want), "Lookup(%q) = %v, want %v", tt.path, got, tt.want)
		})
	}
}

func TestLookup_EmptyPathReturnsRoot(t *testing.T) {
	root := sample()
	got, err := value.Lookup(root, "")
	require.NoError(t, err)
	assert.Same(t, root, got)
}

func TestLookup_Errors(t *testing.T) {
	root := sample()

	tests := []struct {
		path    string
		wantErr error
	}{
		{"missing", value.ErrUnknownField},
		{"nested.missing", value.ErrUnknownField},
		{"items.9", value.ErrOutOfBounds},
		{"items.x", value.ErrInvalidPath},
		{"name.x", value.ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := value.Lookup(root, tt.path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
