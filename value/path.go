/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup resolves a dot-separated path against root. Object segments are
// field names; list segments are zero-based indexes, e.g. "servers.0.port".
// An empty path returns root.
func Lookup(root *Object, path string) (Value, error) {
	var current Value = root
	if path == "" {
		return current, nil
	}

	segments := strings.Split(path, ".")
	for i, seg := range segments {
		prefix := strings.Join(segments[:i+1], ".")
		switch c := current.(type) {
		case *Object:
			v, err := c.Get(seg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", prefix, err)
			}
			current = v
		case *List:
			index, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %q is not a list index", ErrInvalidPath, prefix, seg)
			}
			v, err := c.At(index)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", prefix, err)
			}
			current = v
		default:
			parent := strings.Join(segments[:i], ".")
			return nil, fmt.Errorf("%w: %s is %s and has no member %q", ErrInvalidPath, parent, current.Kind(), seg)
		}
	}
	return current, nil
}
