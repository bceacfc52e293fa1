/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for value tree formatters.
package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"bennypowers.dev/cooldata/value"
)

// ErrInvalidKey is returned when a key cannot be written, including when two
// distinct keys rewrite to the same name.
var ErrInvalidKey = errors.New("invalid key")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts a document to the target format.
	Format(obj *value.Object, opts Options) ([]byte, error)
}

// KeyCase selects how object keys are rewritten on output.
type KeyCase string

const (
	// KeyCaseKeep leaves keys untouched.
	KeyCaseKeep KeyCase = ""
	// KeyCaseCamel produces lowerCamelCase keys.
	KeyCaseCamel KeyCase = "camel"
	// KeyCasePascal produces UpperCamelCase keys.
	KeyCasePascal KeyCase = "pascal"
	// KeyCaseSnake produces snake_case keys.
	KeyCaseSnake KeyCase = "snake"
	// KeyCaseKebab produces kebab-case keys.
	KeyCaseKebab KeyCase = "kebab"
	// KeyCaseScreamingSnake produces SCREAMING_SNAKE_CASE keys.
	KeyCaseScreamingSnake KeyCase = "screaming-snake"
)

// ValidKeyCases returns all valid key case strings.
func ValidKeyCases() []string {
	return []string{
		string(KeyCaseCamel),
		string(KeyCasePascal),
		string(KeyCaseSnake),
		string(KeyCaseKebab),
		string(KeyCaseScreamingSnake),
	}
}

// ParseKeyCase converts a string to a KeyCase.
func ParseKeyCase(s string) (KeyCase, error) {
	switch strings.ToLower(s) {
	case "", "keep", "none":
		return KeyCaseKeep, nil
	case "camel", "lower-camel":
		return KeyCaseCamel, nil
	case "pascal", "upper-camel":
		return KeyCasePascal, nil
	case "snake":
		return KeyCaseSnake, nil
	case "kebab":
		return KeyCaseKebab, nil
	case "screaming-snake", "constant":
		return KeyCaseScreamingSnake, nil
	default:
		return "", fmt.Errorf("unknown key case: %s (valid: %s)", s, strings.Join(ValidKeyCases(), ", "))
	}
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is added to top-level keys of flattened output.
	Prefix string

	// Delimiter is the separator for flattened keys.
	// Zero value is empty string; consuming code should set "-" if needed.
	Delimiter string

	// KeyCase rewrites every object key.
	KeyCase KeyCase
}

// TransformKey rewrites key according to c.
func TransformKey(key string, c KeyCase) string {
	switch c {
	case KeyCaseCamel:
		return strcase.ToLowerCamel(key)
	case KeyCasePascal:
		return strcase.ToCamel(key)
	case KeyCaseSnake:
		return strcase.ToSnake(key)
	case KeyCaseKebab:
		return strcase.ToKebab(key)
	case KeyCaseScreamingSnake:
		return strcase.ToScreamingSnake(key)
	default:
		return key
	}
}

// ApplyPrefix adds a prefix to a name with the given delimiter.
func ApplyPrefix(name, prefix, delimiter string) string {
	if prefix == "" {
		return name
	}
	return prefix + delimiter + name
}

// ToNative converts v to plain Go values for encoding libraries:
// map[string]any, []any, int32, float32 and string. Keeping the 32-bit
// number types lets encoders print floats at their own precision.
func ToNative(v value.Value, opts Options) (any, error) {
	switch x := v.(type) {
	case value.Int:
		return int32(x), nil
	case value.Float:
		return float32(x), nil
	case value.String:
		return string(x), nil
	case *value.Object:
		m := make(map[string]any, x.Len())
		sources := make(map[string]string, x.Len())
		for k, child := range x.All() {
			name := TransformKey(k, opts.KeyCase)
			if prev, ok := sources[name]; ok {
				return nil, CollisionError(prev, k, name)
			}
			sources[name] = k
			native, err := ToNative(child, opts)
			if err != nil {
				return nil, err
			}
			m[name] = native
		}
		return m, nil
	case *value.List:
		items := make([]any, 0, x.Len())
		for _, child := range x.Values() {
			native, err := ToNative(child, opts)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil
	default:
		return nil, nil
	}
}

// CollisionError reports two distinct source keys that map to the same
// name. The keys are named in sorted order so the message is stable.
func CollisionError(a, b, name string) error {
	if b < a {
		a, b = b, a
	}
	return fmt.Errorf("%w: %q and %q both become %q", ErrInvalidKey, a, b, name)
}

// Flatten returns scalar leaves keyed by their delimiter-joined path.
// List elements contribute their index as a path segment. Empty containers
// are kept as leaves so no key disappears. Two leaves landing on the same
// key is an error.
func Flatten(obj *value.Object, opts Options) (map[string]any, error) {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = "-"
	}
	result := make(map[string]any)
	sources := make(map[string]string)
	put := func(path, source []string, v any) error {
		key := ApplyPrefix(strings.Join(path, delimiter), opts.Prefix, delimiter)
		src := strings.Join(source, ".")
		if prev, ok := sources[key]; ok {
			return CollisionError(prev, src, key)
		}
		sources[key] = src
		result[key] = v
		return nil
	}

	var walk func(path, source []string, v value.Value) error
	walk = func(path, source []string, v value.Value) error {
		switch x := v.(type) {
		case *value.Object:
			if x.Len() == 0 && len(path) > 0 {
				return put(path, source, map[string]any{})
			}
			for k, child := range x.All() {
				err := walk(
					append(path[:len(path):len(path)], TransformKey(k, opts.KeyCase)),
					append(source[:len(source):len(source)], k),
					child,
				)
				if err != nil {
					return err
				}
			}
		case *value.List:
			if x.Len() == 0 {
				return put(path, source, []any{})
			}
			for i, child := range x.Values() {
				seg := strconv.Itoa(i)
				err := walk(
					append(path[:len(path):len(path)], seg),
					append(source[:len(source):len(source)], seg),
					child,
				)
				if err != nil {
					return err
				}
			}
		default:
			native, err := ToNative(v, opts)
			if err != nil {
				return err
			}
			return put(path, source, native)
		}
		return nil
	}
	if err := walk(nil, nil, obj); err != nil {
		return nil, err
	}
	return result, nil
}
