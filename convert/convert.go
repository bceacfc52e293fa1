/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert translates CoolData documents to and from JSON, YAML and TOML.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/segmentio/encoding/json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/parser"
	"bennypowers.dev/cooldata/value"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrUnsupportedValue is returned for input values CoolData cannot hold,
	// such as booleans, nulls and dates.
	ErrUnsupportedValue = errors.New("unsupported value")
	// ErrOutOfRange is returned for numbers that do not fit 32 bits.
	ErrOutOfRange = errors.New("number out of range")
	// ErrInvalidKey is returned for keys that are not valid field names,
	// and for distinct keys that KeyCase maps to the same name.
	ErrInvalidKey = formatter.ErrInvalidKey
	// ErrOutputOnly is returned when decoding a format that only supports output.
	ErrOutputOnly = errors.New("format is output-only")
	// ErrTrailingData is returned when JSON input holds more than one value.
	ErrTrailingData = errors.New("unexpected data after top-level value")
)

// Options configures conversion.
type Options struct {
	// Flatten produces flat JSON with delimiter-separated keys
	// instead of nested objects.
	Flatten bool

	// Delimiter is the separator for flattened keys (default "-").
	Delimiter string

	// Prefix is added to flattened keys.
	Prefix string

	// KeyCase rewrites keys. On output it applies to every format; on
	// input it runs before key validation, so `camel` admits snake_case
	// sources.
	KeyCase formatter.KeyCase

	// Indent is the nesting indent for CoolData output.
	Indent string

	// Parse configures CoolData input.
	Parse parser.Options
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Delimiter: "-",
	}
}

// Decode parses data in the given format into a document.
func Decode(data []byte, format Format, opts Options) (*value.Object, error) {
	var raw any
	switch format {
	case FormatCool:
		return parser.ParseString(string(data), opts.Parse)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse JSON: %w", ErrTrailingData)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if raw == nil {
			return value.NewObject(), nil
		}
		raw = normalizeMap(raw)
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		raw = table
	case FormatFlatJSON:
		return nil, fmt.Errorf("%w: %s", ErrOutputOnly, format)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document root must be an object", ErrUnsupportedValue)
	}
	return objectFromNative(m, nil, opts)
}

// FromNative converts decoded Go data into a value. Maps need string keys
// that are valid field names after KeyCase is applied.
func FromNative(v any, opts Options) (value.Value, error) {
	return fromNative(v, nil, opts)
}

// normalizeMap recursively converts map[any]any to map[string]any.
// YAML with numeric keys (like "10:") creates map[any]any.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// number matches json.Number without naming a concrete JSON package.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
	String() string
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}

func fromNative(v any, path []string, opts Options) (value.Value, error) {
	where := pathString(path)

	switch x := v.(type) {
	case map[string]any:
		return objectFromNative(x, path, opts)
	case []any:
		list := value.NewList()
		for i, item := range x {
			child, err := fromNative(item, append(path[:len(path):len(path)], strconv.Itoa(i)), opts)
			if err != nil {
				return nil, err
			}
			list.Append(child)
		}
		return list, nil
	case string:
		return value.String(x), nil
	case int:
		return intValue(int64(x), where)
	case int64:
		return intValue(x, where)
	case int32:
		return value.Int(x), nil
	case uint64:
		if x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %s: %d", ErrOutOfRange, where, x)
		}
		return value.Int(x), nil
	case float64:
		return floatValue(x, where)
	case float32:
		return value.Float(x), nil
	case number:
		if n, err := x.Int64(); err == nil {
			return intValue(n, where)
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", ErrOutOfRange, where, x.String())
		}
		return floatValue(f, where)
	default:
		return nil, fmt.Errorf("%w: %s: %T", ErrUnsupportedValue, where, v)
	}
}

func objectFromNative(m map[string]any, path []string, opts Options) (*value.Object, error) {
	obj := value.NewObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	sources := make(map[string]string, len(keys))
	for _, k := range keys {
		name := formatter.TransformKey(k, opts.KeyCase)
		childPath := append(path[:len(path):len(path)], k)
		if !value.ValidName(name) {
			return nil, fmt.Errorf("%w: %s: %q is not a valid field name", ErrInvalidKey, strings.Join(childPath, "."), name)
		}
		if prev, ok := sources[name]; ok {
			return nil, fmt.Errorf("%s: %w", pathString(path), formatter.CollisionError(prev, k, name))
		}
		sources[name] = k
		child, err := fromNative(m[k], childPath, opts)
		if err != nil {
			return nil, err
		}
		obj.Set(name, child)
	}
	return obj, nil
}

func intValue(n int64, where string) (value.Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %s: %d", ErrOutOfRange, where, n)
	}
	return value.Int(n), nil
}

func floatValue(f float64, where string) (value.Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxFloat32 {
		return nil, fmt.Errorf("%w: %s: %v", ErrOutOfRange, where, f)
	}
	return value.Float(f), nil
}
