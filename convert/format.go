/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/convert/formatter/coolfmt"
	"bennypowers.dev/cooldata/convert/formatter/flatjson"
	"bennypowers.dev/cooldata/convert/formatter/jsonfmt"
	"bennypowers.dev/cooldata/convert/formatter/tomlfmt"
	"bennypowers.dev/cooldata/convert/formatter/yamlfmt"
	"bennypowers.dev/cooldata/value"
)

// Format names a document serialization.
type Format string

const (
	// FormatCool is CoolData source text (default).
	FormatCool Format = "cool"

	// FormatJSON is nested JSON mirroring the document.
	FormatJSON Format = "json"

	// FormatFlatJSON is flat key-value JSON with delimiter-joined paths.
	FormatFlatJSON Format = "flat-json"

	// FormatYAML is a YAML mapping.
	FormatYAML Format = "yaml"

	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatCool),
		string(FormatJSON),
		string(FormatFlatJSON),
		string(FormatYAML),
		string(FormatTOML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "cool", "cooldata", "":
		return FormatCool, nil
	case "json":
		return FormatJSON, nil
	case "flat", "flat-json":
		return FormatFlatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatFromExtension infers a format from a file name. A trailing .zst is
// ignored. Unknown extensions are treated as CoolData.
func FormatFromExtension(path string) Format {
	path = strings.TrimSuffix(path, ".zst")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatCool
	}
}

// Encode serializes obj in the given format.
func Encode(obj *value.Object, format Format, opts Options) ([]byte, error) {
	fmtOpts := formatter.Options{
		Prefix:    opts.Prefix,
		Delimiter: opts.Delimiter,
		KeyCase:   opts.KeyCase,
	}

	if opts.Flatten && format == FormatJSON {
		format = FormatFlatJSON
	}

	var f formatter.Formatter
	switch format {
	case FormatCool:
		f = &coolfmt.Formatter{Indent: opts.Indent}
	case FormatJSON:
		f = jsonfmt.New()
	case FormatFlatJSON:
		f = flatjson.New()
	case FormatYAML:
		f = yamlfmt.New()
	case FormatTOML:
		f = tomlfmt.New()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(obj, fmtOpts)
}
