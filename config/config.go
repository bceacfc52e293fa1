/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for cooldata tooling.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/parser"
)

// Config represents the project configuration.
type Config struct {
	// Files specifies documents to check (paths, globs or URLs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Format is the default output format for convert.
	// Valid values are those of convert.ValidFormats.
	Format string `yaml:"format" json:"format"`

	// MaxDepth limits nesting when parsing. Zero means unlimited.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`

	// KeyCase rewrites keys during conversion.
	KeyCase string `yaml:"keyCase" json:"keyCase"`

	// Strict makes lint findings fail the check command.
	Strict bool `yaml:"strict" json:"strict"`

	// Indent is the nesting indent used by fmt.
	Indent string `yaml:"indent" json:"indent"`
}

// FileSpec is one entry of the files list.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs and http(s) URLs).
	Path string `yaml:"path" json:"path"`

	// MaxDepth overrides the global nesting limit for this file.
	MaxDepth int `yaml:"maxDepth" json:"maxDepth"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Format: string(convert.FormatCool),
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := convert.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("config format: %w", err)
		}
	}
	if _, err := formatter.ParseKeyCase(c.KeyCase); err != nil {
		return fmt.Errorf("config keyCase: %w", err)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config maxDepth: must not be negative, got %d", c.MaxDepth)
	}
	for _, spec := range c.Files {
		if spec.MaxDepth < 0 {
			return fmt.Errorf("config maxDepth for %s: must not be negative, got %d", spec.Path, spec.MaxDepth)
		}
	}
	return nil
}

// OutputFormat returns the parsed Format field, or FormatCool if it is
// empty or invalid.
func (c *Config) OutputFormat() convert.Format {
	f, err := convert.ParseFormat(c.Format)
	if err != nil {
		return convert.FormatCool
	}
	return f
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		MaxDepth: c.MaxDepth,
	}

	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.MaxDepth != 0 {
				opts.MaxDepth = spec.MaxDepth
			}
			break
		}
	}

	return opts
}
