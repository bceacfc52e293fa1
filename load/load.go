/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for reading and writing documents.
package load

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"bennypowers.dev/cooldata/config"
	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/convert/formatter"
	"bennypowers.dev/cooldata/fs"
	"bennypowers.dev/cooldata/value"
)

var (
	// ErrNoFetcher indicates a URL source was given without Options.Fetcher.
	ErrNoFetcher = errors.New("loading URLs requires a fetcher")

	// ErrDecompress indicates a zstd payload could not be decoded.
	ErrDecompress = errors.New("decompression failed")
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Options configures how documents are loaded.
type Options struct {
	// Root is the directory relative paths resolve against, and where the
	// project config is looked up. Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher enables http and https sources. Nil means URLs fail with
	// ErrNoFetcher.
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for a network fetch.
	// Defaults to DefaultTimeout when zero. Has no effect if Fetcher is nil.
	FetchTimeout time.Duration

	// Format overrides detection from the file extension.
	Format convert.Format

	// MaxDepth limits nesting. Takes precedence over config file if set.
	MaxDepth int

	// KeyCase rewrites keys of non-CoolData sources.
	// Takes precedence over config file if set.
	KeyCase formatter.KeyCase

	// MaxSize caps the decompressed size of .zst sources.
	// Defaults to DefaultMaxSize when zero.
	MaxSize int64
}

// Load reads a document from a path or URL.
//
// The source can be:
//   - Local file path: "app.cool" or "/path/to/app.cool"
//   - URL: "https://example.com/app.cool" (requires Options.Fetcher)
//
// Any source may be zstd-compressed; compression is detected from the
// content, and a trailing ".zst" is ignored when picking the format.
// JSON, YAML and TOML sources are converted into a value tree.
//
// The loading process:
//  1. Optionally loads config from .config/cooldata.yaml under Root
//  2. Applies Options values (they take precedence over config)
//  3. Reads or fetches the content and decompresses it if needed
//  4. Decodes it according to its format
func Load(ctx context.Context, source string, opts Options) (*value.Object, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root, err := absRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	cfg := config.LoadOrDefault(filesystem, root)

	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	content, name, err := readSource(ctx, source, root, filesystem, opts)
	if err != nil {
		return nil, err
	}

	content, err = Decompress(content, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	format := opts.Format
	if format == "" {
		format = convert.FormatFromExtension(name)
	}

	convOpts := convert.Options{
		KeyCase: opts.KeyCase,
		Parse:   cfg.OptionsForFile(source),
	}
	if convOpts.KeyCase == formatter.KeyCaseKeep {
		if kc, err := formatter.ParseKeyCase(cfg.KeyCase); err == nil {
			convOpts.KeyCase = kc
		}
	}
	if opts.MaxDepth != 0 {
		convOpts.Parse.MaxDepth = opts.MaxDepth
	}

	obj, err := convert.Decode(content, format, convOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return obj, nil
}

func absRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	if filepath.IsAbs(root) {
		return root, nil
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path: %w", err)
	}
	return abs, nil
}

// readSource returns the raw content and the name used for format detection.
func readSource(ctx context.Context, source, root string, filesystem fs.FileSystem, opts Options) ([]byte, string, error) {
	if config.IsURL(source) {
		u, err := url.Parse(source)
		if err != nil {
			return nil, "", fmt.Errorf("invalid URL %q: %w", source, err)
		}
		if opts.Fetcher == nil {
			return nil, "", fmt.Errorf("%s: %w", source, ErrNoFetcher)
		}
		timeout := opts.FetchTimeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		content, err := opts.Fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, "", err
		}
		return content, u.Path, nil
	}

	path := source
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	content, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, path, nil
}

// Decompress returns data unchanged unless it starts with a zstd frame, in
// which case it is decoded. Output larger than maxSize is an error.
func Decompress(data []byte, maxSize int64) ([]byte, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxSize)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	return out, nil
}

// Compress encodes data as a single zstd frame.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil), nil
}

// SaveOptions configures Save.
type SaveOptions struct {
	// Format overrides detection from the file extension.
	Format convert.Format

	// Convert configures encoding.
	Convert convert.Options
}

// Save encodes obj and writes it to path, creating parent directories.
// Paths ending in ".zst" are zstd-compressed.
func Save(filesystem fs.FileSystem, path string, obj *value.Object, opts SaveOptions) error {
	format := opts.Format
	if format == "" {
		format = convert.FormatFromExtension(path)
	}

	data, err := convert.Encode(obj, format, opts.Convert)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".zst") {
		if data, err = Compress(data); err != nil {
			return fmt.Errorf("failed to compress %s: %w", path, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := filesystem.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
