/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"bennypowers.dev/cooldata/convert"
	"bennypowers.dev/cooldata/internal/mapfs"
	"bennypowers.dev/cooldata/load"
	"bennypowers.dev/cooldata/parser"
	"bennypowers.dev/cooldata/testutil"
	"bennypowers.dev/cooldata/value"
)

func TestLoad_SimpleFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures", "/project")

	obj, err := load.Load(t.Context(), "basic.cool", load.Options{
		Root: "/project",
		FS:   mfs,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	name, err := obj.GetInt("name")
	if err != nil {
		t.Fatal(err)
	}
	if name != 42 {
		t.Errorf("name = %d, want 42", name)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	mfs := mapfs.New()
	_, err := load.Load(t.Context(), "missing.cool", load.Options{Root: "/project", FS: mfs})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got: %v", err)
	}
}

func TestLoad_ParseErrorKeepsLocation(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/bad.cool", "a 1\n", 0644)

	_, err := load.Load(t.Context(), "bad.cool", load.Options{Root: "/project", FS: mfs})
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *parser.ParseError, got %v", err)
	}
	if parseErr.Loc.String() != "1:3" {
		t.Errorf("location = %s, want 1:3", parseErr.Loc)
	}
}

func TestLoad_OtherFormats(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/app.json", `{"port": 80}`, 0644)
	mfs.AddFile("/project/app.yaml", "port: 80\n", 0644)
	mfs.AddFile("/project/app.toml", "port = 80\n", 0644)
	mfs.AddFile("/project/app.txt", `{"port": 80}`, 0644)

	for _, name := range []string{"app.json", "app.yaml", "app.toml"} {
		t.Run(name, func(t *testing.T) {
			obj, err := load.Load(t.Context(), name, load.Options{Root: "/project", FS: mfs})
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if port, err := obj.GetInt("port"); err != nil || port != 80 {
				t.Errorf("port = %d, %v", port, err)
			}
		})
	}

	t.Run("format override", func(t *testing.T) {
		obj, err := load.Load(t.Context(), "app.txt", load.Options{Root: "/project", FS: mfs, Format: convert.FormatJSON})
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !obj.Has("port") {
			t.Error("expected port field")
		}
	})
}

func TestLoad_ConfigMaxDepth(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/cooldata.yaml", "maxDepth: 1\n", 0644)
	mfs.AddFile("/project/deep.cool", "a = [[1]]\n", 0644)

	_, err := load.Load(t.Context(), "deep.cool", load.Options{Root: "/project", FS: mfs})
	if !errors.Is(err, parser.ErrTooDeep) {
		t.Fatalf("expected ErrTooDeep from config limit, got %v", err)
	}

	// options take precedence over config
	if _, err := load.Load(t.Context(), "deep.cool", load.Options{Root: "/project", FS: mfs, MaxDepth: 5}); err != nil {
		t.Errorf("expected option to raise the limit, got %v", err)
	}
}

func TestLoad_ConfigKeyCase(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/cooldata.yaml", "keyCase: camel\n", 0644)
	mfs.AddFile("/project/app.json", `{"listen_port": 80}`, 0644)

	obj, err := load.Load(t.Context(), "app.json", load.Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !obj.Has("listenPort") {
		t.Errorf("expected listenPort, got keys %v", obj.Keys())
	}
}

func TestSaveAndLoad_Compressed(t *testing.T) {
	mfs := mapfs.New()
	src, err := parser.ParseString(string(testutil.LoadFixtureFile(t, "fixtures/server.cool")), parser.Options{})
	if err != nil {
		t.Fatal(err)
	}

	if err := load.Save(mfs, "/out/server.cool.zst", src, load.SaveOptions{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := mfs.ReadFile("/out/server.cool.zst")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "localhost") {
		t.Error("expected compressed output")
	}

	back, err := load.Load(t.Context(), "/out/server.cool.zst", load.Options{FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !value.Equal(src, back) {
		t.Error("compressed round trip changed the tree")
	}
}

func TestSave_FormatFromExtension(t *testing.T) {
	mfs := mapfs.New()
	obj := value.NewObject()
	obj.Set("a", value.Int(1))

	if err := load.Save(mfs, "/out/a.json", obj, load.SaveOptions{}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	data, err := mfs.ReadFile("/out/a.json")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{\n  \"a\": 1\n}\n" {
		t.Errorf("unexpected JSON output %q", data)
	}
}

func TestDecompress_PassThroughAndLimit(t *testing.T) {
	plain := []byte("a = 1")
	out, err := load.Decompress(plain, load.DefaultMaxSize)
	if err != nil || string(out) != "a = 1" {
		t.Errorf("Decompress(plain) = %q, %v", out, err)
	}

	big, err := load.Compress([]byte(strings.Repeat("x", 1<<20)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := load.Decompress(big, 1024); !errors.Is(err, load.ErrDecompress) {
		t.Errorf("expected ErrDecompress for oversized payload, got %v", err)
	}
}

type mockFetcher struct {
	content []byte
	err     error
	called  bool
	url     string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.called = true
	m.url = url
	if m.err != nil {
		return nil, m.err
	}
	return m.content, nil
}

func TestLoad_URL(t *testing.T) {
	fetcher := &mockFetcher{content: []byte(`{"a": 1}`)}

	obj, err := load.Load(t.Context(), "https://example.com/conf/app.json?v=2", load.Options{
		FS:      mapfs.New(),
		Root:    "/project",
		Fetcher: fetcher,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !fetcher.called || fetcher.url != "https://example.com/conf/app.json?v=2" {
		t.Errorf("fetcher called=%v url=%q", fetcher.called, fetcher.url)
	}
	// format comes from the URL path, not the query
	if n, err := obj.GetInt("a"); err != nil || n != 1 {
		t.Errorf("a = %d, %v", n, err)
	}
}

func TestLoad_URLWithoutFetcher(t *testing.T) {
	_, err := load.Load(t.Context(), "https://example.com/app.cool", load.Options{FS: mapfs.New(), Root: "/project"})
	if !errors.Is(err, load.ErrNoFetcher) {
		t.Errorf("expected ErrNoFetcher, got %v", err)
	}
}

func TestLoad_URLFetchError(t *testing.T) {
	fetcher := &mockFetcher{err: fmt.Errorf("fetching: 404 Not Found")}
	_, err := load.Load(t.Context(), "https://example.com/app.cool", load.Options{
		FS:      mapfs.New(),
		Root:    "/project",
		Fetcher: fetcher,
	})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestLoad_LocalPathNeverFetches(t *testing.T) {
	fetcher := &mockFetcher{content: []byte("a = 1")}
	_, _ = load.Load(t.Context(), "missing.cool", load.Options{FS: mapfs.New(), Root: "/project", Fetcher: fetcher})
	if fetcher.called {
		t.Error("fetcher should not be called for local paths")
	}
}
