/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs

import (
	"errors"
	"io/fs"
	"slices"
	"testing"
)

func TestMapFileSystem_ReadWrite(t *testing.T) {
	mfs := New()
	mfs.AddFile("/project/a.cool", "a = 1\n", 0644)

	data, err := mfs.ReadFile("project/a.cool")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a = 1\n" {
		t.Errorf("ReadFile() = %q", data)
	}

	if err := mfs.MkdirAll("/project/out", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := mfs.WriteFile("/project/out/b.cool", []byte("b = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !mfs.Exists("/project/out") {
		t.Error("expected directory to exist")
	}

	want := []string{"/project/a.cool", "/project/out/b.cool"}
	if got := mfs.Files(); !slices.Equal(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

func TestMapFileSystem_Missing(t *testing.T) {
	mfs := New()
	if _, err := mfs.ReadFile("/nope.cool"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
	if mfs.Exists("/nope.cool") {
		t.Error("expected missing file not to exist")
	}
}

func TestMapFileSystem_WalkDir(t *testing.T) {
	mfs := New()
	mfs.AddFile("/docs/one.cool", "", 0644)
	mfs.AddFile("/docs/nested/two.cool", "", 0644)

	var seen []string
	err := fs.WalkDir(mfs, "docs", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			seen = append(seen, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"docs/nested/two.cool", "docs/one.cool"}
	if !slices.Equal(seen, want) {
		t.Errorf("WalkDir saw %v, want %v", seen, want)
	}
}
