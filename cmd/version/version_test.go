/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"

	"bennypowers.dev/cooldata/internal/version"
)

func runWithFormat(t *testing.T, format string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	t.Cleanup(func() {
		Cmd.SetOut(nil)
		_ = Cmd.Flags().Set("format", "text")
	})
	if err := Cmd.Flags().Set("format", format); err != nil {
		t.Fatal(err)
	}
	err := run(Cmd, nil)
	return buf.String(), err
}

func TestRun_Text(t *testing.T) {
	out, err := runWithFormat(t, "text")
	if err != nil {
		t.Fatal(err)
	}
	if want := "cooldata " + version.Read().String() + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := runWithFormat(t, "json")
	if err != nil {
		t.Fatal(err)
	}
	var report Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if report.Version != version.Get() {
		t.Errorf("version = %q, want %q", report.Version, version.Get())
	}
	if !strings.HasPrefix(report.GoVersion, "go") {
		t.Errorf("goVersion = %q", report.GoVersion)
	}
	for _, f := range []string{"cool", "json", "yaml", "toml"} {
		if !slices.Contains(report.Formats, f) {
			t.Errorf("formats %v missing %q", report.Formats, f)
		}
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	if _, err := runWithFormat(t, "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
