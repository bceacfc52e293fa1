/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"

	"bennypowers.dev/cooldata/lexer"
)

func TestTable(t *testing.T) {
	toks, err := lexer.Tokenize("a = \"x\"\nb = [1.5]")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Table(&buf, toks); err != nil {
		t.Fatalf("Table() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("got %d lines, want %d", len(lines), len(toks))
	}
	expected := map[int]string{
		0: "1:1  Identifier    a",
		1: "1:3  Equals        =",
		2: `1:5  String        "x"`,
		3: "1:8  Newline       ",
		6: "2:5  LeftBracket   [",
		7: "2:6  Float         1.5",
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestJSON(t *testing.T) {
	toks, err := lexer.Tokenize("a = 1")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, toks); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var got, want any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	expected := `[
		{"kind": "Identifier", "text": "a", "loc": {"line": 1, "column": 1}},
		{"kind": "Equals", "loc": {"line": 1, "column": 3}},
		{"kind": "Int", "text": "1", "loc": {"line": 1, "column": 5}}
	]`
	if err := json.Unmarshal([]byte(expected), &want); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("JSON() = %s, want %s", buf.String(), expected)
	}
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, nil); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("JSON(nil) = %q, want %q", buf.String(), "[]\n")
	}
}
