/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cdrender "bennypowers.dev/cooldata/render"
	"bennypowers.dev/cooldata/value"
)

// Row holds computed display values for a single node of a value tree.
type Row struct {
	Name    string     // Field name, or element index inside a list
	Path    []string   // Segments from the root, e.g. ["server", "tls", "cert"]
	Kind    value.Kind // Kind of the node
	Value   string     // Display value; containers show their size
	IsColor bool       // Whether this is a string holding a parseable CSS color
}

// Depth returns the nesting depth of the row, 0 for top-level fields.
func (r Row) Depth() int {
	return len(r.Path) - 1
}

// Dotted returns the row's path in the form accepted by get.
func (r Row) Dotted() string {
	return strings.Join(r.Path, ".")
}

// ComputeRows flattens obj depth-first into display rows, containers
// before their children, fields in sorted order.
func ComputeRows(obj *value.Object) []Row {
	var rows []Row
	var walk func(path []string, name string, v value.Value)
	walk = func(path []string, name string, v value.Value) {
		path = append(path[:len(path):len(path)], name)
		row := Row{Name: name, Path: path, Kind: v.Kind()}

		switch x := v.(type) {
		case value.Int:
			row.Value = strconv.FormatInt(int64(x), 10)
		case value.Float:
			row.Value = cdrender.FormatFloat(x)
		case value.String:
			row.Value = strconv.Quote(string(x))
			_, err := csscolorparser.Parse(string(x))
			row.IsColor = err == nil
		case *value.Object:
			row.Value = plural(x.Len(), "field")
		case *value.List:
			row.Value = plural(x.Len(), "item")
		}
		rows = append(rows, row)

		switch x := v.(type) {
		case *value.Object:
			for k, child := range x.All() {
				walk(path, k, child)
			}
		case *value.List:
			for i, child := range x.Values() {
				walk(path, strconv.Itoa(i), child)
			}
		}
	}
	for k, v := range obj.All() {
		walk(nil, k, v)
	}
	return rows
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// ColumnWidths calculates the max width needed for each column.
// The name column includes the indentation of nested rows.
func ColumnWidths(rows []Row) (name, kind, val int) {
	name, kind, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		if w := 2*r.Depth() + len(r.Name); w > name {
			name = w
		}
		if w := len(r.Kind.String()); w > kind {
			kind = w
		}
		if len(r.Value) > val {
			val = len(r.Value)
		}
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an indented tree with kind and value columns.
// Color strings get a swatch when color is set.
func Table(w io.Writer, rows []Row, color bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, kindW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if color && r.IsColor {
			unquoted, err := strconv.Unquote(r.Value)
			if err == nil {
				swatch = ColorSwatch(unquoted)
			}
		}
		name := strings.Repeat("  ", r.Depth()) + r.Name
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s\n", nameW, name, kindW, r.Kind, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one markdown table per top-level field,
// preceded by a table of contents. Only scalar leaves are listed.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var order []string
	sections := make(map[string][]Row)
	for _, r := range rows {
		top := r.Path[0]
		if _, exists := sections[top]; !exists {
			order = append(order, top)
		}
		if r.Kind == value.KindObject || r.Kind == value.KindList {
			if _, exists := sections[top]; !exists {
				sections[top] = nil
			}
			continue
		}
		sections[top] = append(sections[top], r)
	}

	var sb strings.Builder
	sb.WriteString("## Table Of Contents\n\n")
	for _, top := range order {
		title := toTitleCase(top)
		fmt.Fprintf(&sb, "- [%s](#%s)\n", title, slugify(title))
	}

	for _, top := range order {
		group := sections[top]
		fmt.Fprintf(&sb, "\n## %s\n\n", toTitleCase(top))
		if len(group) == 0 {
			sb.WriteString("_empty_\n")
			continue
		}

		pathW, kindW, valW := 4, 4, 5
		for _, r := range group {
			pathW = max(pathW, len(r.Dotted())+2)
			kindW = max(kindW, len(r.Kind.String()))
			valW = max(valW, len(escapeCell(r.Value)))
		}
		fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", pathW, "Path", kindW, "Kind", valW, "Value")
		fmt.Fprintf(&sb, "|-%s-|-%s-|-%s-|\n", strings.Repeat("-", pathW), strings.Repeat("-", kindW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Fprintf(&sb, "| %-*s | %-*s | %-*s |\n", pathW, "`"+r.Dotted()+"`", kindW, r.Kind, valW, escapeCell(r.Value))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a field name to Title Case words,
// e.g. "serverName" -> "Server Name".
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(strcase.ToDelimited(s, ' '))
}
