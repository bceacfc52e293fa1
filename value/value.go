/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package value provides the CoolData value tree: scalars (Int, Float, String)
// and the two containers (Object, List), with fail-fast typed accessors.
//
// A parsed document is always an *Object. Containers own their children
// exclusively; the parser never shares a node between two parents.
package value

import (
	"iter"
	"maps"
	"slices"
	"strconv"
	"unicode"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindObject
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindObject:
		return "Object"
	case KindList:
		return "List"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is one of Int, Float, String, *Object or *List.
type Value interface {
	Kind() Kind
	isValue()
}

// Int is a 32-bit signed integer value.
type Int int32

// Float is a 32-bit IEEE float value.
type Float float32

// String is a raw text value. No escape processing is applied.
type String string

func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (String) Kind() Kind  { return KindString }
func (*Object) Kind() Kind { return KindObject }
func (*List) Kind() Kind   { return KindList }

func (Int) isValue()     {}
func (Float) isValue()   {}
func (String) isValue()  {}
func (*Object) isValue() {}
func (*List) isValue()   {}

// ParseInt converts an integer literal into an Int.
// It fails with a *ValueError if the text is not a base-10 integer that fits in 32 bits.
func ParseInt(text string) (Int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, &ValueError{Literal: text, Kind: KindInt, Cause: err}
	}
	return Int(n), nil
}

// ParseFloat converts a float literal into a Float.
// It fails with a *ValueError if the text is not a number representable as float32.
func ParseFloat(text string) (Float, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, &ValueError{Literal: text, Kind: KindFloat, Cause: err}
	}
	return Float(f), nil
}

// IsAlpha reports whether r has the Unicode Alphabetic property: letters,
// letter numbers and other alphabetic marks such as Indic vowel signs.
// Identifiers are made of these characters only.
func IsAlpha(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// ValidName reports whether s can be written as a field name in CoolData
// source: one or more alphabetic characters and nothing else.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsAlpha(r) {
			return false
		}
	}
	return true
}

// Object maps field names to values. Keys are unique; setting an existing
// key replaces its value. Field order is not significant.
type Object struct {
	fields map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Len returns the number of fields.
func (o *Object) Len() int {
	return len(o.fields)
}

// Has reports whether the field exists.
func (o *Object) Has(name string) bool {
	_, ok := o.fields[name]
	return ok
}

// Get returns the named field, or a *FieldError wrapping ErrUnknownField.
func (o *Object) Get(name string) (Value, error) {
	v, ok := o.fields[name]
	if !ok {
		return nil, &FieldError{Name: name, Err: ErrUnknownField}
	}
	return v, nil
}

func fieldAs[T Value](o *Object, name string, want Kind) (T, error) {
	var zero T
	v, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &FieldError{Name: name, Expected: want, Actual: v.Kind(), Err: ErrWrongType}
	}
	return typed, nil
}

// GetInt returns the named Int field.
func (o *Object) GetInt(name string) (int32, error) {
	v, err := fieldAs[Int](o, name, KindInt)
	return int32(v), err
}

// GetFloat returns the named Float field.
func (o *Object) GetFloat(name string) (float32, error) {
	v, err := fieldAs[Float](o, name, KindFloat)
	return float32(v), err
}

// GetString returns the named String field.
func (o *Object) GetString(name string) (string, error) {
	v, err := fieldAs[String](o, name, KindString)
	return string(v), err
}

// GetObject returns the named Object field. The returned object is the
// stored child, so edits through it modify this tree.
func (o *Object) GetObject(name string) (*Object, error) {
	return fieldAs[*Object](o, name, KindObject)
}

// GetList returns the named List field. Like GetObject it is not a copy.
func (o *Object) GetList(name string) (*List, error) {
	return fieldAs[*List](o, name, KindList)
}

// Set stores v under name, replacing any previous value.
func (o *Object) Set(name string, v Value) {
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	o.fields[name] = v
}

// Delete removes the named field. It reports whether the field existed.
func (o *Object) Delete(name string) bool {
	if _, ok := o.fields[name]; !ok {
		return false
	}
	delete(o.fields, name)
	return true
}

// Keys returns the field names in sorted order.
func (o *Object) Keys() []string {
	return slices.Sorted(maps.Keys(o.fields))
}

// All iterates over the fields in sorted key order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// List is an ordered sequence of values.
type List struct {
	items []Value
}

// NewList creates a list holding items.
func NewList(items ...Value) *List {
	return &List{items: slices.Clone(items)}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the element at index, or a *IndexError wrapping ErrOutOfBounds.
func (l *List) At(index int) (Value, error) {
	if index < 0 || index >= len(l.items) {
		return nil, &IndexError{Index: index, Len: len(l.items), Err: ErrOutOfBounds}
	}
	return l.items[index], nil
}

func itemAs[T Value](l *List, index int, want Kind) (T, error) {
	var zero T
	v, err := l.At(index)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, &IndexError{Index: index, Len: len(l.items), Expected: want, Actual: v.Kind(), Err: ErrWrongType}
	}
	return typed, nil
}

// IntAt returns the Int element at index.
func (l *List) IntAt(index int) (int32, error) {
	v, err := itemAs[Int](l, index, KindInt)
	return int32(v), err
}

// FloatAt returns the Float element at index.
func (l *List) FloatAt(index int) (float32, error) {
	v, err := itemAs[Float](l, index, KindFloat)
	return float32(v), err
}

// StringAt returns the String element at index.
func (l *List) StringAt(index int) (string, error) {
	v, err := itemAs[String](l, index, KindString)
	return string(v), err
}

// ObjectAt returns the Object element at index.
func (l *List) ObjectAt(index int) (*Object, error) {
	return itemAs[*Object](l, index, KindObject)
}

// ListAt returns the List element at index.
func (l *List) ListAt(index int) (*List, error) {
	return itemAs[*List](l, index, KindList)
}

// Append adds v to the end of the list.
func (l *List) Append(v Value) {
	l.items = append(l.items, v)
}

// SetAt replaces the element at index.
func (l *List) SetAt(index int, v Value) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Index: index, Len: len(l.items), Err: ErrOutOfBounds}
	}
	l.items[index] = v
	return nil
}

// Values iterates over the elements in order.
func (l *List) Values() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether a and b are structurally equal trees.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int, Float, String:
		return a == b
	case *Object:
		y, ok := b.(*Object)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Len() != y.Len() {
			return false
		}
		for k, v := range x.fields {
			w, ok := y.fields[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case *List:
		y, ok := b.(*List)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.items {
			if !Equal(x.items[i], y.items[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
