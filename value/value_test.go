/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/cooldata/value"
)

func sample() *value.Object {
	inner := value.NewObject()
	inner.Set("inner", value.String("value"))

	item := value.NewObject()
	item.Set("a", value.Int(1))

	root := value.NewObject()
	root.Set("name", value.Int(42))
	root.Set("pi", value.Float(3.14))
	root.Set("label", value.String("hello"))
	root.Set("nested", inner)
	root.Set("items", value.NewList(value.Int(1), value.Int(2), value.String("three"), item))
	return root
}

func TestObject_TypedAccessors(t *testing.T) {
	root := sample()

	n, err := root.GetInt("name")
	require.NoError(t, err)
	assert.Equal(t, int32(42), n)

	pi, err := root.GetFloat("pi")
	require.NoError(t, err)
	assert.Equal(t, float32(3.14), pi)

	label, err := root.GetString("label")
	require.NoError(t, err)
	assert.Equal(t, "hello", label)

	nested, err := root.GetObject("nested")
	require.NoError(t, err)
	inner, err := nested.GetString("inner")
	require.NoError(t, err)
	assert.Equal(t, "value", inner)

	items, err := root.GetList("items")
	require.NoError(t, err)
	assert.Equal(t, 4, items.Len())
}

func TestObject_UnknownField(t *testing.T) {
	root := sample()
	_, err := root.GetInt("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrUnknownField))

	var fieldErr *value.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "missing", fieldErr.Name)
	assert.Equal(t, `unknown field "missing"`, err.Error())
}

func TestObject_WrongTypeDoesNotCoerce(t *testing.T) {
	root := value.NewObject()
	root.Set("x", value.String("5"))
	root.Set("i", value.Int(5))

	_, err := root.GetInt("x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrWrongType))

	var fieldErr *value.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, value.KindInt, fieldErr.Expected)
	assert.Equal(t, value.KindString, fieldErr.Actual)
	assert.Equal(t, `field "x" is String, not Int`, err.Error())

	_, err = root.GetFloat("i")
	assert.True(t, errors.Is(err, value.ErrWrongType))
	_, err = root.GetObject("i")
	assert.True(t, errors.Is(err, value.ErrWrongType))
	_, err = root.GetList("i")
	assert.True(t, errors.Is(err, value.ErrWrongType))
	_, err = root.GetString("i")
	assert.True(t, errors.Is(err, value.ErrWrongType))
}

func TestObject_SetReplacesAndDelete(t *testing.T) {
	var obj value.Object
	obj.Set("a", value.Int(1))
	obj.Set("a", value.Int(2))
	assert.Equal(t, 1, obj.Len())

	n, err := obj.GetInt("a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)

	assert.True(t, obj.Delete("a"))
	assert.False(t, obj.Delete("a"))
	assert.False(t, obj.Has("a"))
}

func TestObject_IterationIsSorted(t *testing.T) {
	root := sample()
	assert.Equal(t, []string{"items", "label", "name", "nested", "pi"}, root.Keys())

	var seen []string
	for k := range root.All() {
		seen = append(seen, k)
		if k == "name" {
			break
		}
	}
	assert.Equal(t, []string{"items", "label", "name"}, seen)
}

func TestObject_GetObjectReturnsChild(t *testing.T) {
	root := sample()
	nested, err := root.GetObject("nested")
	require.NoError(t, err)
	nested.Set("extra", value.Int(1))

	again, err := root.GetObject("nested")
	require.NoError(t, err)
	assert.True(t, again.Has("extra"))
}

func TestList_Access(t *testing.T) {
	l := value.NewList(value.Int(1), value.Float(2.5), value.String("s"), value.NewObject(), value.NewList())

	i, err := l.IntAt(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), i)

	f, err := l.FloatAt(1)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	s, err := l.StringAt(2)
	require.NoError(t, err)
	assert.Equal(t, "s", s)

	_, err = l.ObjectAt(3)
	require.NoError(t, err)
	_, err = l.ListAt(4)
	require.NoError(t, err)

	_, err = l.StringAt(0)
	var indexErr *value.IndexError
	require.ErrorAs(t, err, &indexErr)
	assert.True(t, errors.Is(err, value.ErrWrongType))
	assert.Equal(t, value.KindString, indexErr.Expected)
	assert.Equal(t, value.KindInt, indexErr.Actual)
}

func TestList_OutOfBounds(t *testing.T) {
	l := value.NewList(value.Int(1), value.Int(2), value.Int(3))

	for _, index := range []int{3, 4, -1} {
		_, err := l.At(index)
		require.Error(t, err, "index %d", index)
		assert.True(t, errors.Is(err, value.ErrOutOfBounds))
	}

	// bounds are checked before the type
	_, err := l.StringAt(10)
	assert.True(t, errors.Is(err, value.ErrOutOfBounds))
	assert.Equal(t, "index 10 out of bounds for list of length 3", err.Error())
}

func TestList_Mutation(t *testing.T) {
	l := value.NewList()
	l.Append(value.Int(1))
	l.Append(value.Int(1))
	assert.Equal(t, 2, l.Len())

	require.NoError(t, l.SetAt(1, value.String("x")))
	s, err := l.StringAt(1)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	err = l.SetAt(2, value.Int(0))
	assert.True(t, errors.Is(err, value.ErrOutOfBounds))

	var got []value.Value
	for _, v := range l.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []value.Value{value.Int(1), value.String("x")}, got)
}

func TestNewList_CopiesArguments(t *testing.T) {
	items := []value.Value{value.Int(1)}
	l := value.NewList(items...)
	items[0] = value.Int(9)

	n, err := l.IntAt(0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), n)
}

func TestParseInt(t *testing.T) {
	n, err := value.ParseInt("2147483647")
	require.NoError(t, err)
	assert.Equal(t, value.Int(math.MaxInt32), n)

	_, err = value.ParseInt("2147483648")
	require.Error(t, err)
	assert.True(t, errors.Is(err, value.ErrInvalidNumber))

	var valueErr *value.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "2147483648", valueErr.Literal)
	assert.Equal(t, value.KindInt, valueErr.Kind)
}

func TestParseFloat(t *testing.T) {
	f, err := value.ParseFloat("3.14")
	require.NoError(t, err)
	assert.Equal(t, value.Float(3.14), f)

	f, err = value.ParseFloat("1.")
	require.NoError(t, err)
	assert.Equal(t, value.Float(1), f)

	_, err = value.ParseFloat("1e39")
	assert.True(t, errors.Is(err, value.ErrInvalidNumber))
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"name", true},
		{"ünïcode", true},
		{"", false},
		{"snake_case", false},
		{"abc1", false},
		{"kebab-case", false},
		{"किताब", true},
		{"Ⅻ", true},
		{"a٣", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, value.ValidName(tt.name), "ValidName(%q)", tt.name)
	}
}

func TestIsAlpha(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 'é', 'ि', 'Ⅻ', 'ⅰ'} {
		assert.True(t, value.IsAlpha(r), "IsAlpha(%q)", r)
	}
	for _, r := range []rune{'1', '٣', '_', '-', ' ', '='} {
		assert.False(t, value.IsAlpha(r), "IsAlpha(%q)", r)
	}
}

func TestEqual_NilContainers(t *testing.T) {
	var nilObj *value.Object
	var nilList *value.List

	assert.NotPanics(t, func() {
		assert.False(t, value.Equal(value.NewObject(), nilObj))
		assert.False(t, value.Equal(nilObj, value.NewObject()))
		assert.True(t, value.Equal(nilObj, nilObj))
		assert.False(t, value.Equal(value.NewList(), nilList))
		assert.False(t, value.Equal(nilList, value.NewList()))
		assert.True(t, value.Equal(nilList, nilList))
		assert.False(t, value.Equal(nilObj, nilList))
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, value.Equal(sample(), sample()))
	assert.True(t, value.Equal(value.Int(1), value.Int(1)))
	assert.False(t, value.Equal(value.Int(1), value.Float(1)))
	assert.False(t, value.Equal(value.NewList(value.Int(1)), value.NewList(value.Int(1), value.Int(1))))

	changed := sample()
	nested, err := changed.GetObject("nested")
	require.NoError(t, err)
	nested.Set("inner", value.String("other"))
	assert.False(t, value.Equal(sample(), changed))

	renamed := value.NewObject()
	renamed.Set("b", value.Int(1))
	other := value.NewObject()
	other.Set("a", value.Int(1))
	assert.False(t, value.Equal(renamed, other))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Object", value.KindObject.String())
	assert.Equal(t, "Kind(9)", value.Kind(9).String())
}
