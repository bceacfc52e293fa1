/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package value

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnknownField  = errors.New("unknown field")
	ErrWrongType     = errors.New("wrong type")
	ErrOutOfBounds   = errors.New("index out of bounds")
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidPath   = errors.New("invalid path")
)

// FieldError reports a failed field access on an Object.
type FieldError struct {
	Name string
	// Expected and Actual are set when Err is ErrWrongType.
	Expected Kind
	Actual   Kind
	// Err is ErrUnknownField or ErrWrongType.
	Err error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrWrongType) {
		return fmt.Sprintf("field %q is %s, not %s", e.Name, e.Actual, e.Expected)
	}
	return fmt.Sprintf("unknown field %q", e.Name)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IndexError reports a failed element access on a List.
type IndexError struct {
	Index int
	Len   int
	// Expected and Actual are set when Err is ErrWrongType.
	Expected Kind
	Actual   Kind
	// Err is ErrOutOfBounds or ErrWrongType.
	Err error
}

func (e *IndexError) Error() string {
	if errors.Is(e.Err, ErrWrongType) {
		return fmt.Sprintf("element %d is %s, not %s", e.Index, e.Actual, e.Expected)
	}
	return fmt.Sprintf("index %d out of bounds for list of length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// ValueError reports a numeric literal that cannot be represented.
type ValueError struct {
	Literal string
	Kind    Kind
	Cause   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s literal %q: %v", e.Kind, e.Literal, e.Cause)
}

// Unwrap exposes both ErrInvalidNumber and the strconv cause.
func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidNumber, e.Cause}
}
