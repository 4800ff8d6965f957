// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"errors"
	"fmt"
)

// ErrNoRequestID is returned by RequestID getters when the item carries no request id
var ErrNoRequestID = errors.New("no request id supplied")

// Sentinel error for unknown registry type names so callers can use errors.Is
var ErrUnsupportedType = errors.New("unsupported registry type")

// FieldError adds item and field context to a decode failure
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Type, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// MissingRequiredFieldError indicates a required map key was absent
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidPathComponentError indicates a derivation path chunk that could not be parsed
type InvalidPathComponentError struct {
	Component string
	Err       error
}

func (e *InvalidPathComponentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"invalid path component %q: %v",
			e.Component,
			e.Err,
		)
	}
	return fmt.Sprintf("invalid path component %q", e.Component)
}

func (e *InvalidPathComponentError) Unwrap() error { return e.Err }

// InvalidFixedLengthError indicates a byte field with the wrong length
type InvalidFixedLengthError struct {
	Field    string
	Expected int
	Actual   int
}

func (e *InvalidFixedLengthError) Error() string {
	return fmt.Sprintf(
		"invalid length for %s: expected %d bytes, got %d",
		e.Field,
		e.Expected,
		e.Actual,
	)
}

// UnsupportedTypeError indicates a registry type name with no decoder
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported registry type: %s", e.Name)
}

func (*UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// UnsupportedVariantError indicates a known container holding a variant that
// is not implemented, such as a crypto-output wrapping something other than
// an HD key
type UnsupportedVariantError struct {
	Type string
	Tag  uint64
}

func (e *UnsupportedVariantError) Error() string {
	return fmt.Sprintf("unsupported %s variant with tag %d", e.Type, e.Tag)
}

// InvalidEnumValueError indicates an integer that does not map to a known enum value
type InvalidEnumValueError struct {
	Enum  string
	Value int64
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %d", e.Enum, e.Value)
}

// OutOfRangeError indicates an integer that does not fit the field
type OutOfRangeError struct {
	Field string
	Value uint64
	Max   uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"value %d for %s exceeds maximum %d",
		e.Value,
		e.Field,
		e.Max,
	)
}

// CheckLength returns an InvalidFixedLengthError when data is not exactly size bytes
func CheckLength(field string, data []byte, size int) error {
	if len(data) != size {
		return &InvalidFixedLengthError{
			Field:    field,
			Expected: size,
			Actual:   len(data),
		}
	}
	return nil
}
