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

package cbor

import (
	"errors"
	"fmt"
)

// Sentinel error for CBOR parse failures so callers can use errors.Is
var ErrMalformedCbor = errors.New("malformed CBOR")

// MalformedCborError indicates that input bytes could not be parsed as a single CBOR item
type MalformedCborError struct {
	Err error
}

func (e *MalformedCborError) Error() string {
	return fmt.Sprintf("malformed CBOR: %v", e.Err)
}

func (e *MalformedCborError) Unwrap() error { return e.Err }

func (*MalformedCborError) Is(target error) bool {
	return target == ErrMalformedCbor
}

// TypeMismatchError indicates that a value did not have the expected CBOR major type
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"type mismatch: expected %s, found %s",
		e.Expected,
		e.Actual,
	)
}

// TagMismatchError indicates that a tagged value carried an unexpected tag number
type TagMismatchError struct {
	Expected uint64
	Actual   uint64
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf(
		"tag mismatch: expected %d, found %d",
		e.Expected,
		e.Actual,
	)
}
