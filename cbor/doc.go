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

// Package cbor provides CBOR encoding/decoding utilities for registry items.
//
// This package wraps github.com/fxamacker/cbor/v2 with the conventions used
// by the registry format.
//
// # Key Types
//
//   - Value: read-only view over an arbitrary CBOR item with typed accessors
//     (Text, Integer, Uint, Bytes, Bool, Float, Array, Map, Tag)
//   - MapView: integer-keyed lookups into a CBOR map
//   - ByteString: bytestrings that can be used as map keys
//   - Tag, RawTag, RawMessage: aliases for the upstream types
//
// # Errors
//
// Accessors fail with *TypeMismatchError or *TagMismatchError. DecodeValue
// fails with *MalformedCborError, which matches ErrMalformedCbor via errors.Is.
//
// # Encoding
//
// Encode always produces canonical CBOR: map keys are sorted, so a map keyed
// by small integers is emitted in ascending key order. Absent optional fields
// are expected to be left out of the map by the caller, never encoded as null.
package cbor
