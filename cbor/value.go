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
	"math"
	"math/big"
)

// Value kinds as reported in TypeMismatchError
const (
	KindInteger = "integer"
	KindText    = "text"
	KindBytes   = "bytes"
	KindBool    = "bool"
	KindFloat   = "float"
	KindArray   = "array"
	KindMap     = "map"
	KindTag     = "tag"
	KindNull    = "null"
	KindSimple  = "simple"
	KindUnknown = "unknown"
)

// Value is a read-only view over an arbitrary CBOR item. It can be decoded
// directly from CBOR or wrap a Go value built from the same shapes
// (uint64/int64, string, []byte, bool, float64, []any, map[any]any, Tag, nil)
type Value struct {
	value any
	// We store this as a string so that the type is still hashable for use as map keys
	cborData string
}

// NewValue wraps an already decoded or hand-built value
func NewValue(v any) Value {
	return Value{value: v}
}

func (v *Value) UnmarshalCBOR(data []byte) (err error) {
	if len(data) == 0 {
		return errors.New("cannot decode empty CBOR data")
	}
	// Save the original CBOR
	v.cborData = string(data)
	cborType := data[0] & CborTypeMask
	switch cborType {
	case CborTypeMap:
		// There are certain types that cannot be used as map keys in Go but are valid in CBOR. Trying to
		// parse CBOR containing a map with keys of one of those types will cause a panic. We setup this
		// deferred function to recover from a possible panic and return an error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("decode failure, probably due to type unsupported by Go: %v", r)
			}
		}()
		tmpValue := map[Value]Value{}
		if _, err := Decode(data, &tmpValue); err != nil {
			return err
		}
		// Extract actual value from each child value
		newValue := make(map[any]any, len(tmpValue))
		for key, value := range tmpValue {
			// Differently encoded keys can still collapse to the same value
			if _, ok := newValue[key.value]; ok {
				return fmt.Errorf("duplicate map key: %v", key.value)
			}
			newValue[key.value] = value.value
		}
		v.value = newValue
	case CborTypeArray:
		tmpValue := []Value{}
		if _, err := Decode(data, &tmpValue); err != nil {
			return err
		}
		// Extract actual value from each child value
		newValue := make([]any, 0, len(tmpValue))
		for _, value := range tmpValue {
			newValue = append(newValue, value.value)
		}
		v.value = newValue
	case CborTypeTextString:
		var tmpValue string
		if _, err := Decode(data, &tmpValue); err != nil {
			return err
		}
		v.value = tmpValue
	case CborTypeByteString:
		// Use our custom type which stores the bytestring in a way that allows it to be used as a map key
		var tmpValue ByteString
		if _, err := Decode(data, &tmpValue); err != nil {
			return err
		}
		v.value = tmpValue
	case CborTypeTag:
		// Parse as a raw tag to get number and nested CBOR data
		tmpTag := RawTag{}
		if _, err := Decode(data, &tmpTag); err != nil {
			return err
		}
		// Parse the tag value via our custom Value object to handle problem types
		tmpValue := Value{}
		if _, err := Decode(tmpTag.Content, &tmpValue); err != nil {
			return err
		}
		v.value = Tag{
			Number:  tmpTag.Number,
			Content: tmpValue.value,
		}
	default:
		var tmpValue any
		if _, err := Decode(data, &tmpValue); err != nil {
			return err
		}
		v.value = tmpValue
	}
	return nil
}

// Value returns the underlying Go value
func (v Value) Value() any {
	return v.value
}

// Cbor returns the original CBOR for a decoded value, or nil for a wrapped Go value
func (v Value) Cbor() []byte {
	if v.cborData == "" {
		return nil
	}
	return []byte(v.cborData)
}

// Kind returns a short name for the CBOR major type held by the value
func (v Value) Kind() string {
	switch v.value.(type) {
	case uint64, int64, big.Int, *big.Int:
		return KindInteger
	case string:
		return KindText
	case ByteString, []byte:
		return KindBytes
	case bool:
		return KindBool
	case float64, float32:
		return KindFloat
	case []any:
		return KindArray
	case map[any]any:
		return KindMap
	case Tag:
		return KindTag
	case nil:
		return KindNull
	case SimpleValue:
		return KindSimple
	default:
		return KindUnknown
	}
}

// IsNull reports whether the value is CBOR null or undefined
func (v Value) IsNull() bool {
	return v.value == nil
}

func (v Value) mismatch(expected string) error {
	return &TypeMismatchError{Expected: expected, Actual: v.Kind()}
}

func (v Value) Text() (string, error) {
	if s, ok := v.value.(string); ok {
		return s, nil
	}
	return "", v.mismatch(KindText)
}

// Integer returns the value as a signed 64-bit integer
func (v Value) Integer() (int64, error) {
	switch x := v.value.(type) {
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, &TypeMismatchError{
				Expected: "int64",
				Actual:   fmt.Sprintf("integer %d", x),
			}
		}
		return int64(x), nil
	case big.Int, *big.Int:
		return 0, &TypeMismatchError{
			Expected: "int64",
			Actual:   "integer out of 64-bit range",
		}
	}
	return 0, v.mismatch(KindInteger)
}

// Uint returns the value as an unsigned 64-bit integer
func (v Value) Uint() (uint64, error) {
	switch x := v.value.(type) {
	case uint64:
		return x, nil
	case int64:
		if x < 0 {
			return 0, &TypeMismatchError{
				Expected: "unsigned integer",
				Actual:   fmt.Sprintf("integer %d", x),
			}
		}
		return uint64(x), nil
	case big.Int, *big.Int:
		return 0, &TypeMismatchError{
			Expected: "unsigned integer",
			Actual:   "integer out of 64-bit range",
		}
	}
	return 0, v.mismatch(KindInteger)
}

// Bytes returns a copy of the held byte string
func (v Value) Bytes() ([]byte, error) {
	switch x := v.value.(type) {
	case ByteString:
		return x.Bytes(), nil
	case []byte:
		ret := make([]byte, len(x))
		copy(ret, x)
		return ret, nil
	}
	return nil, v.mismatch(KindBytes)
}

func (v Value) Bool() (bool, error) {
	if b, ok := v.value.(bool); ok {
		return b, nil
	}
	return false, v.mismatch(KindBool)
}

func (v Value) Float() (float64, error) {
	switch x := v.value.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	return 0, v.mismatch(KindFloat)
}

// Array returns a view for each item of a CBOR array
func (v Value) Array() ([]Value, error) {
	items, ok := v.value.([]any)
	if !ok {
		return nil, v.mismatch(KindArray)
	}
	ret := make([]Value, len(items))
	for i, item := range items {
		ret[i] = Value{value: item}
	}
	return ret, nil
}

// Map returns a view over a CBOR map
func (v Value) Map() (MapView, error) {
	entries, ok := v.value.(map[any]any)
	if !ok {
		return MapView{}, v.mismatch(KindMap)
	}
	return MapView{entries: entries}, nil
}

// Tag returns the content of a tagged value after checking the tag number
func (v Value) Tag(expected uint64) (Value, error) {
	number, content, err := v.TagContent()
	if err != nil {
		return Value{}, err
	}
	if number != expected {
		return Value{}, &TagMismatchError{Expected: expected, Actual: number}
	}
	return content, nil
}

// TagContent returns the tag number and content of a tagged value without
// checking the number
func (v Value) TagContent() (uint64, Value, error) {
	tag, ok := v.value.(Tag)
	if !ok {
		return 0, Value{}, v.mismatch(KindTag)
	}
	return tag.Number, Value{value: tag.Content}, nil
}

// MapView provides lookups into a CBOR map. Maps in the registry format are
// keyed by small integers
type MapView struct {
	entries map[any]any
}

// ByInteger returns the entry stored under an integer key. A present key
// whose value is null is returned with ok set, so callers can tell it apart
// from an absent key
func (m MapView) ByInteger(key int64) (Value, bool) {
	var k any
	if key >= 0 {
		k = uint64(key)
	} else {
		k = key
	}
	val, ok := m.entries[k]
	if !ok {
		return Value{}, false
	}
	return Value{value: val}, true
}

// Len returns the number of map entries
func (m MapView) Len() int {
	return len(m.entries)
}
