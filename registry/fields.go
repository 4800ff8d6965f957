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
	"math"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// FieldMap reads the integer-keyed fields of an encoded registry item.
// Every failure is reported as a *FieldError naming the item type and field
type FieldMap struct {
	typeName string
	entries  cbor.MapView
}

// NewFieldMap checks that v is a map and prepares it for field lookups
func NewFieldMap(rt RegistryType, v cbor.Value) (FieldMap, error) {
	entries, err := v.Map()
	if err != nil {
		return FieldMap{}, &FieldError{Type: rt.Name, Err: err}
	}
	return FieldMap{typeName: rt.Name, entries: entries}, nil
}

// Wrap adds the item type and field name to err
func (f FieldMap) Wrap(field Field, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Type: f.typeName, Field: field.Name, Err: err}
}

// Missing returns the error for an absent required field
func (f FieldMap) Missing(field Field) error {
	return f.Wrap(field, &MissingRequiredFieldError{Field: field.Name})
}

// lookup treats a present null entry as a type mismatch, since absence is
// only ever signalled by a missing key
func (f FieldMap) lookup(field Field, expected string) (cbor.Value, bool, error) {
	v, ok := f.entries.ByInteger(int64(field.Key)) // #nosec G115
	if !ok {
		return cbor.Value{}, false, nil
	}
	if v.IsNull() {
		return cbor.Value{}, false, f.Wrap(
			field,
			&cbor.TypeMismatchError{Expected: expected, Actual: cbor.KindNull},
		)
	}
	return v, true, nil
}

// Optional reads a field with a custom accessor
func Optional[T any](
	f FieldMap,
	field Field,
	expected string,
	get func(cbor.Value) (T, error),
) (fn.Option[T], error) {
	v, ok, err := f.lookup(field, expected)
	if err != nil || !ok {
		return fn.None[T](), err
	}
	ret, err := get(v)
	if err != nil {
		return fn.None[T](), f.Wrap(field, err)
	}
	return fn.Some(ret), nil
}

// Required reads a field with a custom accessor and fails when it is absent
func Required[T any](
	f FieldMap,
	field Field,
	expected string,
	get func(cbor.Value) (T, error),
) (T, error) {
	opt, err := Optional(f, field, expected, get)
	if err != nil {
		var zero T
		return zero, err
	}
	if opt.IsNone() {
		var zero T
		return zero, f.Missing(field)
	}
	return opt.UnsafeFromSome(), nil
}

func (f FieldMap) Bytes(field Field) (fn.Option[[]byte], error) {
	return Optional(f, field, cbor.KindBytes, cbor.Value.Bytes)
}

func (f FieldMap) RequiredBytes(field Field) ([]byte, error) {
	return Required(f, field, cbor.KindBytes, cbor.Value.Bytes)
}

func (f FieldMap) Text(field Field) (fn.Option[string], error) {
	return Optional(f, field, cbor.KindText, cbor.Value.Text)
}

func (f FieldMap) RequiredText(field Field) (string, error) {
	return Required(f, field, cbor.KindText, cbor.Value.Text)
}

func (f FieldMap) Bool(field Field) (fn.Option[bool], error) {
	return Optional(f, field, cbor.KindBool, cbor.Value.Bool)
}

func (f FieldMap) Int(field Field) (fn.Option[int64], error) {
	return Optional(f, field, cbor.KindInteger, cbor.Value.Integer)
}

func (f FieldMap) Uint(field Field) (fn.Option[uint64], error) {
	return Optional(f, field, cbor.KindInteger, cbor.Value.Uint)
}

func (f FieldMap) RequiredUint(field Field) (uint64, error) {
	return Required(f, field, cbor.KindInteger, cbor.Value.Uint)
}

// Uint32 reads an unsigned integer field that must fit in 32 bits
func (f FieldMap) Uint32(field Field) (fn.Option[uint32], error) {
	return Optional(f, field, cbor.KindInteger, uint32Getter(field.Name))
}

func (f FieldMap) RequiredUint32(field Field) (uint32, error) {
	return Required(f, field, cbor.KindInteger, uint32Getter(field.Name))
}

func (f FieldMap) Array(field Field) (fn.Option[[]cbor.Value], error) {
	return Optional(f, field, cbor.KindArray, cbor.Value.Array)
}

func (f FieldMap) RequiredArray(field Field) ([]cbor.Value, error) {
	return Required(f, field, cbor.KindArray, cbor.Value.Array)
}

// Tagged reads a field holding a value wrapped in the tag of rt, and returns
// the tag content
func (f FieldMap) Tagged(field Field, rt RegistryType) (fn.Option[cbor.Value], error) {
	return Optional(f, field, cbor.KindTag, tagGetter(rt))
}

func (f FieldMap) RequiredTagged(field Field, rt RegistryType) (cbor.Value, error) {
	return Required(f, field, cbor.KindTag, tagGetter(rt))
}

// Fingerprint reads a fingerprint stored as a big-endian uint32
func (f FieldMap) Fingerprint(field Field) (fn.Option[[4]byte], error) {
	return Optional(f, field, cbor.KindInteger, fingerprintGetter(field.Name))
}

func (f FieldMap) RequiredFingerprint(field Field) ([4]byte, error) {
	return Required(f, field, cbor.KindInteger, fingerprintGetter(field.Name))
}

// RequestID reads a #37 tagged 16-byte request id
func (f FieldMap) RequestID(field Field) (fn.Option[[]byte], error) {
	return Optional(f, field, cbor.KindTag, requestIDGetter)
}

// KeyPath reads a #304 tagged crypto-keypath
func (f FieldMap) KeyPath(field Field) (fn.Option[*CryptoKeyPath], error) {
	return Optional(f, field, cbor.KindTag, keyPathGetter)
}

func (f FieldMap) RequiredKeyPath(field Field) (*CryptoKeyPath, error) {
	return Required(f, field, cbor.KindTag, keyPathGetter)
}

func uint32Getter(name string) func(cbor.Value) (uint32, error) {
	return func(v cbor.Value) (uint32, error) {
		n, err := v.Uint()
		if err != nil {
			return 0, err
		}
		if n > math.MaxUint32 {
			return 0, &OutOfRangeError{Field: name, Value: n, Max: math.MaxUint32}
		}
		return uint32(n), nil
	}
}

func fingerprintGetter(name string) func(cbor.Value) ([4]byte, error) {
	getUint32 := uint32Getter(name)
	return func(v cbor.Value) ([4]byte, error) {
		n, err := getUint32(v)
		if err != nil {
			return [4]byte{}, err
		}
		return FingerprintFromUint32(n), nil
	}
}

func tagGetter(rt RegistryType) func(cbor.Value) (cbor.Value, error) {
	return func(v cbor.Value) (cbor.Value, error) {
		return v.Tag(rt.Tag)
	}
}

func requestIDGetter(v cbor.Value) ([]byte, error) {
	content, err := v.Tag(TypeUUID.Tag)
	if err != nil {
		return nil, err
	}
	id, err := content.Bytes()
	if err != nil {
		return nil, err
	}
	if err := CheckLength("request id", id, requestIDLength); err != nil {
		return nil, err
	}
	return id, nil
}

func keyPathGetter(v cbor.Value) (*CryptoKeyPath, error) {
	content, err := v.Tag(TypeCryptoKeyPath.Tag)
	if err != nil {
		return nil, err
	}
	return CryptoKeyPathFromCbor(content)
}
