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
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/google/uuid"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	requestIDLength   = 16
	fingerprintLength = 4
)

// Item is implemented by every registry item type
type Item interface {
	RegistryType() RegistryType
	// ToCbor returns the untagged CBOR structure for the item
	ToCbor() any
	ToBytes() ([]byte, error)
}

// Tagged wraps the CBOR structure of an item in its registry tag, as used
// when an item is nested inside another
func Tagged(item Item) cbor.Tag {
	return cbor.Tag{
		Number:  item.RegistryType().Tag,
		Content: item.ToCbor(),
	}
}

// Field describes a single map entry of a registry item
type Field struct {
	Key  uint64
	Name string
}

// CborMap is the encoded form of a registry item. Absent optional fields are
// never added, so they are omitted from the output rather than encoded as null
type CborMap map[uint64]any

func (m CborMap) Set(field Field, value any) {
	m[field.Key] = value
}

// SetOption adds the field only when the option holds a value
func SetOption[T any](m CborMap, field Field, opt fn.Option[T]) {
	opt.WhenSome(func(v T) {
		m[field.Key] = v
	})
}

// SetOptionFunc adds the converted field value only when the option holds a value
func SetOptionFunc[T any](
	m CborMap,
	field Field,
	opt fn.Option[T],
	convert func(T) any,
) {
	opt.WhenSome(func(v T) {
		m[field.Key] = convert(v)
	})
}

// SetRequestID adds a #37 tagged request id when one is set
func SetRequestID(m CborMap, field Field, id fn.Option[[]byte]) {
	SetOptionFunc(m, field, id, func(v []byte) any {
		return RequestIDValue(v)
	})
}

// FingerprintValue returns the wire form of a fingerprint, a big-endian uint32
func FingerprintValue(fingerprint [4]byte) uint64 {
	return uint64(binary.BigEndian.Uint32(fingerprint[:]))
}

// FingerprintFromUint32 returns the 4-byte form of a fingerprint integer
func FingerprintFromUint32(value uint32) [4]byte {
	var ret [4]byte
	binary.BigEndian.PutUint32(ret[:], value)
	return ret
}

// RequestIDValue returns the wire form of a request id
func RequestIDValue(id []byte) cbor.Tag {
	return cbor.Tag{
		Number:  TypeUUID.Tag,
		Content: id,
	}
}

// NewRequestID generates a random request id
func NewRequestID() []byte {
	id := uuid.New()
	return id[:]
}

// ParseRequestID parses a request id in any of the textual forms accepted by
// uuid.Parse, including plain hex
func ParseRequestID(s string) ([]byte, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse request id: %w", err)
	}
	return id[:], nil
}

// CheckRequestID validates the length of an optional request id
func CheckRequestID(id fn.Option[[]byte]) error {
	return fn.ElimOption(
		id,
		func() error { return nil },
		func(v []byte) error {
			return CheckLength("request id", v, requestIDLength)
		},
	)
}

// RequestIDHex returns the stored request id as hex, or ErrNoRequestID
func RequestIDHex(id fn.Option[[]byte]) (string, error) {
	v, err := id.UnwrapOrErr(ErrNoRequestID)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(v), nil
}

// RequestUUID returns the stored request id as a UUID, or ErrNoRequestID
func RequestUUID(id fn.Option[[]byte]) (uuid.UUID, error) {
	v, err := id.UnwrapOrErr(ErrNoRequestID)
	if err != nil {
		return uuid.UUID{}, err
	}
	return uuid.FromBytes(v)
}

// CloneBytes returns a copy of an optional byte slice
func CloneBytes(opt fn.Option[[]byte]) fn.Option[[]byte] {
	return fn.MapOption(cloneBytes)(opt)
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	ret := make([]byte, len(b))
	copy(ret, b)
	return ret
}

// CopyBytes returns a copy of b
func CopyBytes(b []byte) []byte {
	return cloneBytes(b)
}

// Option returns the value held by opt along with whether it was set
func Option[T any](opt fn.Option[T]) (T, bool) {
	var zero T
	if opt.IsNone() {
		return zero, false
	}
	return opt.UnwrapOr(zero), true
}

// Encode serializes an item's CBOR structure
func Encode(item Item) ([]byte, error) {
	data, err := cbor.Encode(item.ToCbor())
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", item.RegistryType().Name, err)
	}
	return data, nil
}

// Decode parses CBOR bytes and hands the resulting value to decodeFunc
func Decode[T any](data []byte, decodeFunc func(cbor.Value) (T, error)) (T, error) {
	v, err := cbor.DecodeValue(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeFunc(v)
}
