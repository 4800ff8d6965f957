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

// Package cardano implements the Cardano family of registry items: sign
// requests and their nested UTXO and certificate key records, signatures,
// message signing (plain and CIP-8), transaction hash signing, and Catalyst
// voting registration.
package cardano

import (
	"errors"
	"fmt"
	"math"

	"filippo.io/edwards25519"
	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	PublicKeyLength = 32
	KeyHashLength   = 28
)

// InvalidPublicKeyError is returned for a public key that is not a valid
// Ed25519 point encoding
type InvalidPublicKeyError struct {
	Field string
	Err   error
}

func (e *InvalidPublicKeyError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidPublicKeyError) Unwrap() error {
	return e.Err
}

// InvalidAddressError is returned for an address that does not decode as bech32
type InvalidAddressError struct {
	Address string
	Err     error
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid bech32 address %q: %v", e.Address, e.Err)
}

func (e *InvalidAddressError) Unwrap() error {
	return e.Err
}

// CheckPublicKey verifies that key is a 32-byte encoding of a point on the
// Ed25519 curve
func CheckPublicKey(field string, key []byte) error {
	if err := registry.CheckLength(field, key, PublicKeyLength); err != nil {
		return err
	}
	if _, err := new(edwards25519.Point).SetBytes(key); err != nil {
		return &InvalidPublicKeyError{Field: field, Err: err}
	}
	return nil
}

// CheckAddress verifies the bech32 checksum of an address. Cardano addresses
// exceed the 90 character limit of BIP-173, so the length is not checked
func CheckAddress(address string) error {
	if _, _, err := bech32.DecodeNoLimit(address); err != nil {
		return &InvalidAddressError{Address: address, Err: err}
	}
	return nil
}

func requirePath(path *registry.CryptoKeyPath) error {
	if path == nil {
		return errors.New("derivation path is required")
	}
	return nil
}

// taggedList returns the wire form of a list of nested items
func taggedList[T registry.Item](items []T) []any {
	ret := make([]any, 0, len(items))
	for _, item := range items {
		ret = append(ret, registry.Tagged(item))
	}
	return ret
}

// taggedItems returns a getter for an array whose elements are each wrapped
// in the tag of rt
func taggedItems[T any](
	rt registry.RegistryType,
	decode func(cbor.Value) (T, error),
) func(cbor.Value) ([]T, error) {
	return func(v cbor.Value) ([]T, error) {
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		ret := make([]T, 0, len(items))
		for i, item := range items {
			content, err := item.Tag(rt.Tag)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			decoded, err := decode(content)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			ret = append(ret, decoded)
		}
		return ret, nil
	}
}

func textItems(v cbor.Value) ([]string, error) {
	items, err := v.Array()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(items))
	for i, item := range items {
		s, err := item.Text()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		ret = append(ret, s)
	}
	return ret, nil
}

func uint8Getter(name string) func(cbor.Value) (uint8, error) {
	return func(v cbor.Value) (uint8, error) {
		n, err := v.Uint()
		if err != nil {
			return 0, err
		}
		if n > math.MaxUint8 {
			return 0, &registry.OutOfRangeError{Field: name, Value: n, Max: math.MaxUint8}
		}
		return uint8(n), nil
	}
}

func publicKeyGetter(name string) func(cbor.Value) ([]byte, error) {
	return func(v cbor.Value) ([]byte, error) {
		key, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		if err := CheckPublicKey(name, key); err != nil {
			return nil, err
		}
		return key, nil
	}
}

func addressGetter(v cbor.Value) (string, error) {
	address, err := v.Text()
	if err != nil {
		return "", err
	}
	if err := CheckAddress(address); err != nil {
		return "", err
	}
	return address, nil
}
