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
	"slices"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	fieldMultiAccountsMasterFingerprint = Field{Key: 1, Name: "master fingerprint"}
	fieldMultiAccountsKeys              = Field{Key: 2, Name: "keys"}
	fieldMultiAccountsDevice            = Field{Key: 3, Name: "device"}
)

// CryptoMultiAccounts lists several HD keys exported from one device
type CryptoMultiAccounts struct {
	masterFingerprint [4]byte
	keys              []CryptoHDKey
	device            fn.Option[string]
}

func NewCryptoMultiAccounts(
	masterFingerprint [4]byte,
	keys []CryptoHDKey,
	device fn.Option[string],
) (*CryptoMultiAccounts, error) {
	if slices.Contains(keys, nil) {
		return nil, errors.New("keys must not be nil")
	}
	return &CryptoMultiAccounts{
		masterFingerprint: masterFingerprint,
		keys:              slices.Clone(keys),
		device:            device,
	}, nil
}

func (m *CryptoMultiAccounts) MasterFingerprint() [4]byte {
	return m.masterFingerprint
}

func (m *CryptoMultiAccounts) Keys() []CryptoHDKey {
	return slices.Clone(m.keys)
}

// Key returns the key at index
func (m *CryptoMultiAccounts) Key(index int) (CryptoHDKey, error) {
	if index < 0 || index >= len(m.keys) {
		return nil, &OutOfRangeError{
			Field: fieldMultiAccountsKeys.Name,
			Value: uint64(max(index, 0)), // #nosec G115
			Max:   uint64(max(len(m.keys)-1, 0)), // #nosec G115
		}
	}
	return m.keys[index], nil
}

func (m *CryptoMultiAccounts) Device() (string, bool) {
	return Option(m.device)
}

func (*CryptoMultiAccounts) RegistryType() RegistryType {
	return TypeCryptoMultiAccounts
}

func (m *CryptoMultiAccounts) ToCbor() any {
	keys := make([]any, 0, len(m.keys))
	for _, key := range m.keys {
		keys = append(keys, Tagged(key))
	}
	ret := CborMap{}
	ret.Set(fieldMultiAccountsMasterFingerprint, FingerprintValue(m.masterFingerprint))
	ret.Set(fieldMultiAccountsKeys, keys)
	SetOption(ret, fieldMultiAccountsDevice, m.device)
	return ret
}

func (m *CryptoMultiAccounts) ToBytes() ([]byte, error) {
	return Encode(m)
}

func CryptoMultiAccountsFromCbor(v cbor.Value) (*CryptoMultiAccounts, error) {
	fields, err := NewFieldMap(TypeCryptoMultiAccounts, v)
	if err != nil {
		return nil, err
	}
	ret := &CryptoMultiAccounts{}
	if ret.masterFingerprint, err = fields.RequiredFingerprint(fieldMultiAccountsMasterFingerprint); err != nil {
		return nil, err
	}
	items, err := fields.RequiredArray(fieldMultiAccountsKeys)
	if err != nil {
		return nil, err
	}
	ret.keys = make([]CryptoHDKey, 0, len(items))
	for _, item := range items {
		key, err := hdKeyGetter(item)
		if err != nil {
			return nil, fields.Wrap(fieldMultiAccountsKeys, err)
		}
		ret.keys = append(ret.keys, key)
	}
	if ret.device, err = fields.Text(fieldMultiAccountsDevice); err != nil {
		return nil, err
	}
	return ret, nil
}

func CryptoMultiAccountsFromBytes(data []byte) (*CryptoMultiAccounts, error) {
	return Decode(data, CryptoMultiAccountsFromCbor)
}

func hdKeyGetter(v cbor.Value) (CryptoHDKey, error) {
	content, err := v.Tag(TypeCryptoHDKey.Tag)
	if err != nil {
		return nil, err
	}
	return CryptoHDKeyFromCbor(content)
}
