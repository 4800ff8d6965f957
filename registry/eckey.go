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
	"fmt"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// CurveSecp256k1 is the default curve of a crypto-eckey
const CurveSecp256k1 int64 = 0

var (
	fieldECKeyCurve     = Field{Key: 1, Name: "curve"}
	fieldECKeyIsPrivate = Field{Key: 2, Name: "is private"}
	fieldECKeyData      = Field{Key: 3, Name: "data"}
)

// CryptoECKey is a bare elliptic-curve key
type CryptoECKey struct {
	curve     fn.Option[int64]
	isPrivate fn.Option[bool]
	data      []byte
}

func NewCryptoECKey(
	curve fn.Option[int64],
	isPrivate fn.Option[bool],
	data []byte,
) *CryptoECKey {
	return &CryptoECKey{
		curve:     curve,
		isPrivate: isPrivate,
		data:      CopyBytes(data),
	}
}

func (k *CryptoECKey) Curve() int64 {
	return k.curve.UnwrapOr(CurveSecp256k1)
}

func (k *CryptoECKey) IsPrivateKey() bool {
	return k.isPrivate.UnwrapOr(false)
}

func (k *CryptoECKey) Data() []byte {
	return CopyBytes(k.data)
}

// PublicKey returns the secp256k1 public key for the stored key material
func (k *CryptoECKey) PublicKey() (*btcec.PublicKey, error) {
	if k.Curve() != CurveSecp256k1 {
		return nil, fmt.Errorf("unsupported curve: %d", k.Curve())
	}
	if k.IsPrivateKey() {
		if err := CheckLength("private key", k.data, btcec.PrivKeyBytesLen); err != nil {
			return nil, err
		}
		privKey, _ := btcec.PrivKeyFromBytes(k.data)
		return privKey.PubKey(), nil
	}
	return btcec.ParsePubKey(k.data)
}

func (*CryptoECKey) RegistryType() RegistryType {
	return TypeCryptoECKey
}

func (k *CryptoECKey) ToCbor() any {
	ret := CborMap{}
	SetOption(ret, fieldECKeyCurve, k.curve)
	SetOption(ret, fieldECKeyIsPrivate, k.isPrivate)
	ret.Set(fieldECKeyData, k.data)
	return ret
}

func (k *CryptoECKey) ToBytes() ([]byte, error) {
	return Encode(k)
}

func CryptoECKeyFromCbor(v cbor.Value) (*CryptoECKey, error) {
	fields, err := NewFieldMap(TypeCryptoECKey, v)
	if err != nil {
		return nil, err
	}
	ret := &CryptoECKey{}
	if ret.curve, err = fields.Int(fieldECKeyCurve); err != nil {
		return nil, err
	}
	if ret.isPrivate, err = fields.Bool(fieldECKeyIsPrivate); err != nil {
		return nil, err
	}
	if ret.data, err = fields.RequiredBytes(fieldECKeyData); err != nil {
		return nil, err
	}
	return ret, nil
}

func CryptoECKeyFromBytes(data []byte) (*CryptoECKey, error) {
	return Decode(data, CryptoECKeyFromCbor)
}
