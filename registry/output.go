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

	"github.com/blinklabs-io/ur-registry/cbor"
)

// CryptoOutput is an output descriptor. Only HD key outputs are supported
type CryptoOutput struct {
	key CryptoHDKey
}

func NewCryptoOutput(key CryptoHDKey) (*CryptoOutput, error) {
	if key == nil {
		return nil, errors.New("crypto-output requires a key")
	}
	return &CryptoOutput{key: key}, nil
}

func (o *CryptoOutput) HDKey() CryptoHDKey {
	return o.key
}

func (*CryptoOutput) RegistryType() RegistryType {
	return TypeCryptoOutput
}

func (o *CryptoOutput) ToCbor() any {
	return Tagged(o.key)
}

func (o *CryptoOutput) ToBytes() ([]byte, error) {
	return Encode(o)
}

func CryptoOutputFromCbor(v cbor.Value) (*CryptoOutput, error) {
	tag, content, err := v.TagContent()
	if err != nil {
		return nil, &FieldError{Type: TypeCryptoOutput.Name, Err: err}
	}
	if tag != TypeCryptoHDKey.Tag {
		return nil, &FieldError{
			Type: TypeCryptoOutput.Name,
			Err:  &UnsupportedVariantError{Type: TypeCryptoOutput.Name, Tag: tag},
		}
	}
	key, err := CryptoHDKeyFromCbor(content)
	if err != nil {
		return nil, &FieldError{Type: TypeCryptoOutput.Name, Err: err}
	}
	return &CryptoOutput{key: key}, nil
}

func CryptoOutputFromBytes(data []byte) (*CryptoOutput, error) {
	return Decode(data, CryptoOutputFromCbor)
}
