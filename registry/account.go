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
)

var (
	fieldAccountMasterFingerprint = Field{Key: 1, Name: "master fingerprint"}
	fieldAccountOutputDescriptors = Field{Key: 2, Name: "output descriptors"}
)

// CryptoAccount groups the output descriptors derived from one master key
type CryptoAccount struct {
	masterFingerprint [4]byte
	outputDescriptors []*CryptoOutput
}

func NewCryptoAccount(
	masterFingerprint [4]byte,
	outputDescriptors []*CryptoOutput,
) (*CryptoAccount, error) {
	if slices.Contains(outputDescriptors, nil) {
		return nil, errors.New("output descriptors must not be nil")
	}
	return &CryptoAccount{
		masterFingerprint: masterFingerprint,
		outputDescriptors: slices.Clone(outputDescriptors),
	}, nil
}

func (a *CryptoAccount) MasterFingerprint() [4]byte {
	return a.masterFingerprint
}

func (a *CryptoAccount) OutputDescriptors() []*CryptoOutput {
	return slices.Clone(a.outputDescriptors)
}

func (*CryptoAccount) RegistryType() RegistryType {
	return TypeCryptoAccount
}

// ToCbor lists the output descriptors in their own encoded form, which
// already starts with the tag of the wrapped key
func (a *CryptoAccount) ToCbor() any {
	outputs := make([]any, 0, len(a.outputDescriptors))
	for _, output := range a.outputDescriptors {
		outputs = append(outputs, output.ToCbor())
	}
	ret := CborMap{}
	ret.Set(fieldAccountMasterFingerprint, FingerprintValue(a.masterFingerprint))
	ret.Set(fieldAccountOutputDescriptors, outputs)
	return ret
}

func (a *CryptoAccount) ToBytes() ([]byte, error) {
	return Encode(a)
}

func CryptoAccountFromCbor(v cbor.Value) (*CryptoAccount, error) {
	fields, err := NewFieldMap(TypeCryptoAccount, v)
	if err != nil {
		return nil, err
	}
	ret := &CryptoAccount{}
	if ret.masterFingerprint, err = fields.RequiredFingerprint(fieldAccountMasterFingerprint); err != nil {
		return nil, err
	}
	items, err := fields.RequiredArray(fieldAccountOutputDescriptors)
	if err != nil {
		return nil, err
	}
	ret.outputDescriptors = make([]*CryptoOutput, 0, len(items))
	for _, item := range items {
		output, err := CryptoOutputFromCbor(item)
		if err != nil {
			return nil, fields.Wrap(fieldAccountOutputDescriptors, err)
		}
		ret.outputDescriptors = append(ret.outputDescriptors, output)
	}
	return ret, nil
}

func CryptoAccountFromBytes(data []byte) (*CryptoAccount, error) {
	return Decode(data, CryptoAccountFromCbor)
}
