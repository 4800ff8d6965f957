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

package cardano

import (
	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
)

var (
	fieldDelegationPublicKey = registry.Field{Key: 1, Name: "pub key"}
	fieldDelegationWeight    = registry.Field{Key: 2, Name: "weight"}
)

// Delegation assigns a share of voting power to a vote key
type Delegation struct {
	publicKey []byte
	weight    uint8
}

func NewDelegation(publicKey []byte, weight uint8) (*Delegation, error) {
	if err := CheckPublicKey(fieldDelegationPublicKey.Name, publicKey); err != nil {
		return nil, err
	}
	return &Delegation{
		publicKey: registry.CopyBytes(publicKey),
		weight:    weight,
	}, nil
}

func (d *Delegation) PublicKey() []byte {
	return registry.CopyBytes(d.publicKey)
}

func (d *Delegation) Weight() uint8 {
	return d.weight
}

func (*Delegation) RegistryType() registry.RegistryType {
	return registry.TypeCardanoDelegation
}

func (d *Delegation) ToCbor() any {
	ret := registry.CborMap{}
	ret.Set(fieldDelegationPublicKey, d.publicKey)
	ret.Set(fieldDelegationWeight, uint64(d.weight))
	return ret
}

func (d *Delegation) ToBytes() ([]byte, error) {
	return registry.Encode(d)
}

func DelegationFromCbor(v cbor.Value) (*Delegation, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoDelegation, v)
	if err != nil {
		return nil, err
	}
	ret := &Delegation{}
	ret.publicKey, err = registry.Required(
		fields,
		fieldDelegationPublicKey,
		cbor.KindBytes,
		publicKeyGetter(fieldDelegationPublicKey.Name),
	)
	if err != nil {
		return nil, err
	}
	ret.weight, err = registry.Required(
		fields,
		fieldDelegationWeight,
		cbor.KindInteger,
		uint8Getter(fieldDelegationWeight.Name),
	)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func DelegationFromBytes(data []byte) (*Delegation, error) {
	return registry.Decode(data, DelegationFromCbor)
}
