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
	fieldUTXOTransactionHash = registry.Field{Key: 1, Name: "transaction hash"}
	fieldUTXOIndex           = registry.Field{Key: 2, Name: "index"}
	fieldUTXOAmount          = registry.Field{Key: 3, Name: "amount"}
	fieldUTXOKeyPath         = registry.Field{Key: 4, Name: "key path"}
	fieldUTXOAddress         = registry.Field{Key: 5, Name: "address"}
)

// UTXO describes a transaction input spent by a SignRequest, along with the
// path of the key that controls it
type UTXO struct {
	transactionHash []byte
	index           uint32
	amount          string
	keyPath         *registry.CryptoKeyPath
	address         string
}

func NewUTXO(
	transactionHash []byte,
	index uint32,
	amount string,
	keyPath *registry.CryptoKeyPath,
	address string,
) (*UTXO, error) {
	if err := requirePath(keyPath); err != nil {
		return nil, err
	}
	return &UTXO{
		transactionHash: registry.CopyBytes(transactionHash),
		index:           index,
		amount:          amount,
		keyPath:         keyPath,
		address:         address,
	}, nil
}

func (u *UTXO) TransactionHash() []byte {
	return registry.CopyBytes(u.transactionHash)
}

func (u *UTXO) Index() uint32 {
	return u.index
}

// Amount is the lovelace value as a decimal string
func (u *UTXO) Amount() string {
	return u.amount
}

func (u *UTXO) KeyPath() *registry.CryptoKeyPath {
	return u.keyPath
}

func (u *UTXO) Address() string {
	return u.address
}

func (*UTXO) RegistryType() registry.RegistryType {
	return registry.TypeCardanoUTXO
}

func (u *UTXO) ToCbor() any {
	ret := registry.CborMap{}
	ret.Set(fieldUTXOTransactionHash, u.transactionHash)
	ret.Set(fieldUTXOIndex, uint64(u.index))
	ret.Set(fieldUTXOAmount, u.amount)
	ret.Set(fieldUTXOKeyPath, registry.Tagged(u.keyPath))
	ret.Set(fieldUTXOAddress, u.address)
	return ret
}

func (u *UTXO) ToBytes() ([]byte, error) {
	return registry.Encode(u)
}

func UTXOFromCbor(v cbor.Value) (*UTXO, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoUTXO, v)
	if err != nil {
		return nil, err
	}
	ret := &UTXO{}
	if ret.transactionHash, err = fields.RequiredBytes(fieldUTXOTransactionHash); err != nil {
		return nil, err
	}
	if ret.index, err = fields.RequiredUint32(fieldUTXOIndex); err != nil {
		return nil, err
	}
	if ret.amount, err = fields.RequiredText(fieldUTXOAmount); err != nil {
		return nil, err
	}
	if ret.keyPath, err = fields.RequiredKeyPath(fieldUTXOKeyPath); err != nil {
		return nil, err
	}
	if ret.address, err = fields.RequiredText(fieldUTXOAddress); err != nil {
		return nil, err
	}
	return ret, nil
}

func UTXOFromBytes(data []byte) (*UTXO, error) {
	return registry.Decode(data, UTXOFromCbor)
}
