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
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	fieldTxHashRequestID   = registry.Field{Key: 1, Name: "request id"}
	fieldTxHash            = registry.Field{Key: 2, Name: "tx hash"}
	fieldTxHashPaths       = registry.Field{Key: 3, Name: "paths"}
	fieldTxHashOrigin      = registry.Field{Key: 4, Name: "origin"}
	fieldTxHashAddressList = registry.Field{Key: 5, Name: "address list"}
)

// SignTxHashRequest asks a signer to sign a transaction by its hash alone,
// with every key path expected to witness it
type SignTxHashRequest struct {
	requestID   fn.Option[[]byte]
	txHash      string
	paths       []*registry.CryptoKeyPath
	origin      fn.Option[string]
	addressList []string
}

func NewSignTxHashRequest(
	requestID fn.Option[[]byte],
	txHash string,
	paths []*registry.CryptoKeyPath,
	origin fn.Option[string],
	addressList []string,
) (*SignTxHashRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	for _, path := range paths {
		if err := requirePath(path); err != nil {
			return nil, err
		}
	}
	return &SignTxHashRequest{
		requestID:   registry.CloneBytes(requestID),
		txHash:      txHash,
		paths:       append([]*registry.CryptoKeyPath(nil), paths...),
		origin:      origin,
		addressList: append([]string(nil), addressList...),
	}, nil
}

func (r *SignTxHashRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

// TxHash is the transaction hash as hex
func (r *SignTxHashRequest) TxHash() string {
	return r.txHash
}

func (r *SignTxHashRequest) Paths() []*registry.CryptoKeyPath {
	return append([]*registry.CryptoKeyPath(nil), r.paths...)
}

func (r *SignTxHashRequest) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (r *SignTxHashRequest) AddressList() []string {
	return append([]string(nil), r.addressList...)
}

func (*SignTxHashRequest) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignTxHashRequest
}

func (r *SignTxHashRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldTxHashRequestID, r.requestID)
	ret.Set(fieldTxHash, r.txHash)
	ret.Set(fieldTxHashPaths, taggedList(r.paths))
	registry.SetOption(ret, fieldTxHashOrigin, r.origin)
	addresses := make([]any, 0, len(r.addressList))
	for _, address := range r.addressList {
		addresses = append(addresses, address)
	}
	ret.Set(fieldTxHashAddressList, addresses)
	return ret
}

func (r *SignTxHashRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignTxHashRequestFromCbor(v cbor.Value) (*SignTxHashRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignTxHashRequest, v)
	if err != nil {
		return nil, err
	}
	ret := &SignTxHashRequest{}
	if ret.requestID, err = fields.RequestID(fieldTxHashRequestID); err != nil {
		return nil, err
	}
	if ret.txHash, err = fields.RequiredText(fieldTxHash); err != nil {
		return nil, err
	}
	ret.paths, err = registry.Required(
		fields,
		fieldTxHashPaths,
		cbor.KindArray,
		taggedItems(registry.TypeCryptoKeyPath, registry.CryptoKeyPathFromCbor),
	)
	if err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldTxHashOrigin); err != nil {
		return nil, err
	}
	ret.addressList, err = registry.Required(
		fields,
		fieldTxHashAddressList,
		cbor.KindArray,
		textItems,
	)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func SignTxHashRequestFromBytes(data []byte) (*SignTxHashRequest, error) {
	return registry.Decode(data, SignTxHashRequestFromCbor)
}
