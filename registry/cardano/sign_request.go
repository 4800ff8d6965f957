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
	fieldRequestID = registry.Field{Key: 1, Name: "request id"}
	fieldSignData  = registry.Field{Key: 2, Name: "sign data"}
	fieldUTXOs     = registry.Field{Key: 3, Name: "utxos"}
	fieldCertKeys  = registry.Field{Key: 4, Name: "cert keys"}
	fieldOrigin    = registry.Field{Key: 5, Name: "origin"}
)

// SignRequest asks a signer to witness a Cardano transaction. The inputs it
// spends and the certificates it carries come with the key paths needed to
// sign for them
type SignRequest struct {
	requestID fn.Option[[]byte]
	signData  []byte
	utxos     []*UTXO
	certKeys  []*CertKey
	origin    fn.Option[string]
}

func NewSignRequest(
	requestID fn.Option[[]byte],
	signData []byte,
	utxos []*UTXO,
	certKeys []*CertKey,
	origin fn.Option[string],
) (*SignRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	return &SignRequest{
		requestID: registry.CloneBytes(requestID),
		signData:  registry.CopyBytes(signData),
		utxos:     append([]*UTXO(nil), utxos...),
		certKeys:  append([]*CertKey(nil), certKeys...),
		origin:    origin,
	}, nil
}

func (r *SignRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

// SignData is the serialized transaction body
func (r *SignRequest) SignData() []byte {
	return registry.CopyBytes(r.signData)
}

func (r *SignRequest) UTXOs() []*UTXO {
	return append([]*UTXO(nil), r.utxos...)
}

func (r *SignRequest) CertKeys() []*CertKey {
	return append([]*CertKey(nil), r.certKeys...)
}

func (r *SignRequest) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (*SignRequest) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignRequest
}

func (r *SignRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldRequestID, r.requestID)
	ret.Set(fieldSignData, r.signData)
	ret.Set(fieldUTXOs, taggedList(r.utxos))
	ret.Set(fieldCertKeys, taggedList(r.certKeys))
	registry.SetOption(ret, fieldOrigin, r.origin)
	return ret
}

func (r *SignRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignRequestFromCbor(v cbor.Value) (*SignRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignRequest, v)
	if err != nil {
		return nil, err
	}
	ret := &SignRequest{}
	if ret.requestID, err = fields.RequestID(fieldRequestID); err != nil {
		return nil, err
	}
	if ret.signData, err = fields.RequiredBytes(fieldSignData); err != nil {
		return nil, err
	}
	ret.utxos, err = registry.Required(
		fields,
		fieldUTXOs,
		cbor.KindArray,
		taggedItems(registry.TypeCardanoUTXO, UTXOFromCbor),
	)
	if err != nil {
		return nil, err
	}
	ret.certKeys, err = registry.Required(
		fields,
		fieldCertKeys,
		cbor.KindArray,
		taggedItems(registry.TypeCardanoCertKey, CertKeyFromCbor),
	)
	if err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldOrigin); err != nil {
		return nil, err
	}
	return ret, nil
}

func SignRequestFromBytes(data []byte) (*SignRequest, error) {
	return registry.Decode(data, SignRequestFromCbor)
}
