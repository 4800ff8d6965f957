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

package solana

import (
	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
)

var (
	fieldSignatureRequestID = registry.Field{Key: 1, Name: "request id"}
	fieldSignature          = registry.Field{Key: 2, Name: "signature"}
)

type Signature struct {
	requestID fn.Option[[]byte]
	signature []byte
}

func NewSignature(requestID fn.Option[[]byte], signature []byte) (*Signature, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	return &Signature{
		requestID: registry.CloneBytes(requestID),
		signature: registry.CopyBytes(signature),
	}, nil
}

func (s *Signature) RequestID() (string, error) {
	return registry.RequestIDHex(s.requestID)
}

func (s *Signature) Signature() []byte {
	return registry.CopyBytes(s.signature)
}

func (*Signature) RegistryType() registry.RegistryType {
	return registry.TypeSolSignature
}

func (s *Signature) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldSignatureRequestID, s.requestID)
	ret.Set(fieldSignature, s.signature)
	return ret
}

func (s *Signature) ToBytes() ([]byte, error) {
	return registry.Encode(s)
}

func SignatureFromCbor(v cbor.Value) (*Signature, error) {
	fields, err := registry.NewFieldMap(registry.TypeSolSignature, v)
	if err != nil {
		return nil, err
	}
	ret := &Signature{}
	if ret.requestID, err = fields.RequestID(fieldSignatureRequestID); err != nil {
		return nil, err
	}
	if ret.signature, err = fields.RequiredBytes(fieldSignature); err != nil {
		return nil, err
	}
	return ret, nil
}

func SignatureFromBytes(data []byte) (*Signature, error) {
	return registry.Decode(data, SignatureFromCbor)
}
