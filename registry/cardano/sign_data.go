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
	fieldSignDataRequestID      = registry.Field{Key: 1, Name: "request id"}
	fieldSignDataPayload        = registry.Field{Key: 2, Name: "sign data"}
	fieldSignDataDerivationPath = registry.Field{Key: 3, Name: "derivation path"}
	fieldSignDataOrigin         = registry.Field{Key: 4, Name: "origin"}
	fieldSignDataXpub           = registry.Field{Key: 5, Name: "xpub"}
)

// SignDataRequest asks a signer to sign arbitrary data with the key at the
// derivation path
type SignDataRequest struct {
	requestID      fn.Option[[]byte]
	signData       []byte
	derivationPath *registry.CryptoKeyPath
	origin         fn.Option[string]
	xpub           []byte
}

func NewSignDataRequest(
	requestID fn.Option[[]byte],
	signData []byte,
	derivationPath *registry.CryptoKeyPath,
	origin fn.Option[string],
	xpub []byte,
) (*SignDataRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if err := requirePath(derivationPath); err != nil {
		return nil, err
	}
	return &SignDataRequest{
		requestID:      registry.CloneBytes(requestID),
		signData:       registry.CopyBytes(signData),
		derivationPath: derivationPath,
		origin:         origin,
		xpub:           registry.CopyBytes(xpub),
	}, nil
}

func (r *SignDataRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

func (r *SignDataRequest) SignData() []byte {
	return registry.CopyBytes(r.signData)
}

func (r *SignDataRequest) DerivationPath() *registry.CryptoKeyPath {
	return r.derivationPath
}

func (r *SignDataRequest) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (r *SignDataRequest) Xpub() []byte {
	return registry.CopyBytes(r.xpub)
}

func (*SignDataRequest) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignDataRequest
}

func (r *SignDataRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldSignDataRequestID, r.requestID)
	ret.Set(fieldSignDataPayload, r.signData)
	ret.Set(fieldSignDataDerivationPath, registry.Tagged(r.derivationPath))
	registry.SetOption(ret, fieldSignDataOrigin, r.origin)
	ret.Set(fieldSignDataXpub, r.xpub)
	return ret
}

func (r *SignDataRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignDataRequestFromCbor(v cbor.Value) (*SignDataRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignDataRequest, v)
	if err != nil {
		return nil, err
	}
	ret := &SignDataRequest{}
	if ret.requestID, err = fields.RequestID(fieldSignDataRequestID); err != nil {
		return nil, err
	}
	if ret.signData, err = fields.RequiredBytes(fieldSignDataPayload); err != nil {
		return nil, err
	}
	if ret.derivationPath, err = fields.RequiredKeyPath(fieldSignDataDerivationPath); err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldSignDataOrigin); err != nil {
		return nil, err
	}
	if ret.xpub, err = fields.RequiredBytes(fieldSignDataXpub); err != nil {
		return nil, err
	}
	return ret, nil
}

func SignDataRequestFromBytes(data []byte) (*SignDataRequest, error) {
	return registry.Decode(data, SignDataRequestFromCbor)
}

var (
	fieldSignDataSignatureRequestID = registry.Field{Key: 1, Name: "request id"}
	fieldSignDataSignature          = registry.Field{Key: 2, Name: "signature"}
	fieldSignDataPublicKey          = registry.Field{Key: 3, Name: "public key"}
)

// SignDataSignature is the signer's reply to a SignDataRequest
type SignDataSignature struct {
	requestID fn.Option[[]byte]
	signature []byte
	publicKey []byte
}

func NewSignDataSignature(
	requestID fn.Option[[]byte],
	signature []byte,
	publicKey []byte,
) (*SignDataSignature, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if err := CheckPublicKey(fieldSignDataPublicKey.Name, publicKey); err != nil {
		return nil, err
	}
	return &SignDataSignature{
		requestID: registry.CloneBytes(requestID),
		signature: registry.CopyBytes(signature),
		publicKey: registry.CopyBytes(publicKey),
	}, nil
}

func (s *SignDataSignature) RequestID() (string, error) {
	return registry.RequestIDHex(s.requestID)
}

func (s *SignDataSignature) Signature() []byte {
	return registry.CopyBytes(s.signature)
}

func (s *SignDataSignature) PublicKey() []byte {
	return registry.CopyBytes(s.publicKey)
}

func (*SignDataSignature) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignDataSignature
}

func (s *SignDataSignature) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldSignDataSignatureRequestID, s.requestID)
	ret.Set(fieldSignDataSignature, s.signature)
	ret.Set(fieldSignDataPublicKey, s.publicKey)
	return ret
}

func (s *SignDataSignature) ToBytes() ([]byte, error) {
	return registry.Encode(s)
}

func SignDataSignatureFromCbor(v cbor.Value) (*SignDataSignature, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignDataSignature, v)
	if err != nil {
		return nil, err
	}
	ret := &SignDataSignature{}
	if ret.requestID, err = fields.RequestID(fieldSignDataSignatureRequestID); err != nil {
		return nil, err
	}
	if ret.signature, err = fields.RequiredBytes(fieldSignDataSignature); err != nil {
		return nil, err
	}
	ret.publicKey, err = registry.Required(
		fields,
		fieldSignDataPublicKey,
		cbor.KindBytes,
		publicKeyGetter(fieldSignDataPublicKey.Name),
	)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func SignDataSignatureFromBytes(data []byte) (*SignDataSignature, error) {
	return registry.Decode(data, SignDataSignatureFromCbor)
}
