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
	"fmt"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Cip8AddressType selects what goes in the address header of a CIP-8
// COSE_Sign1 structure
type Cip8AddressType uint8

const (
	Cip8AddressTypeAddress Cip8AddressType = 0
	Cip8AddressTypeKeyHash Cip8AddressType = 1
)

func (t Cip8AddressType) String() string {
	switch t {
	case Cip8AddressTypeAddress:
		return "address"
	case Cip8AddressTypeKeyHash:
		return "key-hash"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

var (
	fieldCip8RequestID      = registry.Field{Key: 1, Name: "request id"}
	fieldCip8SignData       = registry.Field{Key: 2, Name: "sign data"}
	fieldCip8DerivationPath = registry.Field{Key: 3, Name: "derivation path"}
	fieldCip8Origin         = registry.Field{Key: 4, Name: "origin"}
	fieldCip8Xpub           = registry.Field{Key: 5, Name: "xpub"}
	fieldCip8HashPayload    = registry.Field{Key: 6, Name: "hash payload"}
	fieldCip8Address        = registry.Field{Key: 7, Name: "address bech32"}
	fieldCip8AddressType    = registry.Field{Key: 8, Name: "address type"}
)

// SignCip8DataRequest asks a signer to sign a message following CIP-8
type SignCip8DataRequest struct {
	requestID      fn.Option[[]byte]
	signData       []byte
	derivationPath *registry.CryptoKeyPath
	origin         fn.Option[string]
	xpub           []byte
	hashPayload    bool
	address        fn.Option[string]
	addressType    Cip8AddressType
}

func NewSignCip8DataRequest(
	requestID fn.Option[[]byte],
	signData []byte,
	derivationPath *registry.CryptoKeyPath,
	origin fn.Option[string],
	xpub []byte,
	hashPayload bool,
	address fn.Option[string],
	addressType Cip8AddressType,
) (*SignCip8DataRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if err := requirePath(derivationPath); err != nil {
		return nil, err
	}
	if addressType != Cip8AddressTypeAddress && addressType != Cip8AddressTypeKeyHash {
		return nil, &registry.InvalidEnumValueError{
			Enum:  fieldCip8AddressType.Name,
			Value: int64(addressType),
		}
	}
	err := fn.ElimOption(address, func() error { return nil }, CheckAddress)
	if err != nil {
		return nil, err
	}
	return &SignCip8DataRequest{
		requestID:      registry.CloneBytes(requestID),
		signData:       registry.CopyBytes(signData),
		derivationPath: derivationPath,
		origin:         origin,
		xpub:           registry.CopyBytes(xpub),
		hashPayload:    hashPayload,
		address:        address,
		addressType:    addressType,
	}, nil
}

func (r *SignCip8DataRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

func (r *SignCip8DataRequest) SignData() []byte {
	return registry.CopyBytes(r.signData)
}

func (r *SignCip8DataRequest) DerivationPath() *registry.CryptoKeyPath {
	return r.derivationPath
}

func (r *SignCip8DataRequest) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (r *SignCip8DataRequest) Xpub() []byte {
	return registry.CopyBytes(r.xpub)
}

// HashPayload reports whether the signer should sign the blake2b-224 hash of
// the payload instead of the payload itself
func (r *SignCip8DataRequest) HashPayload() bool {
	return r.hashPayload
}

func (r *SignCip8DataRequest) Address() (string, bool) {
	return registry.Option(r.address)
}

func (r *SignCip8DataRequest) AddressType() Cip8AddressType {
	return r.addressType
}

func (*SignCip8DataRequest) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignCip8DataRequest
}

func (r *SignCip8DataRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldCip8RequestID, r.requestID)
	ret.Set(fieldCip8SignData, r.signData)
	ret.Set(fieldCip8DerivationPath, registry.Tagged(r.derivationPath))
	registry.SetOption(ret, fieldCip8Origin, r.origin)
	ret.Set(fieldCip8Xpub, r.xpub)
	ret.Set(fieldCip8HashPayload, r.hashPayload)
	registry.SetOption(ret, fieldCip8Address, r.address)
	ret.Set(fieldCip8AddressType, uint64(r.addressType))
	return ret
}

func (r *SignCip8DataRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignCip8DataRequestFromCbor(v cbor.Value) (*SignCip8DataRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignCip8DataRequest, v)
	if err != nil {
		return nil, err
	}
	ret := &SignCip8DataRequest{}
	if ret.requestID, err = fields.RequestID(fieldCip8RequestID); err != nil {
		return nil, err
	}
	if ret.signData, err = fields.RequiredBytes(fieldCip8SignData); err != nil {
		return nil, err
	}
	if ret.derivationPath, err = fields.RequiredKeyPath(fieldCip8DerivationPath); err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldCip8Origin); err != nil {
		return nil, err
	}
	if ret.xpub, err = fields.RequiredBytes(fieldCip8Xpub); err != nil {
		return nil, err
	}
	if ret.hashPayload, err = registry.Required(fields, fieldCip8HashPayload, cbor.KindBool, cbor.Value.Bool); err != nil {
		return nil, err
	}
	if ret.address, err = registry.Optional(fields, fieldCip8Address, cbor.KindText, addressGetter); err != nil {
		return nil, err
	}
	ret.addressType, err = registry.Required(
		fields,
		fieldCip8AddressType,
		cbor.KindInteger,
		decodeCip8AddressType,
	)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func SignCip8DataRequestFromBytes(data []byte) (*SignCip8DataRequest, error) {
	return registry.Decode(data, SignCip8DataRequestFromCbor)
}

func decodeCip8AddressType(v cbor.Value) (Cip8AddressType, error) {
	n, err := v.Integer()
	if err != nil {
		return 0, err
	}
	if n != int64(Cip8AddressTypeAddress) && n != int64(Cip8AddressTypeKeyHash) {
		return 0, &registry.InvalidEnumValueError{Enum: fieldCip8AddressType.Name, Value: n}
	}
	return Cip8AddressType(n), nil
}

var (
	fieldCip8SignatureRequestID = registry.Field{Key: 1, Name: "request id"}
	fieldCip8Signature          = registry.Field{Key: 2, Name: "signature"}
	fieldCip8PublicKey          = registry.Field{Key: 3, Name: "public key"}
	fieldCip8AddressField       = registry.Field{Key: 4, Name: "address field"}
)

// SignCip8DataSignature is the signer's reply to a SignCip8DataRequest. The
// address field holds the raw bytes placed in the COSE protected header
type SignCip8DataSignature struct {
	requestID    fn.Option[[]byte]
	signature    []byte
	publicKey    []byte
	addressField []byte
}

func NewSignCip8DataSignature(
	requestID fn.Option[[]byte],
	signature []byte,
	publicKey []byte,
	addressField []byte,
) (*SignCip8DataSignature, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if err := CheckPublicKey(fieldCip8PublicKey.Name, publicKey); err != nil {
		return nil, err
	}
	return &SignCip8DataSignature{
		requestID:    registry.CloneBytes(requestID),
		signature:    registry.CopyBytes(signature),
		publicKey:    registry.CopyBytes(publicKey),
		addressField: registry.CopyBytes(addressField),
	}, nil
}

func (s *SignCip8DataSignature) RequestID() (string, error) {
	return registry.RequestIDHex(s.requestID)
}

func (s *SignCip8DataSignature) Signature() []byte {
	return registry.CopyBytes(s.signature)
}

func (s *SignCip8DataSignature) PublicKey() []byte {
	return registry.CopyBytes(s.publicKey)
}

func (s *SignCip8DataSignature) AddressField() []byte {
	return registry.CopyBytes(s.addressField)
}

func (*SignCip8DataSignature) RegistryType() registry.RegistryType {
	return registry.TypeCardanoSignCip8DataSignature
}

func (s *SignCip8DataSignature) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldCip8SignatureRequestID, s.requestID)
	ret.Set(fieldCip8Signature, s.signature)
	ret.Set(fieldCip8PublicKey, s.publicKey)
	ret.Set(fieldCip8AddressField, s.addressField)
	return ret
}

func (s *SignCip8DataSignature) ToBytes() ([]byte, error) {
	return registry.Encode(s)
}

func SignCip8DataSignatureFromCbor(v cbor.Value) (*SignCip8DataSignature, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoSignCip8DataSignature, v)
	if err != nil {
		return nil, err
	}
	ret := &SignCip8DataSignature{}
	if ret.requestID, err = fields.RequestID(fieldCip8SignatureRequestID); err != nil {
		return nil, err
	}
	if ret.signature, err = fields.RequiredBytes(fieldCip8Signature); err != nil {
		return nil, err
	}
	ret.publicKey, err = registry.Required(
		fields,
		fieldCip8PublicKey,
		cbor.KindBytes,
		publicKeyGetter(fieldCip8PublicKey.Name),
	)
	if err != nil {
		return nil, err
	}
	if ret.addressField, err = fields.RequiredBytes(fieldCip8AddressField); err != nil {
		return nil, err
	}
	return ret, nil
}

func SignCip8DataSignatureFromBytes(data []byte) (*SignCip8DataSignature, error) {
	return registry.Decode(data, SignCip8DataSignatureFromCbor)
}
