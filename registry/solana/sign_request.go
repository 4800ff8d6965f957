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

// Package solana implements the sol-sign-request and sol-signature registry items
package solana

import (
	"errors"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
)

type SignType uint8

const (
	SignTypeTransaction SignType = 1
	SignTypeMessage     SignType = 2
)

func (s SignType) String() string {
	switch s {
	case SignTypeTransaction:
		return "transaction"
	case SignTypeMessage:
		return "message"
	default:
		return "unknown"
	}
}

var (
	fieldRequestID      = registry.Field{Key: 1, Name: "request id"}
	fieldSignData       = registry.Field{Key: 2, Name: "sign data"}
	fieldDerivationPath = registry.Field{Key: 3, Name: "derivation path"}
	fieldAddress        = registry.Field{Key: 4, Name: "address"}
	fieldOrigin         = registry.Field{Key: 5, Name: "origin"}
	fieldSignType       = registry.Field{Key: 6, Name: "sign type"}
)

// SignRequest asks a signer to sign a Solana transaction or message
type SignRequest struct {
	requestID      fn.Option[[]byte]
	signData       []byte
	derivationPath *registry.CryptoKeyPath
	address        fn.Option[[]byte]
	origin         fn.Option[string]
	signType       SignType
}

func NewSignRequest(
	requestID fn.Option[[]byte],
	signData []byte,
	derivationPath *registry.CryptoKeyPath,
	address fn.Option[[]byte],
	origin fn.Option[string],
	signType SignType,
) (*SignRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if derivationPath == nil {
		return nil, errors.New("derivation path is required")
	}
	if signType != SignTypeTransaction && signType != SignTypeMessage {
		return nil, &registry.InvalidEnumValueError{
			Enum:  fieldSignType.Name,
			Value: int64(signType),
		}
	}
	return &SignRequest{
		requestID:      registry.CloneBytes(requestID),
		signData:       registry.CopyBytes(signData),
		derivationPath: derivationPath,
		address:        registry.CloneBytes(address),
		origin:         origin,
		signType:       signType,
	}, nil
}

func (r *SignRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

func (r *SignRequest) SignData() []byte {
	return registry.CopyBytes(r.signData)
}

func (r *SignRequest) DerivationPath() *registry.CryptoKeyPath {
	return r.derivationPath
}

func (r *SignRequest) Address() ([]byte, bool) {
	return registry.Option(registry.CloneBytes(r.address))
}

func (r *SignRequest) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (r *SignRequest) SignType() SignType {
	return r.signType
}

func (*SignRequest) RegistryType() registry.RegistryType {
	return registry.TypeSolSignRequest
}

func (r *SignRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldRequestID, r.requestID)
	ret.Set(fieldSignData, r.signData)
	ret.Set(fieldDerivationPath, registry.Tagged(r.derivationPath))
	registry.SetOption(ret, fieldAddress, r.address)
	registry.SetOption(ret, fieldOrigin, r.origin)
	ret.Set(fieldSignType, uint64(r.signType))
	return ret
}

func (r *SignRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignRequestFromCbor(v cbor.Value) (*SignRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeSolSignRequest, v)
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
	if ret.derivationPath, err = fields.RequiredKeyPath(fieldDerivationPath); err != nil {
		return nil, err
	}
	if ret.address, err = fields.Bytes(fieldAddress); err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldOrigin); err != nil {
		return nil, err
	}
	if ret.signType, err = registry.Required(fields, fieldSignType, cbor.KindInteger, decodeSignType); err != nil {
		return nil, err
	}
	return ret, nil
}

func SignRequestFromBytes(data []byte) (*SignRequest, error) {
	return registry.Decode(data, SignRequestFromCbor)
}

func decodeSignType(v cbor.Value) (SignType, error) {
	n, err := v.Integer()
	if err != nil {
		return 0, err
	}
	switch n {
	case int64(SignTypeTransaction), int64(SignTypeMessage):
		return SignType(n), nil
	}
	return 0, &registry.InvalidEnumValueError{Enum: fieldSignType.Name, Value: n}
}
