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

// Package ethereum implements the eth-sign-request and eth-signature registry items
package ethereum

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// DataType describes what the sign data of a request holds
type DataType uint8

const (
	DataTypeTransaction      DataType = 1
	DataTypeTypedData        DataType = 2
	DataTypePersonalMessage  DataType = 3
	DataTypeTypedTransaction DataType = 4
)

func (d DataType) String() string {
	switch d {
	case DataTypeTransaction:
		return "transaction"
	case DataTypeTypedData:
		return "typed-data"
	case DataTypePersonalMessage:
		return "personal-message"
	case DataTypeTypedTransaction:
		return "typed-transaction"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

func (d DataType) valid() bool {
	return d >= DataTypeTransaction && d <= DataTypeTypedTransaction
}

var (
	fieldRequestID      = registry.Field{Key: 1, Name: "request id"}
	fieldSignData       = registry.Field{Key: 2, Name: "sign data"}
	fieldDataType       = registry.Field{Key: 3, Name: "data type"}
	fieldChainID        = registry.Field{Key: 4, Name: "chain id"}
	fieldDerivationPath = registry.Field{Key: 5, Name: "derivation path"}
	fieldAddress        = registry.Field{Key: 6, Name: "address"}
	fieldOrigin         = registry.Field{Key: 7, Name: "origin"}
)

// SignRequest asks a signer to sign an Ethereum transaction or message
type SignRequest struct {
	requestID      fn.Option[[]byte]
	signData       []byte
	dataType       DataType
	chainID        fn.Option[int64]
	derivationPath *registry.CryptoKeyPath
	address        fn.Option[[]byte]
	origin         fn.Option[string]
}

func NewSignRequest(
	requestID fn.Option[[]byte],
	signData []byte,
	dataType DataType,
	chainID fn.Option[int64],
	derivationPath *registry.CryptoKeyPath,
	address fn.Option[[]byte],
	origin fn.Option[string],
) (*SignRequest, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	if !dataType.valid() {
		return nil, &registry.InvalidEnumValueError{
			Enum:  fieldDataType.Name,
			Value: int64(dataType),
		}
	}
	if derivationPath == nil {
		return nil, errors.New("derivation path is required")
	}
	return &SignRequest{
		requestID:      registry.CloneBytes(requestID),
		signData:       registry.CopyBytes(signData),
		dataType:       dataType,
		chainID:        chainID,
		derivationPath: derivationPath,
		address:        registry.CloneBytes(address),
		origin:         origin,
	}, nil
}

// RequestID returns the request id as hex, or registry.ErrNoRequestID
func (r *SignRequest) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

func (r *SignRequest) SignData() []byte {
	return registry.CopyBytes(r.signData)
}

func (r *SignRequest) DataType() DataType {
	return r.dataType
}

func (r *SignRequest) ChainID() (int64, bool) {
	return registry.Option(r.chainID)
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

func (*SignRequest) RegistryType() registry.RegistryType {
	return registry.TypeEthSignRequest
}

func (r *SignRequest) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldRequestID, r.requestID)
	ret.Set(fieldSignData, r.signData)
	ret.Set(fieldDataType, uint64(r.dataType))
	registry.SetOption(ret, fieldChainID, r.chainID)
	ret.Set(fieldDerivationPath, registry.Tagged(r.derivationPath))
	registry.SetOption(ret, fieldAddress, r.address)
	registry.SetOption(ret, fieldOrigin, r.origin)
	return ret
}

func (r *SignRequest) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func SignRequestFromCbor(v cbor.Value) (*SignRequest, error) {
	fields, err := registry.NewFieldMap(registry.TypeEthSignRequest, v)
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
	if ret.dataType, err = registry.Required(fields, fieldDataType, cbor.KindInteger, decodeDataType); err != nil {
		return nil, err
	}
	if ret.chainID, err = fields.Int(fieldChainID); err != nil {
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
	return ret, nil
}

func SignRequestFromBytes(data []byte) (*SignRequest, error) {
	return registry.Decode(data, SignRequestFromCbor)
}

func decodeDataType(v cbor.Value) (DataType, error) {
	n, err := v.Integer()
	if err != nil {
		return 0, err
	}
	if n < int64(DataTypeTransaction) || n > int64(DataTypeTypedTransaction) {
		return 0, &registry.InvalidEnumValueError{Enum: fieldDataType.Name, Value: n}
	}
	return DataType(n), nil
}
