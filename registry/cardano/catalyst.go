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
	"errors"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// VotingPurposeCatalyst is the voting purpose defined for Project Catalyst
const VotingPurposeCatalyst uint8 = 0

var (
	fieldCatalystRequestID      = registry.Field{Key: 1, Name: "request id"}
	fieldCatalystDelegations    = registry.Field{Key: 2, Name: "delegations"}
	fieldCatalystStakePub       = registry.Field{Key: 3, Name: "stake pub"}
	fieldCatalystPaymentAddress = registry.Field{Key: 4, Name: "payment address"}
	fieldCatalystNonce          = registry.Field{Key: 5, Name: "nonce"}
	fieldCatalystVotingPurpose  = registry.Field{Key: 6, Name: "voting purpose"}
	fieldCatalystDerivationPath = registry.Field{Key: 7, Name: "derivation path"}
	fieldCatalystOrigin         = registry.Field{Key: 8, Name: "origin"}
	fieldCatalystSignType       = registry.Field{Key: 9, Name: "sign type"}
)

// CatalystVotingRegistration asks a signer to sign a vote key registration
// for the stake key at the derivation path
type CatalystVotingRegistration struct {
	requestID      fn.Option[[]byte]
	delegations    []*Delegation
	stakePub       []byte
	paymentAddress []byte
	nonce          uint64
	votingPurpose  uint8
	derivationPath *registry.CryptoKeyPath
	origin         fn.Option[string]
	signType       uint8
}

func NewCatalystVotingRegistration(
	requestID fn.Option[[]byte],
	delegations []*Delegation,
	stakePub []byte,
	paymentAddress []byte,
	nonce uint64,
	votingPurpose uint8,
	derivationPath *registry.CryptoKeyPath,
	origin fn.Option[string],
	signType uint8,
) (*CatalystVotingRegistration, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	for _, d := range delegations {
		if d == nil {
			return nil, errors.New("delegation must not be nil")
		}
	}
	if err := CheckPublicKey(fieldCatalystStakePub.Name, stakePub); err != nil {
		return nil, err
	}
	if err := requirePath(derivationPath); err != nil {
		return nil, err
	}
	return &CatalystVotingRegistration{
		requestID:      registry.CloneBytes(requestID),
		delegations:    append([]*Delegation(nil), delegations...),
		stakePub:       registry.CopyBytes(stakePub),
		paymentAddress: registry.CopyBytes(paymentAddress),
		nonce:          nonce,
		votingPurpose:  votingPurpose,
		derivationPath: derivationPath,
		origin:         origin,
		signType:       signType,
	}, nil
}

func (r *CatalystVotingRegistration) RequestID() (string, error) {
	return registry.RequestIDHex(r.requestID)
}

func (r *CatalystVotingRegistration) Delegations() []*Delegation {
	return append([]*Delegation(nil), r.delegations...)
}

func (r *CatalystVotingRegistration) StakePub() []byte {
	return registry.CopyBytes(r.stakePub)
}

func (r *CatalystVotingRegistration) PaymentAddress() []byte {
	return registry.CopyBytes(r.paymentAddress)
}

func (r *CatalystVotingRegistration) Nonce() uint64 {
	return r.nonce
}

func (r *CatalystVotingRegistration) VotingPurpose() uint8 {
	return r.votingPurpose
}

func (r *CatalystVotingRegistration) DerivationPath() *registry.CryptoKeyPath {
	return r.derivationPath
}

func (r *CatalystVotingRegistration) Origin() (string, bool) {
	return registry.Option(r.origin)
}

func (r *CatalystVotingRegistration) SignType() uint8 {
	return r.signType
}

func (*CatalystVotingRegistration) RegistryType() registry.RegistryType {
	return registry.TypeCardanoCatalystVotingRegistration
}

func (r *CatalystVotingRegistration) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldCatalystRequestID, r.requestID)
	ret.Set(fieldCatalystDelegations, taggedList(r.delegations))
	ret.Set(fieldCatalystStakePub, r.stakePub)
	ret.Set(fieldCatalystPaymentAddress, r.paymentAddress)
	ret.Set(fieldCatalystNonce, r.nonce)
	ret.Set(fieldCatalystVotingPurpose, uint64(r.votingPurpose))
	ret.Set(fieldCatalystDerivationPath, registry.Tagged(r.derivationPath))
	registry.SetOption(ret, fieldCatalystOrigin, r.origin)
	ret.Set(fieldCatalystSignType, uint64(r.signType))
	return ret
}

func (r *CatalystVotingRegistration) ToBytes() ([]byte, error) {
	return registry.Encode(r)
}

func CatalystVotingRegistrationFromCbor(v cbor.Value) (*CatalystVotingRegistration, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoCatalystVotingRegistration, v)
	if err != nil {
		return nil, err
	}
	ret := &CatalystVotingRegistration{}
	if ret.requestID, err = fields.RequestID(fieldCatalystRequestID); err != nil {
		return nil, err
	}
	ret.delegations, err = registry.Required(
		fields,
		fieldCatalystDelegations,
		cbor.KindArray,
		taggedItems(registry.TypeCardanoDelegation, DelegationFromCbor),
	)
	if err != nil {
		return nil, err
	}
	ret.stakePub, err = registry.Required(
		fields,
		fieldCatalystStakePub,
		cbor.KindBytes,
		publicKeyGetter(fieldCatalystStakePub.Name),
	)
	if err != nil {
		return nil, err
	}
	if ret.paymentAddress, err = fields.RequiredBytes(fieldCatalystPaymentAddress); err != nil {
		return nil, err
	}
	if ret.nonce, err = fields.RequiredUint(fieldCatalystNonce); err != nil {
		return nil, err
	}
	ret.votingPurpose, err = registry.Required(
		fields,
		fieldCatalystVotingPurpose,
		cbor.KindInteger,
		uint8Getter(fieldCatalystVotingPurpose.Name),
	)
	if err != nil {
		return nil, err
	}
	if ret.derivationPath, err = fields.RequiredKeyPath(fieldCatalystDerivationPath); err != nil {
		return nil, err
	}
	if ret.origin, err = fields.Text(fieldCatalystOrigin); err != nil {
		return nil, err
	}
	ret.signType, err = registry.Required(
		fields,
		fieldCatalystSignType,
		cbor.KindInteger,
		uint8Getter(fieldCatalystSignType.Name),
	)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func CatalystVotingRegistrationFromBytes(data []byte) (*CatalystVotingRegistration, error) {
	return registry.Decode(data, CatalystVotingRegistrationFromCbor)
}

var (
	fieldCatalystSignatureRequestID = registry.Field{Key: 1, Name: "request id"}
	fieldCatalystSignature          = registry.Field{Key: 2, Name: "signature"}
)

// CatalystSignature is the signer's reply to a CatalystVotingRegistration
type CatalystSignature struct {
	requestID fn.Option[[]byte]
	signature []byte
}

func NewCatalystSignature(requestID fn.Option[[]byte], signature []byte) (*CatalystSignature, error) {
	if err := registry.CheckRequestID(requestID); err != nil {
		return nil, err
	}
	return &CatalystSignature{
		requestID: registry.CloneBytes(requestID),
		signature: registry.CopyBytes(signature),
	}, nil
}

func (s *CatalystSignature) RequestID() (string, error) {
	return registry.RequestIDHex(s.requestID)
}

func (s *CatalystSignature) Signature() []byte {
	return registry.CopyBytes(s.signature)
}

func (*CatalystSignature) RegistryType() registry.RegistryType {
	return registry.TypeCardanoCatalystVotingRegistrationSignature
}

func (s *CatalystSignature) ToCbor() any {
	ret := registry.CborMap{}
	registry.SetRequestID(ret, fieldCatalystSignatureRequestID, s.requestID)
	ret.Set(fieldCatalystSignature, s.signature)
	return ret
}

func (s *CatalystSignature) ToBytes() ([]byte, error) {
	return registry.Encode(s)
}

func CatalystSignatureFromCbor(v cbor.Value) (*CatalystSignature, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoCatalystVotingRegistrationSignature, v)
	if err != nil {
		return nil, err
	}
	ret := &CatalystSignature{}
	if ret.requestID, err = fields.RequestID(fieldCatalystSignatureRequestID); err != nil {
		return nil, err
	}
	if ret.signature, err = fields.RequiredBytes(fieldCatalystSignature); err != nil {
		return nil, err
	}
	return ret, nil
}

func CatalystSignatureFromBytes(data []byte) (*CatalystSignature, error) {
	return registry.Decode(data, CatalystSignatureFromCbor)
}
