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

// Package resolver maps registry type names to the decoders for their items.
//
// The default table covers every type in the registry catalog. Additional
// types can be added with Register before the resolver is shared.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/blinklabs-io/ur-registry/registry/cardano"
	"github.com/blinklabs-io/ur-registry/registry/ethereum"
	"github.com/blinklabs-io/ur-registry/registry/solana"
	"github.com/blinklabs-io/ur-registry/transport"
)

var (
	ErrIncompleteMessage = errors.New("no data received before get result")
	ErrDuplicateType     = errors.New("type already registered")
)

// DecodeFunc decodes the CBOR bytes of a single registry item
type DecodeFunc func(data []byte) (registry.Item, error)

// Resolver selects a decoder by registry type name
type Resolver struct {
	logger   *slog.Logger
	mutex    sync.RWMutex
	decoders map[string]DecodeFunc
}

// ResolverOptionFunc is a type that represents functions that modify the Resolver config
type ResolverOptionFunc func(*Resolver)

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) ResolverOptionFunc {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New returns a Resolver with a decoder for every registry type
func New(opts ...ResolverOptionFunc) *Resolver {
	r := &Resolver{
		decoders: make(map[string]DecodeFunc),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	for _, entry := range defaultDecoders() {
		r.decoders[entry.rt.Name] = entry.decode
	}
	return r
}

var defaultResolver = sync.OnceValue(func() *Resolver { return New() })

// Resolve decodes data with the shared default Resolver
func Resolve(typeName string, data []byte) (registry.Item, error) {
	return defaultResolver().Resolve(typeName, data)
}

// Register adds a decoder for a type. Registering a name twice fails with
// ErrDuplicateType
func (r *Resolver) Register(rt registry.RegistryType, decode DecodeFunc) error {
	if rt.Name == "" {
		return errors.New("type name must not be empty")
	}
	if decode == nil {
		return fmt.Errorf("no decoder given for %s", rt.Name)
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.decoders[rt.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, rt.Name)
	}
	r.decoders[rt.Name] = decode
	r.logger.Debug("registered decoder", "type", rt.Name, "tag", rt.Tag)
	return nil
}

// TypeNames returns the names of all types with a decoder, sorted
func (r *Resolver) TypeNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	ret := make([]string, 0, len(r.decoders))
	for name := range r.decoders {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}

// Resolve decodes data as an item of the named type. Names are matched
// exactly; an unknown name fails with *registry.UnsupportedTypeError
func (r *Resolver) Resolve(typeName string, data []byte) (registry.Item, error) {
	r.mutex.RLock()
	decode, ok := r.decoders[typeName]
	r.mutex.RUnlock()
	if !ok {
		r.logger.Debug("unsupported type", "type", typeName)
		return nil, &registry.UnsupportedTypeError{Name: typeName}
	}
	item, err := decode(data)
	if err != nil {
		r.logger.Debug(
			"failed to decode item",
			"type",
			typeName,
			"length",
			len(data),
			"error",
			err,
		)
		return nil, fmt.Errorf("resolve %s: %w", typeName, err)
	}
	r.logger.Debug("resolved item", "type", typeName, "length", len(data))
	return item, nil
}

// ResolveMessage decodes the payload assembled by src
func (r *Resolver) ResolveMessage(src transport.MessageSource, typeName string) (registry.Item, error) {
	data, err := src.Message()
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, ErrIncompleteMessage
	}
	return r.Resolve(typeName, data)
}

type decoderEntry struct {
	rt     registry.RegistryType
	decode DecodeFunc
}

// decoder adapts a typed FromBytes function
func decoder[T registry.Item](fromBytes func([]byte) (T, error)) DecodeFunc {
	return func(data []byte) (registry.Item, error) {
		item, err := fromBytes(data)
		if err != nil {
			return nil, err
		}
		return item, nil
	}
}

func defaultDecoders() []decoderEntry {
	return []decoderEntry{
		{registry.TypeUUID, decoder(registry.UUIDFromBytes)},
		{registry.TypeCryptoHDKey, decoder(registry.CryptoHDKeyFromBytes)},
		{registry.TypeCryptoKeyPath, decoder(registry.CryptoKeyPathFromBytes)},
		{registry.TypeCryptoCoinInfo, decoder(registry.CryptoCoinInfoFromBytes)},
		{registry.TypeCryptoECKey, decoder(registry.CryptoECKeyFromBytes)},
		{registry.TypeCryptoOutput, decoder(registry.CryptoOutputFromBytes)},
		{registry.TypeCryptoPSBT, decoder(registry.CryptoPSBTFromBytes)},
		{registry.TypeCryptoAccount, decoder(registry.CryptoAccountFromBytes)},
		{registry.TypeCryptoMultiAccounts, decoder(registry.CryptoMultiAccountsFromBytes)},
		{registry.TypeEthSignRequest, decoder(ethereum.SignRequestFromBytes)},
		{registry.TypeEthSignature, decoder(ethereum.SignatureFromBytes)},
		{registry.TypeSolSignRequest, decoder(solana.SignRequestFromBytes)},
		{registry.TypeSolSignature, decoder(solana.SignatureFromBytes)},
		{registry.TypeCardanoUTXO, decoder(cardano.UTXOFromBytes)},
		{registry.TypeCardanoSignRequest, decoder(cardano.SignRequestFromBytes)},
		{registry.TypeCardanoSignature, decoder(cardano.SignatureFromBytes)},
		{registry.TypeCardanoCertKey, decoder(cardano.CertKeyFromBytes)},
		{registry.TypeCardanoSignDataRequest, decoder(cardano.SignDataRequestFromBytes)},
		{registry.TypeCardanoSignDataSignature, decoder(cardano.SignDataSignatureFromBytes)},
		{registry.TypeCardanoCatalystVotingRegistration, decoder(cardano.CatalystVotingRegistrationFromBytes)},
		{registry.TypeCardanoCatalystVotingRegistrationSignature, decoder(cardano.CatalystSignatureFromBytes)},
		{registry.TypeCardanoDelegation, decoder(cardano.DelegationFromBytes)},
		{registry.TypeCardanoSignTxHashRequest, decoder(cardano.SignTxHashRequestFromBytes)},
		{registry.TypeCardanoSignCip8DataRequest, decoder(cardano.SignCip8DataRequestFromBytes)},
		{registry.TypeCardanoSignCip8DataSignature, decoder(cardano.SignCip8DataSignatureFromBytes)},
	}
}
