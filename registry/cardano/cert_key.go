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
	"golang.org/x/crypto/blake2b"
)

var (
	fieldCertKeyHash    = registry.Field{Key: 1, Name: "key hash"}
	fieldCertKeyKeyPath = registry.Field{Key: 2, Name: "key path"}
)

// CertKey identifies a stake key that must witness a certificate in the
// transaction being signed
type CertKey struct {
	keyHash []byte
	keyPath *registry.CryptoKeyPath
}

func NewCertKey(keyHash []byte, keyPath *registry.CryptoKeyPath) (*CertKey, error) {
	if err := registry.CheckLength(fieldCertKeyHash.Name, keyHash, KeyHashLength); err != nil {
		return nil, err
	}
	if err := requirePath(keyPath); err != nil {
		return nil, err
	}
	return &CertKey{
		keyHash: registry.CopyBytes(keyHash),
		keyPath: keyPath,
	}, nil
}

// NewCertKeyFromPublicKey builds a CertKey from a stake public key, hashing
// it the way stake credentials are hashed on chain
func NewCertKeyFromPublicKey(
	publicKey []byte,
	keyPath *registry.CryptoKeyPath,
) (*CertKey, error) {
	keyHash, err := KeyHash(publicKey)
	if err != nil {
		return nil, err
	}
	return NewCertKey(keyHash, keyPath)
}

// KeyHash returns the blake2b-224 hash of an Ed25519 public key
func KeyHash(publicKey []byte) ([]byte, error) {
	if err := CheckPublicKey("public key", publicKey); err != nil {
		return nil, err
	}
	h, err := blake2b.New(KeyHashLength, nil)
	if err != nil {
		return nil, fmt.Errorf("blake2b: %w", err)
	}
	h.Write(publicKey)
	return h.Sum(nil), nil
}

func (c *CertKey) KeyHash() []byte {
	return registry.CopyBytes(c.keyHash)
}

func (c *CertKey) KeyPath() *registry.CryptoKeyPath {
	return c.keyPath
}

func (*CertKey) RegistryType() registry.RegistryType {
	return registry.TypeCardanoCertKey
}

func (c *CertKey) ToCbor() any {
	ret := registry.CborMap{}
	ret.Set(fieldCertKeyHash, c.keyHash)
	ret.Set(fieldCertKeyKeyPath, registry.Tagged(c.keyPath))
	return ret
}

func (c *CertKey) ToBytes() ([]byte, error) {
	return registry.Encode(c)
}

func CertKeyFromCbor(v cbor.Value) (*CertKey, error) {
	fields, err := registry.NewFieldMap(registry.TypeCardanoCertKey, v)
	if err != nil {
		return nil, err
	}
	ret := &CertKey{}
	if ret.keyHash, err = fields.RequiredBytes(fieldCertKeyHash); err != nil {
		return nil, err
	}
	if err := registry.CheckLength(fieldCertKeyHash.Name, ret.keyHash, KeyHashLength); err != nil {
		return nil, fields.Wrap(fieldCertKeyHash, err)
	}
	if ret.keyPath, err = fields.RequiredKeyPath(fieldCertKeyKeyPath); err != nil {
		return nil, err
	}
	return ret, nil
}

func CertKeyFromBytes(data []byte) (*CertKey, error) {
	return registry.Decode(data, CertKeyFromCbor)
}
