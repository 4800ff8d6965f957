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

package registry

import (
	"errors"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/lightningnetwork/lnd/fn/v2"
)

const (
	hdKeyLength     = 33
	chainCodeLength = 32
)

var (
	fieldHDKeyIsMaster          = Field{Key: 1, Name: "is master"}
	fieldHDKeyIsPrivate         = Field{Key: 2, Name: "is private"}
	fieldHDKeyKeyData           = Field{Key: 3, Name: "key data"}
	fieldHDKeyChainCode         = Field{Key: 4, Name: "chain code"}
	fieldHDKeyUseInfo           = Field{Key: 5, Name: "use info"}
	fieldHDKeyOrigin            = Field{Key: 6, Name: "origin"}
	fieldHDKeyChildren          = Field{Key: 7, Name: "children"}
	fieldHDKeyParentFingerprint = Field{Key: 8, Name: "parent fingerprint"}
	fieldHDKeyName              = Field{Key: 9, Name: "name"}
	fieldHDKeyNote              = Field{Key: 10, Name: "note"}
)

// CryptoHDKey is either a *MasterHDKey or an *ExtendedHDKey
type CryptoHDKey interface {
	Item
	IsMaster() bool
	IsPrivateKey() bool
	KeyData() []byte
	ChainCode() ([]byte, bool)
	ParentFingerprint() ([4]byte, bool)
	Origin() (*CryptoKeyPath, bool)
	// BIP32Key returns the Base58Check extended key string
	BIP32Key() string
	// AccountIndex returns the canonical index of the origin component at level
	AccountIndex(level int) (uint32, bool)
	// Depth returns the depth stored in the origin path
	Depth() (uint32, bool)
	isCryptoHDKey()
}

// MasterHDKey is the root of a key hierarchy
type MasterHDKey struct {
	key       []byte
	chainCode []byte
}

// NewMasterHDKey requires a 33-byte key and a 32-byte chain code
func NewMasterHDKey(key []byte, chainCode []byte) (*MasterHDKey, error) {
	if err := CheckLength(fieldHDKeyKeyData.Name, key, hdKeyLength); err != nil {
		return nil, err
	}
	if err := CheckLength(fieldHDKeyChainCode.Name, chainCode, chainCodeLength); err != nil {
		return nil, err
	}
	return &MasterHDKey{
		key:       CopyBytes(key),
		chainCode: CopyBytes(chainCode),
	}, nil
}

func (*MasterHDKey) isCryptoHDKey() {}

func (*MasterHDKey) IsMaster() bool { return true }

// IsPrivateKey always returns true, as a master key carries private key material
func (*MasterHDKey) IsPrivateKey() bool { return true }

func (k *MasterHDKey) KeyData() []byte { return CopyBytes(k.key) }

func (k *MasterHDKey) ChainCode() ([]byte, bool) { return CopyBytes(k.chainCode), true }

func (*MasterHDKey) ParentFingerprint() ([4]byte, bool) { return [4]byte{}, false }

func (*MasterHDKey) Origin() (*CryptoKeyPath, bool) { return nil, false }

func (k *MasterHDKey) BIP32Key() string { return BIP32Key(k) }

func (*MasterHDKey) AccountIndex(int) (uint32, bool) { return 0, false }

func (*MasterHDKey) Depth() (uint32, bool) { return 0, false }

func (*MasterHDKey) RegistryType() RegistryType {
	return TypeCryptoHDKey
}

func (k *MasterHDKey) ToCbor() any {
	ret := CborMap{}
	ret.Set(fieldHDKeyIsMaster, true)
	ret.Set(fieldHDKeyKeyData, k.key)
	ret.Set(fieldHDKeyChainCode, k.chainCode)
	return ret
}

func (k *MasterHDKey) ToBytes() ([]byte, error) {
	return Encode(k)
}

// ExtendedHDKey is a derived key with optional derivation metadata
type ExtendedHDKey struct {
	isPrivate         fn.Option[bool]
	key               []byte
	chainCode         fn.Option[[]byte]
	useInfo           fn.Option[*CryptoCoinInfo]
	origin            fn.Option[*CryptoKeyPath]
	children          fn.Option[*CryptoKeyPath]
	parentFingerprint fn.Option[[4]byte]
	name              fn.Option[string]
	note              fn.Option[string]
}

type ExtendedHDKeyOptionFunc func(*ExtendedHDKey)

// WithPrivateKey records whether the key data is a private key
func WithPrivateKey(isPrivate bool) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.isPrivate = fn.Some(isPrivate)
	}
}

func WithChainCode(chainCode []byte) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.chainCode = fn.Some(CopyBytes(chainCode))
	}
}

func WithUseInfo(useInfo *CryptoCoinInfo) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.useInfo = fn.Some(useInfo)
	}
}

func WithOrigin(origin *CryptoKeyPath) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.origin = fn.Some(origin)
	}
}

func WithChildren(children *CryptoKeyPath) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.children = fn.Some(children)
	}
}

func WithParentFingerprint(fingerprint [4]byte) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.parentFingerprint = fn.Some(fingerprint)
	}
}

func WithName(name string) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.name = fn.Some(name)
	}
}

func WithNote(note string) ExtendedHDKeyOptionFunc {
	return func(k *ExtendedHDKey) {
		k.note = fn.Some(note)
	}
}

// NewExtendedHDKey builds a derived key. The chain code must be 32 bytes when given
func NewExtendedHDKey(key []byte, opts ...ExtendedHDKeyOptionFunc) (*ExtendedHDKey, error) {
	if len(key) == 0 {
		return nil, &MissingRequiredFieldError{Field: fieldHDKeyKeyData.Name}
	}
	k := &ExtendedHDKey{
		key: CopyBytes(key),
	}
	for _, opt := range opts {
		opt(k)
	}
	if err := k.validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *ExtendedHDKey) validate() error {
	if chainCode, ok := Option(k.chainCode); ok {
		if err := CheckLength(fieldHDKeyChainCode.Name, chainCode, chainCodeLength); err != nil {
			return err
		}
	}
	if useInfo, ok := Option(k.useInfo); ok && useInfo == nil {
		return errors.New("use info must not be nil")
	}
	if origin, ok := Option(k.origin); ok && origin == nil {
		return errors.New("origin must not be nil")
	}
	if children, ok := Option(k.children); ok && children == nil {
		return errors.New("children must not be nil")
	}
	return nil
}

func (*ExtendedHDKey) isCryptoHDKey() {}

func (*ExtendedHDKey) IsMaster() bool { return false }

func (k *ExtendedHDKey) IsPrivateKey() bool { return k.isPrivate.UnwrapOr(false) }

func (k *ExtendedHDKey) KeyData() []byte { return CopyBytes(k.key) }

func (k *ExtendedHDKey) ChainCode() ([]byte, bool) {
	return Option(CloneBytes(k.chainCode))
}

func (k *ExtendedHDKey) UseInfo() (*CryptoCoinInfo, bool) { return Option(k.useInfo) }

func (k *ExtendedHDKey) Origin() (*CryptoKeyPath, bool) { return Option(k.origin) }

func (k *ExtendedHDKey) Children() (*CryptoKeyPath, bool) { return Option(k.children) }

func (k *ExtendedHDKey) ParentFingerprint() ([4]byte, bool) {
	return Option(k.parentFingerprint)
}

func (k *ExtendedHDKey) Name() (string, bool) { return Option(k.name) }

func (k *ExtendedHDKey) Note() (string, bool) { return Option(k.note) }

func (k *ExtendedHDKey) BIP32Key() string { return BIP32Key(k) }

func (k *ExtendedHDKey) AccountIndex(level int) (uint32, bool) {
	origin, ok := k.Origin()
	if !ok || level < 0 || level >= len(origin.components) {
		return 0, false
	}
	return origin.components[level].CanonicalIndex()
}

func (k *ExtendedHDKey) Depth() (uint32, bool) {
	origin, ok := k.Origin()
	if !ok {
		return 0, false
	}
	return origin.Depth()
}

func (*ExtendedHDKey) RegistryType() RegistryType {
	return TypeCryptoHDKey
}

func (k *ExtendedHDKey) ToCbor() any {
	ret := CborMap{}
	SetOption(ret, fieldHDKeyIsPrivate, k.isPrivate)
	ret.Set(fieldHDKeyKeyData, k.key)
	SetOption(ret, fieldHDKeyChainCode, k.chainCode)
	SetOptionFunc(ret, fieldHDKeyUseInfo, k.useInfo, func(v *CryptoCoinInfo) any {
		return Tagged(v)
	})
	SetOptionFunc(ret, fieldHDKeyOrigin, k.origin, func(v *CryptoKeyPath) any {
		return Tagged(v)
	})
	SetOptionFunc(ret, fieldHDKeyChildren, k.children, func(v *CryptoKeyPath) any {
		return Tagged(v)
	})
	SetOptionFunc(ret, fieldHDKeyParentFingerprint, k.parentFingerprint, func(v [4]byte) any {
		return FingerprintValue(v)
	})
	SetOption(ret, fieldHDKeyName, k.name)
	SetOption(ret, fieldHDKeyNote, k.note)
	return ret
}

func (k *ExtendedHDKey) ToBytes() ([]byte, error) {
	return Encode(k)
}

// CryptoHDKeyFromCbor decodes a master key when the is-master flag is set and
// an extended key otherwise
func CryptoHDKeyFromCbor(v cbor.Value) (CryptoHDKey, error) {
	fields, err := NewFieldMap(TypeCryptoHDKey, v)
	if err != nil {
		return nil, err
	}
	isMaster, err := fields.Bool(fieldHDKeyIsMaster)
	if err != nil {
		return nil, err
	}
	if isMaster.UnwrapOr(false) {
		return masterHDKeyFromFields(fields)
	}
	return extendedHDKeyFromFields(fields)
}

func CryptoHDKeyFromBytes(data []byte) (CryptoHDKey, error) {
	return Decode(data, CryptoHDKeyFromCbor)
}

func masterHDKeyFromFields(fields FieldMap) (*MasterHDKey, error) {
	key, err := fields.RequiredBytes(fieldHDKeyKeyData)
	if err != nil {
		return nil, err
	}
	if err := CheckLength(fieldHDKeyKeyData.Name, key, hdKeyLength); err != nil {
		return nil, fields.Wrap(fieldHDKeyKeyData, err)
	}
	chainCode, err := fields.RequiredBytes(fieldHDKeyChainCode)
	if err != nil {
		return nil, err
	}
	if err := CheckLength(fieldHDKeyChainCode.Name, chainCode, chainCodeLength); err != nil {
		return nil, fields.Wrap(fieldHDKeyChainCode, err)
	}
	return &MasterHDKey{key: key, chainCode: chainCode}, nil
}

func extendedHDKeyFromFields(fields FieldMap) (*ExtendedHDKey, error) {
	var err error
	ret := &ExtendedHDKey{}
	if ret.isPrivate, err = fields.Bool(fieldHDKeyIsPrivate); err != nil {
		return nil, err
	}
	if ret.key, err = fields.RequiredBytes(fieldHDKeyKeyData); err != nil {
		return nil, err
	}
	if len(ret.key) == 0 {
		return nil, fields.Missing(fieldHDKeyKeyData)
	}
	if ret.chainCode, err = fields.Bytes(fieldHDKeyChainCode); err != nil {
		return nil, err
	}
	if ret.useInfo, err = Optional(fields, fieldHDKeyUseInfo, cbor.KindTag, coinInfoGetter); err != nil {
		return nil, err
	}
	if ret.origin, err = fields.KeyPath(fieldHDKeyOrigin); err != nil {
		return nil, err
	}
	if ret.children, err = fields.KeyPath(fieldHDKeyChildren); err != nil {
		return nil, err
	}
	if ret.parentFingerprint, err = fields.Fingerprint(fieldHDKeyParentFingerprint); err != nil {
		return nil, err
	}
	if ret.name, err = fields.Text(fieldHDKeyName); err != nil {
		return nil, err
	}
	if ret.note, err = fields.Text(fieldHDKeyNote); err != nil {
		return nil, err
	}
	if err := ret.validate(); err != nil {
		return nil, fields.Wrap(fieldHDKeyChainCode, err)
	}
	return ret, nil
}

func coinInfoGetter(v cbor.Value) (*CryptoCoinInfo, error) {
	content, err := v.Tag(TypeCryptoCoinInfo.Tag)
	if err != nil {
		return nil, err
	}
	return CryptoCoinInfoFromCbor(content)
}
