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

package registry_test

import (
	"strings"
	"testing"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/internal/test"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	masterKeyHex       = "00e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"
	masterChainCodeHex = "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"
	masterHDKeyCbor    = "a301f503582100e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35045820873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"
	masterXprv         = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"

	extendedKeyHex       = "026fe2355745bb2db3630bbc80ef5d58951c963c841f54170ba6e5c12be7fc12a6"
	extendedChainCodeHex = "ced155c72456255881793514edc5bd9447e7f74abb88c6d6b6480fd016ee8c85"
	extendedHDKeyCbor    = "a5035821026fe2355745bb2db3630bbc80ef5d58951c963c841f54170ba6e5c12be7fc12a6045820ced155c72456255881793514edc5bd9447e7f74abb88c6d6b6480fd016ee8c8505d90131a1020106d90130a1018a182cf501f501f500f401f4081ae9181cf3"
	extendedXpub         = "xpub6H8Qkexp9BdSgEwPAnhiEjp7NMXVEZWoAFWwon5mSwbuPZMfSUTpPwAP1Q2q2kYMRgRQ8udBpEj89wburY1vW7AWDuYpByteGogpB6pPprX"
)

func newExtendedTestKey(t *testing.T) *registry.ExtendedHDKey {
	t.Helper()
	origin, err := registry.CryptoKeyPathFromPath("m/44'/1'/1'/0/1", fn.None[[4]byte]())
	require.NoError(t, err)
	key, err := registry.NewExtendedHDKey(
		test.DecodeHexString(extendedKeyHex),
		registry.WithChainCode(test.DecodeHexString(extendedChainCodeHex)),
		registry.WithUseInfo(
			registry.NewCryptoCoinInfo(
				fn.None[registry.CoinType](),
				fn.Some(registry.NetworkTestNet),
			),
		),
		registry.WithOrigin(origin),
		registry.WithParentFingerprint(test.Fingerprint("e9181cf3")),
	)
	require.NoError(t, err)
	return key
}

func TestMasterHDKey(t *testing.T) {
	key, err := registry.NewMasterHDKey(
		test.DecodeHexString(masterKeyHex),
		test.DecodeHexString(masterChainCodeHex),
	)
	require.NoError(t, err)
	data, err := key.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(masterHDKeyCbor), data)

	bip32Key := key.BIP32Key()
	assert.True(t, strings.HasPrefix(bip32Key, "xprv"))
	assert.Equal(t, masterXprv, bip32Key)

	extKey, err := registry.ExtendedKey(key)
	require.NoError(t, err)
	assert.True(t, extKey.IsPrivate())
	assert.Equal(t, uint8(0), extKey.Depth())

	decoded, err := registry.CryptoHDKeyFromBytes(data)
	require.NoError(t, err)
	require.IsType(t, &registry.MasterHDKey{}, decoded)
	assert.True(t, decoded.IsMaster())
	assert.Equal(t, test.DecodeHexString(masterKeyHex), decoded.KeyData())
	chainCode, ok := decoded.ChainCode()
	require.True(t, ok)
	assert.Equal(t, test.DecodeHexString(masterChainCodeHex), chainCode)
}

func TestMasterHDKeyMapShape(t *testing.T) {
	key, err := registry.NewMasterHDKey(
		test.DecodeHexString(masterKeyHex),
		test.DecodeHexString(masterChainCodeHex),
	)
	require.NoError(t, err)
	data, err := key.ToBytes()
	require.NoError(t, err)
	v, err := cbor.DecodeValue(data)
	require.NoError(t, err)
	m, err := v.Map()
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	for _, k := range []int64{1, 3, 4} {
		_, ok := m.ByInteger(k)
		assert.True(t, ok, "key %d", k)
	}
}

func TestMasterHDKeyInvalidLength(t *testing.T) {
	_, err := registry.NewMasterHDKey(
		test.DecodeHexString(masterKeyHex)[1:],
		test.DecodeHexString(masterChainCodeHex),
	)
	var lengthErr *registry.InvalidFixedLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 33, lengthErr.Expected)
	assert.Equal(t, 32, lengthErr.Actual)
}

func TestMasterHDKeyMissingChainCode(t *testing.T) {
	// {1: true, 3: h'00..'} without a chain code
	data := test.DecodeHexString("a201f5035821" + masterKeyHex)
	_, err := registry.CryptoHDKeyFromBytes(data)
	var missingErr *registry.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "chain code", missingErr.Field)
}

func TestExtendedHDKey(t *testing.T) {
	key := newExtendedTestKey(t)
	data, err := key.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString(extendedHDKeyCbor), data)
	assert.Equal(t, extendedXpub, key.BIP32Key())

	decoded, err := registry.CryptoHDKeyFromBytes(data)
	require.NoError(t, err)
	extended, ok := decoded.(*registry.ExtendedHDKey)
	require.True(t, ok)
	assert.False(t, extended.IsMaster())
	assert.False(t, extended.IsPrivateKey())
	assert.Equal(t, test.DecodeHexString(extendedKeyHex), extended.KeyData())
	useInfo, ok := extended.UseInfo()
	require.True(t, ok)
	assert.Equal(t, registry.NetworkTestNet, useInfo.Network())
	origin, ok := extended.Origin()
	require.True(t, ok)
	path, _ := origin.Path()
	assert.Equal(t, "44'/1'/1'/0/1", path)
	fingerprint, ok := extended.ParentFingerprint()
	require.True(t, ok)
	assert.Equal(t, test.Fingerprint("e9181cf3"), fingerprint)
	_, ok = extended.Children()
	assert.False(t, ok)
	_, ok = extended.Name()
	assert.False(t, ok)
	assert.Equal(t, extendedXpub, decoded.BIP32Key())
}

func TestExtendedHDKeyParse(t *testing.T) {
	key := newExtendedTestKey(t)
	extKey, err := registry.ExtendedKey(key)
	require.NoError(t, err)
	assert.False(t, extKey.IsPrivate())
	assert.Equal(t, uint8(5), extKey.Depth())
	assert.Equal(t, uint32(1), extKey.ChildIndex())
	assert.Equal(t, uint32(0xe9181cf3), extKey.ParentFingerprint())
	assert.Equal(t, extendedXpub, extKey.String())
}

func TestExtendedHDKeyAccountIndex(t *testing.T) {
	key := newExtendedTestKey(t)
	idx, ok := key.AccountIndex(2)
	require.True(t, ok)
	assert.Equal(t, uint32(1)+registry.HardenedBit, idx)
	idx, ok = key.AccountIndex(4)
	require.True(t, ok)
	assert.Equal(t, uint32(1), idx)
	_, ok = key.AccountIndex(5)
	assert.False(t, ok)
	_, ok = key.Depth()
	assert.False(t, ok)
}

func TestExtendedHDKeyChildren(t *testing.T) {
	children, err := registry.CryptoKeyPathFromPath("0/*", fn.None[[4]byte]())
	require.NoError(t, err)
	key, err := registry.NewExtendedHDKey(
		test.DecodeHexString(extendedKeyHex),
		registry.WithPrivateKey(false),
		registry.WithChildren(children),
		registry.WithName("account 0"),
		registry.WithNote("watch only"),
	)
	require.NoError(t, err)
	data, err := key.ToBytes()
	require.NoError(t, err)

	v, err := cbor.DecodeValue(data)
	require.NoError(t, err)
	m, err := v.Map()
	require.NoError(t, err)
	_, ok := m.ByInteger(7)
	assert.True(t, ok, "children should be stored under key 7")
	_, ok = m.ByInteger(6)
	assert.False(t, ok, "origin should be absent")

	decoded, err := registry.CryptoHDKeyFromBytes(data)
	require.NoError(t, err)
	extended := decoded.(*registry.ExtendedHDKey)
	decodedChildren, ok := extended.Children()
	require.True(t, ok)
	path, _ := decodedChildren.Path()
	assert.Equal(t, "0/*", path)
	name, _ := extended.Name()
	assert.Equal(t, "account 0", name)
	note, _ := extended.Note()
	assert.Equal(t, "watch only", note)
	// An explicit false flag survives the round trip
	_, ok = m.ByInteger(2)
	assert.True(t, ok)
}

func TestExtendedHDKeyInvalidChainCode(t *testing.T) {
	_, err := registry.NewExtendedHDKey(
		test.DecodeHexString(extendedKeyHex),
		registry.WithChainCode([]byte{1, 2, 3}),
	)
	var lengthErr *registry.InvalidFixedLengthError
	assert.ErrorAs(t, err, &lengthErr)
}

func TestHDKeyWrongTag(t *testing.T) {
	// {3: h'02', 6: 305({})}
	data := test.DecodeHexString("a203410206d90131a0")
	_, err := registry.CryptoHDKeyFromBytes(data)
	var tagErr *cbor.TagMismatchError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, uint64(304), tagErr.Expected)
	assert.Equal(t, uint64(305), tagErr.Actual)
}

func TestHDKeyMissingKeyData(t *testing.T) {
	_, err := registry.CryptoHDKeyFromBytes(test.DecodeHexString("a102f5"))
	var missingErr *registry.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "key data", missingErr.Field)

	// An empty key is refused on decode just as NewExtendedHDKey refuses it
	_, err = registry.NewExtendedHDKey(nil)
	require.ErrorAs(t, err, &missingErr)
	_, err = registry.CryptoHDKeyFromBytes(test.DecodeHexString("a10340"))
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "key data", missingErr.Field)
	var fieldErr *registry.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "crypto-hdkey", fieldErr.Type)
}

func TestBIP32KeyZeroFill(t *testing.T) {
	// A short key without chain code or origin still serializes
	key, err := registry.NewExtendedHDKey([]byte{0x02, 0x01})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key.BIP32Key(), "xpub"))
	private, err := registry.NewExtendedHDKey([]byte{0x00, 0x01}, registry.WithPrivateKey(true))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(private.BIP32Key(), "xprv"))
}
