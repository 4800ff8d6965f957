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

package resolver_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/internal/test"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/blinklabs-io/ur-registry/registry/cardano"
	"github.com/blinklabs-io/ur-registry/resolver"
	"github.com/blinklabs-io/ur-registry/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const multiAccountsCbor = "a3011ae9181cf30281d9012fa203582102eae4b876a8696134b868f88cc2f51f715f2dbedb7446b8e6edf3d4541c4eb67b06d90130a10188182cf51901f5f500f500f503686b657973746f6e65"

func TestResolverCoversCatalog(t *testing.T) {
	names := resolver.New().TypeNames()
	catalog := registry.Types()
	assert.Len(t, names, len(catalog))
	for _, rt := range catalog {
		assert.Contains(t, names, rt.Name)
	}
}

func TestResolve(t *testing.T) {
	item, err := resolver.Resolve("crypto-coin-info", test.DecodeHexString("a10201"))
	require.NoError(t, err)
	coinInfo, ok := item.(*registry.CryptoCoinInfo)
	require.True(t, ok, "unexpected item type %T", item)
	assert.Equal(t, registry.NetworkTestNet, coinInfo.Network())
	assert.Equal(t, registry.CoinTypeBitcoin, coinInfo.CoinType())

	item, err = resolver.Resolve("crypto-multi-accounts", test.DecodeHexString(multiAccountsCbor))
	require.NoError(t, err)
	assert.Equal(t, registry.TypeCryptoMultiAccounts, item.RegistryType())

	// {2: h'a0'}
	item, err = resolver.Resolve("cardano-signature", test.DecodeHexString("a10241a0"))
	require.NoError(t, err)
	signature, ok := item.(*cardano.Signature)
	require.True(t, ok, "unexpected item type %T", item)
	assert.Equal(t, []byte{0xa0}, signature.WitnessSet())
}

func TestResolveWrongType(t *testing.T) {
	// Multi-accounts bytes handed to the hd key decoder
	_, err := resolver.Resolve("crypto-hdkey", test.DecodeHexString(multiAccountsCbor))
	require.Error(t, err)
	var typeErr *cbor.TypeMismatchError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, cbor.KindBool, typeErr.Expected)
	var fieldErr *registry.FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, registry.TypeCryptoHDKey.Name, fieldErr.Type)
}

func TestResolveUnsupportedType(t *testing.T) {
	for _, name := range []string{"crypto-unknown", "CRYPTO-HDKEY", ""} {
		_, err := resolver.Resolve(name, test.DecodeHexString("a0"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, registry.ErrUnsupportedType), "name %q", name)
		var unsupportedErr *registry.UnsupportedTypeError
		require.ErrorAs(t, err, &unsupportedErr)
		assert.Equal(t, name, unsupportedErr.Name)
	}
}

func TestResolveNeverDropsData(t *testing.T) {
	r := resolver.New()
	for _, name := range r.TypeNames() {
		// CBOR null never decodes to an item
		_, err := r.Resolve(name, []byte{0xf6})
		require.Error(t, err, "type %s", name)
		assert.False(t, errors.Is(err, registry.ErrUnsupportedType), "type %s", name)

		_, err = r.Resolve(name, nil)
		require.Error(t, err, "type %s", name)
		assert.True(t, errors.Is(err, cbor.ErrMalformedCbor), "type %s: %v", name, err)
	}
}

func TestRegister(t *testing.T) {
	r := resolver.New()
	custom := registry.RegistryType{Name: "test-coin-info", Tag: 40305}
	err := r.Register(custom, func(data []byte) (registry.Item, error) {
		return registry.CryptoCoinInfoFromBytes(data)
	})
	require.NoError(t, err)
	item, err := r.Resolve("test-coin-info", test.DecodeHexString("a10201"))
	require.NoError(t, err)
	assert.Equal(t, registry.TypeCryptoCoinInfo, item.RegistryType())

	err = r.Register(registry.TypeCryptoHDKey, func([]byte) (registry.Item, error) { return nil, nil })
	assert.ErrorIs(t, err, resolver.ErrDuplicateType)
	require.Error(t, r.Register(registry.RegistryType{Name: "no-decoder"}, nil))
	require.Error(t, r.Register(registry.RegistryType{}, func([]byte) (registry.Item, error) { return nil, nil }))

	// The shared default resolver is unaffected
	_, err = resolver.Resolve("test-coin-info", test.DecodeHexString("a10201"))
	assert.ErrorIs(t, err, registry.ErrUnsupportedType)
}

func TestResolveMessage(t *testing.T) {
	r := resolver.New()
	dec := transport.NewSequentialDecoder()
	_, err := r.ResolveMessage(dec, "crypto-coin-info")
	assert.ErrorIs(t, err, resolver.ErrIncompleteMessage)

	require.NoError(t, dec.Receive("ur:crypto-coin-info/a10201"))
	item, err := r.ResolveMessage(dec, dec.TypeName())
	require.NoError(t, err)
	assert.Equal(t, registry.TypeCryptoCoinInfo, item.RegistryType())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := resolver.New(resolver.WithLogger(logger))
	_, err := r.Resolve("crypto-coin-info", test.DecodeHexString("a10201"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "resolved item")
	_, err = r.Resolve("crypto-unknown", nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "unsupported type")
}

func TestResolveConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := resolver.New()
	data := test.DecodeHexString(multiAccountsCbor)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Resolve("crypto-multi-accounts", data)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
