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

package solana_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/ur-registry/internal/test"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/blinklabs-io/ur-registry/registry/solana"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignRequestRoundTrip(t *testing.T) {
	path, err := registry.CryptoKeyPathFromPath(
		"m/44'/501'/0'/0'",
		fn.Some(test.Fingerprint("707eed6c")),
	)
	require.NoError(t, err)
	address := test.DecodeHexString("0a1b2c3d4e5f")
	request, err := solana.NewSignRequest(
		fn.Some(test.RequestID("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")),
		test.DecodeHexString("01000103c8d842a2f17fd7aab608ce2ea535a6e958dffa20caf669b347b911c4171965530f957620b228bae2b94c82ddd4c093983a67365555b737ec7ddc1117e61c72e0000000000000000000000000000000000000000000000000000000000000000010295cc2f1f39f3604718496ea00676d6a72ec66ad09d926e3ece34f565f18d201020200010c0200000000e1f50500000000"),
		path,
		fn.Some(address),
		fn.Some("solflare"),
		solana.SignTypeTransaction,
	)
	require.NoError(t, err)
	data, err := request.ToBytes()
	require.NoError(t, err)

	decoded, err := solana.SignRequestFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, request.SignData(), decoded.SignData())
	assert.Equal(t, solana.SignTypeTransaction, decoded.SignType())
	decodedAddress, ok := decoded.Address()
	require.True(t, ok)
	assert.Equal(t, address, decodedAddress)
	origin, ok := decoded.Origin()
	require.True(t, ok)
	assert.Equal(t, "solflare", origin)
	fingerprint, ok := decoded.DerivationPath().SourceFingerprint()
	require.True(t, ok)
	assert.Equal(t, test.Fingerprint("707eed6c"), fingerprint)
	requestID, err := decoded.RequestID()
	require.NoError(t, err)
	assert.Equal(t, "9b1deb4d3b7d4bad9bdd2b0d7b3dcb6d", requestID)

	encoded, err := decoded.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, data, encoded)
}

func TestSignRequestInvalidSignType(t *testing.T) {
	// {2: h'01', 3: 304({1: []}), 6: 3}
	_, err := solana.SignRequestFromBytes(test.DecodeHexString("a303d90130a10180024101" + "0603"))
	var enumErr *registry.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, int64(3), enumErr.Value)

	// Sign type is required
	_, err = solana.SignRequestFromBytes(test.DecodeHexString("a203d90130a10180024101"))
	var missingErr *registry.MissingRequiredFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, "sign type", missingErr.Field)
}

func TestSignatureRoundTrip(t *testing.T) {
	sig := test.DecodeHexString("d4f0a7bcd95bba1fbb1051885054730e3f47064288575aacc102fbbf6a9a14da")
	signature, err := solana.NewSignature(fn.None[[]byte](), sig)
	require.NoError(t, err)
	_, err = signature.RequestID()
	assert.True(t, errors.Is(err, registry.ErrNoRequestID))
	data, err := signature.ToBytes()
	require.NoError(t, err)
	decoded, err := solana.SignatureFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, sig, decoded.Signature())
	_, err = decoded.RequestID()
	assert.ErrorIs(t, err, registry.ErrNoRequestID)
}

func TestSignatureEmptyPayload(t *testing.T) {
	signature, err := solana.NewSignature(fn.None[[]byte](), nil)
	require.NoError(t, err)
	data, err := signature.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("a10240"), data)
	decoded, err := solana.SignatureFromBytes(data)
	require.NoError(t, err)
	assert.Empty(t, decoded.Signature())
}
