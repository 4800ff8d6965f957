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

package transport_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/blinklabs-io/ur-registry/transport"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeEncoder struct {
	count     int
	nextCalls int
}

func (f *fakeEncoder) NextPart() (string, error) {
	f.nextCalls++
	return "next", nil
}

func (f *fakeEncoder) SinglePart() (string, error) {
	return "single", nil
}

func (f *fakeEncoder) FragmentCount() int {
	return f.count
}

func TestNewItemEncoder(t *testing.T) {
	item := registry.NewCryptoPSBT(bytes.Repeat([]byte{0x70}, 16))
	var gotPayload []byte
	var gotLength int
	var gotType string
	factory := func(payload []byte, maxFragmentLength int, typeName string) (transport.Encoder, error) {
		gotPayload = payload
		gotLength = maxFragmentLength
		gotType = typeName
		return &fakeEncoder{count: 1}, nil
	}
	_, err := transport.NewItemEncoder(item, 0, factory)
	require.NoError(t, err)
	expected, err := item.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, expected, gotPayload)
	assert.Equal(t, transport.DefaultMaxFragmentLength, gotLength)
	assert.Equal(t, "crypto-psbt", gotType)

	_, err = transport.NewItemEncoder(item, 100, factory)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLength)

	factoryErr := errors.New("factory failed")
	_, err = transport.NewItemEncoder(
		item,
		0,
		func([]byte, int, string) (transport.Encoder, error) { return nil, factoryErr },
	)
	assert.ErrorIs(t, err, factoryErr)
}

func TestNextPart(t *testing.T) {
	single := &fakeEncoder{count: 1}
	part, err := transport.NextPart(single)
	require.NoError(t, err)
	assert.Equal(t, "single", part)
	assert.Equal(t, 0, single.nextCalls)

	multi := &fakeEncoder{count: 3}
	part, err = transport.NextPart(multi)
	require.NoError(t, err)
	assert.Equal(t, "next", part)
	assert.Equal(t, 1, multi.nextCalls)
}

func TestSequentialSinglePart(t *testing.T) {
	item := registry.NewCryptoCoinInfo(fn.None[registry.CoinType](), fn.Some(registry.NetworkTestNet))
	enc, err := transport.NewItemEncoder(item, 0, transport.SequentialEncoderFactory)
	require.NoError(t, err)
	assert.Equal(t, 1, enc.FragmentCount())
	part, err := transport.NextPart(enc)
	require.NoError(t, err)
	assert.Equal(t, "ur:crypto-coin-info/a10201", part)

	dec := transport.NewSequentialDecoder()
	msg, err := dec.Message()
	require.NoError(t, err)
	assert.Nil(t, msg)
	require.NoError(t, dec.Receive(strings.ToUpper(part)))
	assert.True(t, dec.IsComplete())
	assert.Equal(t, "crypto-coin-info", dec.TypeName())
	msg, err = dec.Message()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa1, 0x02, 0x01}, msg)
}

func TestSequentialMultiPart(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04, 0x05}, 200)
	item := registry.NewCryptoPSBT(payload)
	enc, err := transport.NewItemEncoder(item, 400, transport.SequentialEncoderFactory)
	require.NoError(t, err)
	// 1000 bytes plus a 3 byte header
	require.Equal(t, 3, enc.FragmentCount())
	_, err = enc.SinglePart()
	require.Error(t, err)

	parts := make([]string, 0, 4)
	for range 4 {
		part, err := transport.NextPart(enc)
		require.NoError(t, err)
		parts = append(parts, part)
	}
	assert.True(t, strings.HasPrefix(parts[0], "ur:crypto-psbt/1-3/"))
	assert.True(t, strings.HasPrefix(parts[3], "ur:crypto-psbt/4-3/"))

	dec := transport.NewSequentialDecoder()
	// Parts 2 and 3, then the start of the next cycle
	require.NoError(t, dec.Receive(parts[1]))
	require.NoError(t, dec.Receive(parts[1]))
	require.NoError(t, dec.Receive(parts[2]))
	assert.False(t, dec.IsComplete())
	require.NoError(t, dec.Receive(parts[3]))
	require.True(t, dec.IsComplete())

	msg, err := dec.Message()
	require.NoError(t, err)
	decoded, err := registry.CryptoPSBTFromBytes(msg)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded.PSBT())
}

func TestSequentialDecoderConcurrentReceive(t *testing.T) {
	defer goleak.VerifyNone(t)
	enc, err := transport.NewSequentialEncoder(bytes.Repeat([]byte{0xaa}, 100), 10, "crypto-psbt")
	require.NoError(t, err)
	parts := make([]string, enc.FragmentCount())
	for i := range parts {
		parts[i], err = enc.NextPart()
		require.NoError(t, err)
	}
	dec := transport.NewSequentialDecoder()
	var wg sync.WaitGroup
	for _, part := range parts {
		wg.Add(1)
		go func(part string) {
			defer wg.Done()
			assert.NoError(t, dec.Receive(part))
		}(part)
	}
	wg.Wait()
	assert.True(t, dec.IsComplete())
}

func TestSequentialDecoderErrors(t *testing.T) {
	testDefs := []string{
		"crypto-psbt/00",
		"ur:crypto-psbt",
		"ur:crypto_psbt/00",
		"ur:crypto-psbt/zz",
		"ur:crypto-psbt/1/00",
		"ur:crypto-psbt/0-1/00",
		"ur:crypto-psbt/1-1/00",
		"ur:crypto-psbt/1-1/2/00",
	}
	for _, part := range testDefs {
		err := transport.NewSequentialDecoder().Receive(part)
		require.Error(t, err, "part %q", part)
		assert.True(t, errors.Is(err, transport.ErrInvalidPart), "part %q: %v", part, err)
	}

	dec := transport.NewSequentialDecoder()
	require.NoError(t, dec.Receive("ur:crypto-psbt/4100"))
	err := dec.Receive("ur:crypto-hdkey/a0")
	var partErr *transport.InvalidPartError
	require.ErrorAs(t, err, &partErr)
}

func TestSequentialDecoderForgedLength(t *testing.T) {
	dec := transport.NewSequentialDecoder()
	// [1, 1, 0x40000000, 0, h'01']: one byte of data claiming a 1 GiB message
	err := dec.Receive("ur:crypto-psbt/1-1/8501011a40000000004101")
	var partErr *transport.InvalidPartError
	require.ErrorAs(t, err, &partErr)
	assert.Contains(t, partErr.Reason, "message length is 1073741824")
	assert.False(t, dec.IsComplete())

	// The decoder starts over and accepts a well-formed message
	enc, err := transport.NewSequentialEncoder([]byte{1, 2, 3}, 2, "crypto-psbt")
	require.NoError(t, err)
	for !dec.IsComplete() {
		part, err := enc.NextPart()
		require.NoError(t, err)
		require.NoError(t, dec.Receive(part))
	}
	message, err := dec.Message()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, message)
}

func TestSequentialEncoderErrors(t *testing.T) {
	_, err := transport.NewSequentialEncoder(nil, 10, "crypto-psbt")
	require.Error(t, err)
	_, err = transport.NewSequentialEncoder([]byte{1}, 0, "crypto-psbt")
	require.Error(t, err)
	_, err = transport.NewSequentialEncoder([]byte{1}, 10, "Crypto PSBT")
	require.Error(t, err)
	enc, err := transport.SequentialEncoderFactory(nil, 10, "crypto-psbt")
	require.Error(t, err)
	assert.Nil(t, enc)
}
