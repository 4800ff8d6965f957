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

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	parser, err := newParser(&out)
	require.NoError(t, err)
	_, err = parser.ParseArgs(args)
	return out.String(), err
}

func TestDecodeHex(t *testing.T) {
	out, err := runCommand(t, "decode", "--type", "crypto-coin-info", "--hex", "a10201")
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "crypto-coin-info", summary["type"])
	assert.Equal(t, "a10201", summary["cbor"])
	assert.Equal(t, map[string]any{"2": float64(1)}, summary["value"])
}

func TestDecodeParts(t *testing.T) {
	out, err := runCommand(t, "decode", "ur:crypto-coin-info/a10201")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "crypto-coin-info"`)
}

func TestDecodeDiag(t *testing.T) {
	out, err := runCommand(
		t,
		"decode",
		"--diag",
		"--type", "crypto-coin-info",
		"--hex", "a10201",
	)
	require.NoError(t, err)
	assert.Equal(t, "{\n  2: 1,\n}\n", out)
}

func TestDecodeHDKey(t *testing.T) {
	// {1: true, 3: key, 4: chain code}
	out, err := runCommand(
		t,
		"decode",
		"--type", "crypto-hdkey",
		"--hex", "a301f503582100e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35045820873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508",
	)
	require.NoError(t, err)
	assert.Contains(t, out, `"bip32_key": "xprv`)
}

func TestDecodeErrors(t *testing.T) {
	_, err := runCommand(t, "decode")
	require.Error(t, err)
	_, err = runCommand(t, "decode", "--hex", "a10201")
	require.Error(t, err)
	_, err = runCommand(t, "decode", "--type", "crypto-coin-info", "--hex", "zz")
	require.Error(t, err)
	_, err = runCommand(t, "decode", "--type", "crypto-unknown", "--hex", "a0")
	require.Error(t, err)
}

func TestPathCommand(t *testing.T) {
	out, err := runCommand(t, "path", "--path", "m/44'/501'/0'/0'")
	require.NoError(t, err)
	assert.Contains(t, out, "path: m/44'/501'/0'/0'")
	assert.Contains(t, out, "0: 44' (index 2147483692)")
	assert.Contains(t, out, "cbor: a10188182cf51901f5f500f500f5")

	out, err = runCommand(t, "path", "--path", "m/0/*", "--fingerprint", "73c5da0a")
	require.NoError(t, err)
	assert.Contains(t, out, "1: * (wildcard)")

	_, err = runCommand(t, "path", "--path", "m/x")
	require.Error(t, err)
}

func TestTypesCommand(t *testing.T) {
	out, err := runCommand(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "crypto-hdkey")
	assert.Contains(t, out, "cardano-sign-cip8-data-signature")
}
