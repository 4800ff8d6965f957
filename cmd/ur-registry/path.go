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
	"encoding/hex"
	"fmt"
	"io"

	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/jessevdk/go-flags"
	"github.com/lightningnetwork/lnd/fn/v2"
)

type pathCommand struct {
	Path        string `long:"path" short:"p" description:"Derivation path, such as m/44'/0'/0'" required:"true"`
	Fingerprint string `long:"fingerprint" description:"Source fingerprint as 8 hex characters"`

	out io.Writer
}

func (x *pathCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"path",
		"Parse a derivation path",
		"Parse a derivation path and print its components and crypto-keypath encoding",
		x,
	)
	return err
}

func (x *pathCommand) Execute(_ []string) error {
	fingerprint := fn.None[[4]byte]()
	if x.Fingerprint != "" {
		data, err := hex.DecodeString(x.Fingerprint)
		if err != nil {
			return fmt.Errorf("invalid fingerprint: %w", err)
		}
		if err := registry.CheckLength("fingerprint", data, 4); err != nil {
			return err
		}
		fingerprint = fn.Some([4]byte(data))
	}
	path, err := registry.CryptoKeyPathFromPath(x.Path, fingerprint)
	if err != nil {
		return err
	}
	data, err := path.ToBytes()
	if err != nil {
		return err
	}
	fmt.Fprintf(x.out, "path: %s\n", path)
	for i, c := range path.Components() {
		canonical, ok := c.CanonicalIndex()
		if !ok {
			fmt.Fprintf(x.out, "  %d: %s (wildcard)\n", i, c)
			continue
		}
		fmt.Fprintf(x.out, "  %d: %s (index %d)\n", i, c, canonical)
	}
	fmt.Fprintf(x.out, "cbor: %s\n", hex.EncodeToString(data))
	return nil
}
