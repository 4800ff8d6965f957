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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/blinklabs-io/ur-registry/resolver"
	"github.com/blinklabs-io/ur-registry/transport"
	"github.com/jessevdk/go-flags"
)

type decodeCommand struct {
	Type string `long:"type" short:"t" description:"Registry type name of the payload"`
	Hex  string `long:"hex" description:"CBOR payload as hex"`
	Diag bool   `long:"diag" description:"Print the CBOR in diagnostic notation instead of JSON"`

	global *globalOptions
	out    io.Writer
}

func (x *decodeCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"decode",
		"Decode a registry item",
		"Decode a registry item from a CBOR payload given with --hex, "+
			"or from one or more ur: parts given as arguments. When "+
			"decoding parts, the type name defaults to the one carried "+
			"by the parts",
		x,
	)
	return err
}

func (x *decodeCommand) Execute(args []string) error {
	logger := x.global.logger()
	r := resolver.New(resolver.WithLogger(logger))
	var item registry.Item
	var err error
	switch {
	case x.Hex != "" && len(args) > 0:
		return errors.New("--hex cannot be combined with ur: parts")
	case x.Hex != "":
		if x.Type == "" {
			return errors.New("--type is required with --hex")
		}
		data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(x.Hex), "0x"))
		if err != nil {
			return fmt.Errorf("invalid hex payload: %w", err)
		}
		item, err = r.Resolve(x.Type, data)
		if err != nil {
			return err
		}
	case len(args) > 0:
		dec := transport.NewSequentialDecoder()
		for _, part := range args {
			if err := dec.Receive(part); err != nil {
				return err
			}
		}
		logger.Debug("received parts", "count", len(args), "complete", dec.IsComplete())
		typeName := x.Type
		if typeName == "" {
			typeName = dec.TypeName()
		}
		item, err = r.ResolveMessage(dec, typeName)
		if err != nil {
			return err
		}
	default:
		return errors.New("nothing to decode: use --hex or pass ur: parts")
	}
	if x.Diag {
		return printDiag(x.out, item)
	}
	return printItem(x.out, item)
}

func printDiag(out io.Writer, item registry.Item) error {
	data, err := item.ToBytes()
	if err != nil {
		return err
	}
	v, err := cbor.DecodeValue(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", cbor.Dump(v))
	return err
}

func printItem(out io.Writer, item registry.Item) error {
	data, err := item.ToBytes()
	if err != nil {
		return err
	}
	v, err := cbor.DecodeValue(data)
	if err != nil {
		return err
	}
	summary := map[string]any{
		"type":  item.RegistryType().Name,
		"tag":   item.RegistryType().Tag,
		"cbor":  hex.EncodeToString(data),
		"value": describe(v.Value()),
	}
	if req, ok := item.(interface{ RequestID() (string, error) }); ok {
		if requestID, err := req.RequestID(); err == nil {
			summary["request_id"] = requestID
		}
	}
	switch x := item.(type) {
	case registry.CryptoHDKey:
		summary["bip32_key"] = x.BIP32Key()
	case *registry.CryptoKeyPath:
		summary["path"] = x.String()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// describe converts a decoded CBOR value into something encoding/json accepts
func describe(v any) any {
	switch x := v.(type) {
	case map[any]any:
		ret := make(map[string]any, len(x))
		for key, val := range x {
			ret[fmt.Sprint(describe(key))] = describe(val)
		}
		return ret
	case []any:
		ret := make([]any, len(x))
		for i, val := range x {
			ret[i] = describe(val)
		}
		return ret
	case cbor.Tag:
		return map[string]any{
			"tag":   x.Number,
			"value": describe(x.Content),
		}
	case cbor.ByteString:
		return x.String()
	case []byte:
		return hex.EncodeToString(x)
	default:
		return v
	}
}
