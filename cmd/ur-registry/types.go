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
	"fmt"
	"io"

	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/jessevdk/go-flags"
)

type typesCommand struct {
	out io.Writer
}

func (x *typesCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"types",
		"List registry types",
		"List the name and CBOR tag of every registry type",
		x,
	)
	return err
}

func (x *typesCommand) Execute(_ []string) error {
	for _, rt := range registry.Types() {
		fmt.Fprintf(x.out, "%-48s %d\n", rt.Name, rt.Tag)
	}
	return nil
}
