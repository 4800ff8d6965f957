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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
)

type globalOptions struct {
	Debug bool `long:"debug" description:"Enable debug logging"`
}

func (o *globalOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}
	return slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)
}

type command interface {
	Register(parser *flags.Parser) error
}

func newParser(out io.Writer) (*flags.Parser, error) {
	opts := &globalOptions{}
	parser := flags.NewParser(opts, flags.Default)
	commands := []command{
		&decodeCommand{global: opts, out: out},
		&pathCommand{out: out},
		&typesCommand{out: out},
	}
	for _, cmd := range commands {
		if err := cmd.Register(parser); err != nil {
			return nil, err
		}
	}
	return parser, nil
}

func main() {
	parser, err := newParser(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up commands: %s\n", err)
		os.Exit(1)
	}
	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		// flags.Default has already printed the error
		os.Exit(1)
	}
}
