// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux && (amd64 || arm64)
// +build linux
// +build amd64 arm64

package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
)

// Translate implements subcommands.Command for the "translate" command.
type Translate struct {
	to string
}

// Translation is the result of translating one value.
type Translation struct {
	Input  int    `json:"input" yaml:"input"`
	Output int    `json:"output" yaml:"output"`
	Name   string `json:"name" yaml:"name"`

	// Unknown is set when the input was outside the supported domain.
	// For flag concepts, Dropped holds the bits that were discarded.
	Unknown bool `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Dropped int  `json:"dropped,omitempty" yaml:"dropped,omitempty"`
}

// Name implements subcommands.Command.Name.
func (*Translate) Name() string {
	return "translate"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Translate) Synopsis() string {
	return "translate values of a concept between the bridge and the host"
}

// Usage implements subcommands.Command.Usage.
func (*Translate) Usage() string {
	return `translate [-to=host|bridge] <concept> <value>... - translate values.

Values are numbers (decimal, 0x hex or 0 octal). Values translated to the host
may also be bridge names, e.g. "SIGUSR1" or "O_RDWR|O_APPEND".
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (t *Translate) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.to, "to", "host", "direction of the translation: host or bridge.")
}

// Execute implements subcommands.Command.Execute.
func (t *Translate) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() < 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)

	c, ok := hostbridge.LookupConcept(f.Arg(0))
	if !ok {
		Fatalf("unknown concept %q", f.Arg(0))
	}
	var results []Translation
	for _, arg := range f.Args()[1:] {
		r, err := translate(c, t.to, arg)
		if err != nil {
			Fatalf("%v", err)
		}
		results = append(results, r)
	}
	if err := writeOutput(os.Stdout, conf.Output, results, func(w io.Writer) error {
		fmt.Fprintln(w, "INPUT\tOUTPUT\tNAME")
		for _, r := range results {
			out := formatValue(c, r.Output)
			if r.Unknown {
				out += " (unknown)"
			}
			if r.Dropped != 0 {
				out += fmt.Sprintf(" (dropped %#x)", r.Dropped)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", formatValue(c, r.Input), out, r.Name)
		}
		return nil
	}); err != nil {
		Fatalf("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// translate converts the textual value arg of concept c in direction to.
func translate(c hostbridge.Concept, to, arg string) (Translation, error) {
	mask := 0
	if c.Kind == hostbridge.Flags {
		for _, v := range c.Domain {
			mask |= v
		}
	}

	switch to {
	case "host":
		in, err := parseBridgeValue(c, arg)
		if err != nil {
			return Translation{}, err
		}
		out := c.FromBridge(in)
		r := Translation{Input: in, Output: out, Name: c.Format(in)}
		if c.Kind == hostbridge.Flags {
			r.Dropped = in &^ mask
		} else {
			r.Unknown = out == c.FromBridgeUnknown && c.ToBridge(out) != in
		}
		return r, nil

	case "bridge":
		in, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return Translation{}, fmt.Errorf("%s: host values must be numbers: %q", c.Name, arg)
		}
		out := c.ToBridge(int(in))
		r := Translation{Input: int(in), Output: out, Name: c.Format(out)}
		if c.Kind == hostbridge.Flags {
			r.Dropped = int(in) &^ c.FromBridge(mask)
		} else {
			r.Unknown = out == c.ToBridgeUnknown && c.FromBridge(out) != int(in)
		}
		return r, nil

	default:
		return Translation{}, fmt.Errorf("invalid direction %q, must be 'host' or 'bridge'", to)
	}
}

// parseBridgeValue accepts a number, the name of a supported value, or for
// flag concepts a "|" separated combination of those.
func parseBridgeValue(c hostbridge.Concept, arg string) (int, error) {
	if v, ok := lookupBridgeValue(c, arg); ok {
		return v, nil
	}
	if c.Kind != hostbridge.Flags {
		return 0, fmt.Errorf("%s: unknown value %q", c.Name, arg)
	}
	v := 0
	for _, part := range strings.Split(arg, "|") {
		p, ok := lookupBridgeValue(c, strings.TrimSpace(part))
		if !ok {
			return 0, fmt.Errorf("%s: unknown flag %q in %q", c.Name, part, arg)
		}
		v |= p
	}
	return v, nil
}

func lookupBridgeValue(c hostbridge.Concept, s string) (int, bool) {
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return int(v), true
	}
	for _, v := range c.Domain {
		if c.Format(v) == s {
			return v, true
		}
	}
	return 0, false
}
