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

	"github.com/google/subcommands"

	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
)

// Concepts implements subcommands.Command for the "concepts" command.
type Concepts struct{}

// ConceptInfo summarizes one concept.
type ConceptInfo struct {
	Name              string `json:"name" yaml:"name"`
	Kind              string `json:"kind" yaml:"kind"`
	Values            int    `json:"values" yaml:"values"`
	FromBridgeUnknown int    `json:"from_bridge_unknown" yaml:"from_bridge_unknown"`
	ToBridgeUnknown   int    `json:"to_bridge_unknown" yaml:"to_bridge_unknown"`
}

// Name implements subcommands.Command.Name.
func (*Concepts) Name() string {
	return "concepts"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Concepts) Synopsis() string {
	return "list the translated concepts and their unknown-value sentinels"
}

// Usage implements subcommands.Command.Usage.
func (*Concepts) Usage() string {
	return `concepts - list every enumeration and flag family the bridge translates.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Concepts) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Concepts) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)
	if err := printConcepts(os.Stdout, conf.Output, conceptInfos()); err != nil {
		Fatalf("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

func conceptInfos() []ConceptInfo {
	var infos []ConceptInfo
	for _, c := range hostbridge.Concepts() {
		infos = append(infos, ConceptInfo{
			Name:              c.Name,
			Kind:              c.Kind.String(),
			Values:            len(c.Domain),
			FromBridgeUnknown: c.FromBridgeUnknown,
			ToBridgeUnknown:   c.ToBridgeUnknown,
		})
	}
	return infos
}

func printConcepts(w io.Writer, format string, infos []ConceptInfo) error {
	return writeOutput(w, format, infos, func(w io.Writer) error {
		fmt.Fprintln(w, "NAME\tKIND\tVALUES\tHOST UNKNOWN\tBRIDGE UNKNOWN")
		for _, i := range infos {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n", i.Name, i.Kind, i.Values, i.FromBridgeUnknown, i.ToBridgeUnknown)
		}
		return nil
	})
}
