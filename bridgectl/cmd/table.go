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

// Table implements subcommands.Command for the "table" command.
type Table struct{}

// TableRow pairs a bridge value with its host translation.
type TableRow struct {
	Name   string `json:"name" yaml:"name"`
	Bridge int    `json:"bridge" yaml:"bridge"`
	Host   int    `json:"host" yaml:"host"`
}

// Name implements subcommands.Command.Name.
func (*Table) Name() string {
	return "table"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Table) Synopsis() string {
	return "print the bridge and host values of a concept"
}

// Usage implements subcommands.Command.Usage.
func (*Table) Usage() string {
	return `table <concept> - print every supported bridge value of a concept next to
its host value. Run "bridgectl concepts" for the list of concepts.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Table) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Table) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)

	c, ok := hostbridge.LookupConcept(f.Arg(0))
	if !ok {
		Fatalf("unknown concept %q", f.Arg(0))
	}
	if err := printTable(os.Stdout, conf.Output, c, tableRows(c)); err != nil {
		Fatalf("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

func tableRows(c hostbridge.Concept) []TableRow {
	rows := make([]TableRow, 0, len(c.Domain))
	for _, v := range c.Domain {
		rows = append(rows, TableRow{
			Name:   c.Format(v),
			Bridge: v,
			Host:   c.FromBridge(v),
		})
	}
	return rows
}

func printTable(w io.Writer, format string, c hostbridge.Concept, rows []TableRow) error {
	return writeOutput(w, format, rows, func(w io.Writer) error {
		fmt.Fprintln(w, "NAME\tBRIDGE\tHOST")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, formatValue(c, r.Bridge), formatValue(c, r.Host))
		}
		return nil
	})
}

// formatValue prints flag values in hex and enumeration values in decimal.
func formatValue(c hostbridge.Concept, v int) string {
	if c.Kind == hostbridge.Flags {
		return fmt.Sprintf("%#x", v)
	}
	return fmt.Sprintf("%d", v)
}
