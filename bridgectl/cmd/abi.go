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
	"sort"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/subcommands"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
)

// ABI implements subcommands.Command for the "abi" command.
type ABI struct {
	format string
	out    string
}

// Manifest describes the bridge wire contract: the layouts of the fixed-size
// structures and the numbering of every concept.
type Manifest struct {
	Version   int               `json:"version" yaml:"version" cbor:"version"`
	ByteOrder string            `json:"byte_order" yaml:"byte_order" cbor:"byte_order"`
	Types     []TypeLayout      `json:"types" yaml:"types" cbor:"types"`
	Concepts  []ConceptManifest `json:"concepts" yaml:"concepts" cbor:"concepts"`
}

// TypeLayout is the wire size of a bridge structure.
type TypeLayout struct {
	Name string `json:"name" yaml:"name" cbor:"name"`
	Size int    `json:"size" yaml:"size" cbor:"size"`
}

// ConceptManifest lists the bridge values of a concept.
type ConceptManifest struct {
	Name    string         `json:"name" yaml:"name" cbor:"name"`
	Kind    string         `json:"kind" yaml:"kind" cbor:"kind"`
	Unknown int            `json:"unknown" yaml:"unknown" cbor:"unknown"`
	Values  map[string]int `json:"values" yaml:"values" cbor:"values"`
}

// encMode produces Core Deterministic Encoding, so the same manifest always
// has the same bytes.
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("CBOR encoder initialization failed: %v", err))
	}
	return em
}()

// Name implements subcommands.Command.Name.
func (*ABI) Name() string {
	return "abi"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*ABI) Synopsis() string {
	return "export the bridge wire contract"
}

// Usage implements subcommands.Command.Usage.
func (*ABI) Usage() string {
	return `abi [-format=json|yaml|cbor] [-o=<file>] - export the bridge wire contract.

The manifest holds the ABI version, the size of every structure and the
numbering of every translated concept. Peers compare manifests to detect a
mismatched contract.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (a *ABI) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.format, "format", "json", "manifest format: json, yaml, or cbor.")
	f.StringVar(&a.out, "o", "", "write the manifest to this file instead of stdout.")
}

// Execute implements subcommands.Command.Execute.
func (a *ABI) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var w io.Writer = os.Stdout
	if a.out != "" {
		file, err := os.Create(a.out)
		if err != nil {
			Fatalf("creating manifest file: %v", err)
		}
		defer file.Close()
		w = file
	}
	if err := writeManifest(w, a.format, buildManifest()); err != nil {
		Fatalf("writing manifest: %v", err)
	}
	return subcommands.ExitSuccess
}

func buildManifest() *Manifest {
	m := &Manifest{
		Version:   bridge.ABIVersion,
		ByteOrder: bridge.ByteOrder.String(),
	}
	for name, t := range bridge.Types() {
		m.Types = append(m.Types, TypeLayout{Name: name, Size: t.SizeBytes()})
	}
	sort.Slice(m.Types, func(i, j int) bool { return m.Types[i].Name < m.Types[j].Name })

	for _, c := range hostbridge.Concepts() {
		cm := ConceptManifest{
			Name:    c.Name,
			Kind:    c.Kind.String(),
			Unknown: c.ToBridgeUnknown,
			Values:  make(map[string]int, len(c.Domain)),
		}
		for _, v := range c.Domain {
			cm.Values[c.Format(v)] = v
		}
		m.Concepts = append(m.Concepts, cm)
	}
	return m
}

func writeManifest(w io.Writer, format string, m *Manifest) error {
	switch format {
	case "json", "yaml":
		return writeOutput(w, format, m, nil)
	case "cbor":
		return encMode.NewEncoder(w).Encode(m)
	default:
		return fmt.Errorf("unsupported manifest format %q, must be 'json', 'yaml', or 'cbor'", format)
	}
}
