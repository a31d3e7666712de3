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
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
	"github.com/hostbridge/hostbridge/pkg/log"
)

// Uname implements subcommands.Command for the "uname" command.
type Uname struct {
	wire bool
}

// UnameResult is the bridge utsname in printable form.
type UnameResult struct {
	Sysname    string `json:"sysname" yaml:"sysname"`
	Nodename   string `json:"nodename" yaml:"nodename"`
	Release    string `json:"release" yaml:"release"`
	Version    string `json:"version" yaml:"version"`
	Machine    string `json:"machine" yaml:"machine"`
	Domainname string `json:"domainname" yaml:"domainname"`
	Wire       string `json:"wire,omitempty" yaml:"wire,omitempty"`
}

// Name implements subcommands.Command.Name.
func (*Uname) Name() string {
	return "uname"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Uname) Synopsis() string {
	return "call uname(2) on the host and print the bridge result"
}

// Usage implements subcommands.Command.Usage.
func (*Uname) Usage() string {
	return `uname [-wire] - call uname(2) on the host and print the result as it is
returned across the bridge.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (u *Uname) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&u.wire, "wire", false, "include the hex wire encoding.")
}

// Execute implements subcommands.Command.Execute.
func (u *Uname) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)

	res, err := hostUname(u.wire)
	if err != nil {
		Fatalf("%v", err)
	}
	if err := writeOutput(os.Stdout, conf.Output, res, func(w io.Writer) error {
		fmt.Fprintf(w, "%s %s %s %s %s %s\n", res.Sysname, res.Nodename, res.Release, res.Version, res.Machine, res.Domainname)
		if res.Wire != "" {
			fmt.Fprintln(w, res.Wire)
		}
		return nil
	}); err != nil {
		Fatalf("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// hostUname performs uname(2) and translates the result to the bridge.
func hostUname(wire bool) (*UnameResult, error) {
	var h unix.Utsname
	if err := unix.Uname(&h); err != nil {
		return nil, fmt.Errorf("uname: %w", err)
	}
	var b bridge.UtsName
	if !hostbridge.ToBridgeUtsName(&h, &b) {
		return nil, fmt.Errorf("uname: %w", hostbridge.TextOverflow.Errno())
	}
	log.Debugf("uname: %s", b)

	res := &UnameResult{
		Sysname:    cstring(b.Sysname[:]),
		Nodename:   cstring(b.Nodename[:]),
		Release:    cstring(b.Release[:]),
		Version:    cstring(b.Version[:]),
		Machine:    cstring(b.Machine[:]),
		Domainname: cstring(b.Domainname[:]),
	}
	if wire {
		res.Wire = hex.EncodeToString(bridge.Marshal(&b))
	}
	return res, nil
}

func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
