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
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
)

// Stat implements subcommands.Command for the "stat" command.
type Stat struct {
	noFollow bool
	wire     bool
}

// StatResult is the bridge stat record of one path.
type StatResult struct {
	Path string       `json:"path" yaml:"path"`
	Stat *bridge.Stat `json:"stat" yaml:"stat"`
	Wire string       `json:"wire,omitempty" yaml:"wire,omitempty"`
}

// Name implements subcommands.Command.Name.
func (*Stat) Name() string {
	return "stat"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Stat) Synopsis() string {
	return "call stat(2) on the host and print the bridge result"
}

// Usage implements subcommands.Command.Usage.
func (*Stat) Usage() string {
	return `stat [-l] [-wire] <path>... - call stat(2) on each path and print the
result as it is returned across the bridge.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Stat) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&s.noFollow, "l", false, "do not follow symbolic links (lstat).")
	f.BoolVar(&s.wire, "wire", false, "include the hex wire encoding.")
}

// Execute implements subcommands.Command.Execute.
func (s *Stat) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)

	var results []StatResult
	for _, path := range f.Args() {
		res, err := hostStat(path, s.noFollow, s.wire)
		if err != nil {
			Fatalf("%v", err)
		}
		results = append(results, *res)
	}
	if err := writeOutput(os.Stdout, conf.Output, results, func(w io.Writer) error {
		fmt.Fprintln(w, "PATH\tMODE\tNLINK\tUID\tGID\tSIZE\tMTIME")
		for _, r := range results {
			st := r.Stat
			fmt.Fprintf(w, "%s\t%#o\t%d\t%d\t%d\t%d\t%d.%09d\n", r.Path, st.Mode, st.Nlink, st.UID, st.GID, st.Size, st.MTime.Sec, st.MTime.Nsec)
			if r.Wire != "" {
				fmt.Fprintf(w, "\t%s\n", r.Wire)
			}
		}
		return nil
	}); err != nil {
		Fatalf("writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// hostStat performs stat(2) or lstat(2) on path and translates the result to
// the bridge.
func hostStat(path string, noFollow, wire bool) (*StatResult, error) {
	var (
		h    unix.Stat_t
		err  error
		call = "stat"
	)
	if noFollow {
		call = "lstat"
		err = unix.Lstat(path, &h)
	} else {
		err = unix.Stat(path, &h)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", call, path, err)
	}
	res := &StatResult{Path: path, Stat: hostbridge.ToBridgeStat(&h, &bridge.Stat{})}
	if wire {
		res.Wire = hex.EncodeToString(bridge.Marshal(res.Stat))
	}
	return res, nil
}
