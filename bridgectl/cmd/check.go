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
	"reflect"
	"sync"
	"time"

	"github.com/google/subcommands"
	"github.com/mohae/deepcopy"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	hostbridge "github.com/hostbridge/hostbridge/pkg/bridge"
	"github.com/hostbridge/hostbridge/pkg/log"
)

// Check implements subcommands.Command for the "check" command.
type Check struct{}

// CheckResult is the outcome of one self-check.
type CheckResult struct {
	Name  string `json:"name" yaml:"name"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Name implements subcommands.Command.Name.
func (*Check) Name() string {
	return "check"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Check) Synopsis() string {
	return "verify that every translation round trips"
}

// Usage implements subcommands.Command.Usage.
func (*Check) Usage() string {
	return `check - verify every concept and structure translator.

Each supported value is translated to the host and back, values outside the
supported domain must translate to the unknown sentinel, and structure
translators must reproduce their input without modifying it.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Check) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Check) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := configFrom(args)

	results, err := runChecks(ctx, conf.CheckWorkers)
	if err != nil {
		Fatalf("check interrupted: %v", err)
	}
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	if err := writeOutput(os.Stdout, conf.Output, results, func(w io.Writer) error {
		fmt.Fprintln(w, "CHECK\tRESULT")
		for _, r := range results {
			res := "ok"
			if r.Error != "" {
				res = r.Error
			}
			fmt.Fprintf(w, "%s\t%s\n", r.Name, res)
		}
		return nil
	}); err != nil {
		Fatalf("writing output: %v", err)
	}
	if failed > 0 {
		log.Warningf("%d of %d checks failed", failed, len(results))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// structCheck round trips sample through the host representation.
type structCheck struct {
	name      string
	sample    any
	roundTrip func(any) any
}

var structChecks = []structCheck{
	{"struct/timespec", &bridge.Timespec{Sec: 1700000000, Nsec: 999999999}, func(v any) any {
		var h unix.Timespec
		return hostbridge.ToBridgeTimespec(hostbridge.FromBridgeTimespec(v.(*bridge.Timespec), &h), &bridge.Timespec{})
	}},
	{"struct/itimerval", &bridge.ITimerVal{Interval: bridge.Timeval{Usec: 250000}, Value: bridge.Timeval{Sec: 3, Usec: 1}}, func(v any) any {
		var h unix.Itimerval
		return hostbridge.ToBridgeITimerVal(hostbridge.FromBridgeITimerVal(v.(*bridge.ITimerVal), &h), &bridge.ITimerVal{})
	}},
	{"struct/tms", &bridge.Tms{UTime: 10, STime: 20, CUTime: 30, CSTime: 40}, func(v any) any {
		var h unix.Tms
		return hostbridge.ToBridgeTms(hostbridge.FromBridgeTms(v.(*bridge.Tms), &h), &bridge.Tms{})
	}},
	{"struct/utimbuf", &bridge.Utimbuf{Actime: 1, Modtime: 2}, func(v any) any {
		var h unix.Utimbuf
		return hostbridge.ToBridgeUtimbuf(hostbridge.FromBridgeUtimbuf(v.(*bridge.Utimbuf), &h), &bridge.Utimbuf{})
	}},
	{"struct/rusage", &bridge.RUsage{UTime: bridge.Timeval{Sec: 1, Usec: 250000}, MaxRSS: 4096, MinFlt: 7, NVCSw: 3}, func(v any) any {
		var h unix.Rusage
		return hostbridge.ToBridgeRUsage(hostbridge.FromBridgeRUsage(v.(*bridge.RUsage), &h), &bridge.RUsage{})
	}},
	{"struct/stat", &bridge.Stat{Dev: 0x803, Ino: 42, Mode: 0100644, Nlink: 1, UID: 1000, GID: 1000, Size: 8192, Blksize: 4096, Blocks: 16, MTime: bridge.Timespec{Sec: 5, Nsec: 6}}, func(v any) any {
		var h unix.Stat_t
		return hostbridge.ToBridgeStat(hostbridge.FromBridgeStat(v.(*bridge.Stat), &h), &bridge.Stat{})
	}},
	{"struct/pollfd", &bridge.PollFD{FD: 3, Events: bridge.POLLIN | bridge.POLLOUT}, func(v any) any {
		var h unix.PollFd
		return hostbridge.ToBridgePollFD(hostbridge.FromBridgePollFD(v.(*bridge.PollFD), &h), &bridge.PollFD{})
	}},
	{"struct/sigset", ptr(bridge.MakeSigSet(bridge.SIGUSR1, bridge.SIGRTMIN+1, bridge.SIGRTMAX)), func(v any) any {
		var h unix.Sigset_t
		return hostbridge.ToBridgeSigSet(hostbridge.FromBridgeSigSet(v.(*bridge.SigSet), &h), new(bridge.SigSet))
	}},
	{"struct/siginfo", &bridge.SigInfo{Signo: bridge.SIGCHLD, Code: bridge.SI_USER}, func(v any) any {
		var h unix.Siginfo
		return hostbridge.ToBridgeSigInfo(hostbridge.FromBridgeSigInfo(v.(*bridge.SigInfo), &h), &bridge.SigInfo{})
	}},
	{"struct/wstatus", &bridge.WStatus{Code: bridge.SIGSEGV, Info: bridge.WStatusSignaled | bridge.WStatusCoreDump}, func(v any) any {
		w := hostbridge.ToBridgeWStatus(hostbridge.FromBridgeWStatus(*v.(*bridge.WStatus)))
		return &w
	}},
	{"struct/fdset", sampleFDSet(), func(v any) any {
		var h unix.FdSet
		return hostbridge.ToBridgeFDSet(hostbridge.FromBridgeFDSet(v.(*bridge.FDSet), &h), &bridge.FDSet{})
	}},
	{"struct/cpuset", sampleCPUSet(), func(v any) any {
		var h unix.CPUSet
		return hostbridge.ToBridgeCPUSet(hostbridge.FromBridgeCPUSet(v.(*bridge.CPUSet), &h), &bridge.CPUSet{})
	}},
	{"struct/sockaddr-inet6", ptr(bridge.SockaddrInet6(8080, 0x12345, [16]byte{15: 1}, 2)), sockaddrRoundTrip},
	{"struct/sockaddr-inet4", ptr(bridge.SockaddrInet4(53, [4]byte{127, 0, 0, 53})), sockaddrRoundTrip},
	{"struct/sockaddr-unix", ptr(bridge.Sockaddr{Family: bridge.AF_UNIX, Length: 5, Data: [bridge.SockaddrDataLen]byte{'/', 'r', 'u', 'n', '/'}}), sockaddrRoundTrip},
	{"struct/utsname", func() any {
		var u bridge.UtsName
		copy(u.Sysname[:], "Linux")
		copy(u.Machine[:], "x86_64")
		return &u
	}(), func(v any) any {
		var h unix.Utsname
		var out bridge.UtsName
		if !hostbridge.FromBridgeUtsName(v.(*bridge.UtsName), &h) || !hostbridge.ToBridgeUtsName(&h, &out) {
			return nil
		}
		return &out
	}},
}

func ptr[T any](v T) *T {
	return &v
}

func sampleFDSet() *bridge.FDSet {
	var s bridge.FDSet
	for _, fd := range []int{0, 63, 1023} {
		s.Set(fd)
	}
	return &s
}

func sampleCPUSet() *bridge.CPUSet {
	var s bridge.CPUSet
	s.Set(1)
	s.Set(64)
	return &s
}

func sockaddrRoundTrip(v any) any {
	var buf [unix.SizeofSockaddrAny]byte
	addrlen := uint32(len(buf))
	if !hostbridge.FromBridgeSockaddr(v.(*bridge.Sockaddr), buf[:], &addrlen) {
		return nil
	}
	return hostbridge.ToBridgeSockaddr(buf[:addrlen], &bridge.Sockaddr{})
}

func (c *structCheck) run() error {
	before := deepcopy.Copy(c.sample)
	got := c.roundTrip(c.sample)
	if !reflect.DeepEqual(c.sample, before) {
		return fmt.Errorf("translation modified its source: %+v, was %+v", c.sample, before)
	}
	if !reflect.DeepEqual(got, c.sample) {
		return fmt.Errorf("round trip produced %+v, want %+v", got, c.sample)
	}
	return nil
}

// runChecks verifies every concept and structure translator, using at most
// workers goroutines. Results are in registration order.
func runChecks(ctx context.Context, workers int) ([]CheckResult, error) {
	concepts := hostbridge.Concepts()
	results := make([]CheckResult, len(concepts)+len(structChecks))

	// Progress is reported at most once a second.
	progress := log.BasicRateLimitedLogger(time.Second)
	var (
		mu   sync.Mutex
		done int
	)
	record := func(i int, name string, err error) {
		results[i] = CheckResult{Name: name}
		if err != nil {
			results[i].Error = err.Error()
			log.Debugf("check %s failed: %v", name, err)
		}
		mu.Lock()
		done++
		n := done
		mu.Unlock()
		progress.Infof("checked %d of %d", n, len(results))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range concepts {
		i := i
		c := &concepts[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record(i, "concept/"+c.Name, c.Check())
			return nil
		})
	}
	for i := range structChecks {
		i := i
		sc := &structChecks[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record(len(concepts)+i, sc.name, sc.run())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
