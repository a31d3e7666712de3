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

package bridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/abi/linux"
)

func TestRUsageRoundTrip(t *testing.T) {
	host := unix.Rusage{
		Utime:  unix.Timeval{Sec: 1, Usec: 250000},
		Maxrss: 4096,
		Nvcsw:  12,
	}
	var b bridge.RUsage
	if ToBridgeRUsage(&host, &b) == nil {
		t.Fatalf("ToBridgeRUsage failed")
	}
	if b.UTime.Sec != 1 || b.UTime.Usec != 250000 || b.MaxRSS != 4096 {
		t.Errorf("bridge rusage = %+v", b)
	}
	var back unix.Rusage
	if FromBridgeRUsage(&b, &back) == nil {
		t.Fatalf("FromBridgeRUsage failed")
	}
	if diff := cmp.Diff(host, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestStatRoundTrip(t *testing.T) {
	want := bridge.Stat{
		Dev:     0x803,
		Ino:     1234567,
		Mode:    unix.S_IFREG | 0o640,
		Nlink:   2,
		UID:     1000,
		GID:     100,
		Size:    1 << 33,
		Blksize: 4096,
		Blocks:  16,
		ATime:   bridge.Timespec{Sec: 1700000000, Nsec: 5},
		MTime:   bridge.Timespec{Sec: 1700000001},
		CTime:   bridge.Timespec{Sec: 1700000002, Nsec: 999999999},
	}
	var host unix.Stat_t
	if FromBridgeStat(&want, &host) == nil {
		t.Fatalf("FromBridgeStat failed")
	}
	if host.Mode != unix.S_IFREG|0o640 || host.Size != 1<<33 || host.Ctim.Nsec != 999999999 {
		t.Errorf("host stat = %+v", host)
	}
	var got bridge.Stat
	if ToBridgeStat(&host, &got) == nil {
		t.Fatalf("ToBridgeStat failed")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNilStructs(t *testing.T) {
	for _, tc := range []struct {
		name  string
		isNil bool
	}{
		{"FromBridgeStat", FromBridgeStat(nil, &unix.Stat_t{}) == nil},
		{"ToBridgeStat", ToBridgeStat(&unix.Stat_t{}, nil) == nil},
		{"FromBridgeTimespec", FromBridgeTimespec(nil, &unix.Timespec{}) == nil},
		{"ToBridgeTimeval", ToBridgeTimeval(nil, &bridge.Timeval{}) == nil},
		{"FromBridgeITimerVal", FromBridgeITimerVal(&bridge.ITimerVal{}, nil) == nil},
		{"ToBridgeTms", ToBridgeTms(nil, &bridge.Tms{}) == nil},
		{"FromBridgeUtimbuf", FromBridgeUtimbuf(nil, &unix.Utimbuf{}) == nil},
		{"ToBridgeRUsage", ToBridgeRUsage(nil, &bridge.RUsage{}) == nil},
		{"FromBridgePollFD", FromBridgePollFD(nil, &unix.PollFd{}) == nil},
		{"ToBridgeFDSet", ToBridgeFDSet(nil, &bridge.FDSet{}) == nil},
		{"FromBridgeCPUSet", FromBridgeCPUSet(&bridge.CPUSet{}, nil) == nil},
		{"FromBridgeSigSet", FromBridgeSigSet(nil, &unix.Sigset_t{}) == nil},
		{"ToBridgeSigInfo", ToBridgeSigInfo(&unix.Siginfo{}, nil) == nil},
		{"FromBridgeIovec", FromBridgeIovec(nil, &unix.Iovec{}) == nil},
		{"ToBridgeSockaddr", ToBridgeSockaddr(make([]byte, 16), nil) == nil},
	} {
		if !tc.isNil {
			t.Errorf("%s with a nil argument returned non-nil", tc.name)
		}
	}
}

func TestTimeConversions(t *testing.T) {
	it := bridge.ITimerVal{
		Interval: bridge.Timeval{Sec: 0, Usec: 100000},
		Value:    bridge.Timeval{Sec: 2, Usec: 5},
	}
	var hit unix.Itimerval
	FromBridgeITimerVal(&it, &hit)
	var itBack bridge.ITimerVal
	ToBridgeITimerVal(&hit, &itBack)
	if diff := cmp.Diff(it, itBack); diff != "" {
		t.Errorf("itimerval mismatch (-want +got):\n%s", diff)
	}

	tms := bridge.Tms{UTime: 1, STime: 2, CUTime: 3, CSTime: 4}
	var htms unix.Tms
	FromBridgeTms(&tms, &htms)
	if htms.Cstime != 4 {
		t.Errorf("host tms = %+v", htms)
	}
	var tmsBack bridge.Tms
	ToBridgeTms(&htms, &tmsBack)
	if diff := cmp.Diff(tms, tmsBack); diff != "" {
		t.Errorf("tms mismatch (-want +got):\n%s", diff)
	}

	ub := bridge.Utimbuf{Actime: 10, Modtime: 20}
	var hub unix.Utimbuf
	var ubBack bridge.Utimbuf
	ToBridgeUtimbuf(FromBridgeUtimbuf(&ub, &hub), &ubBack)
	if ubBack != ub {
		t.Errorf("utimbuf = %+v, want %+v", ubBack, ub)
	}

	ts := bridge.Timespec{Sec: -1, Nsec: 500}
	var hts unix.Timespec
	var tsBack bridge.Timespec
	ToBridgeTimespec(FromBridgeTimespec(&ts, &hts), &tsBack)
	if tsBack != ts {
		t.Errorf("timespec = %+v, want %+v", tsBack, ts)
	}
}

func TestPollFD(t *testing.T) {
	src := bridge.PollFD{FD: 7, Events: bridge.POLLIN | bridge.POLLRDHUP, REvents: bridge.POLLHUP}
	var host unix.PollFd
	FromBridgePollFD(&src, &host)
	if host.Fd != 7 || host.Events != unix.POLLIN|unix.POLLRDHUP || host.Revents != unix.POLLHUP {
		t.Errorf("host pollfd = %+v", host)
	}
	var back bridge.PollFD
	ToBridgePollFD(&host, &back)
	if back != src {
		t.Errorf("pollfd = %+v, want %+v", back, src)
	}
}

func TestPollBandEvents(t *testing.T) {
	for _, tc := range []struct {
		name   string
		bridge int
		host   int
	}{
		{"rdnorm", bridge.POLLRDNORM, linux.POLLRDNORM},
		{"rdband", bridge.POLLRDBAND, linux.POLLRDBAND},
		{"wrnorm", bridge.POLLWRNORM, linux.POLLWRNORM},
		{"wrband", bridge.POLLWRBAND, linux.POLLWRBAND},
		{"mixed", bridge.POLLIN | bridge.POLLRDNORM | bridge.POLLWRBAND, unix.POLLIN | linux.POLLRDNORM | linux.POLLWRBAND},
	} {
		if got := FromBridgePollEvents(tc.bridge); got != tc.host {
			t.Errorf("%s: FromBridgePollEvents(%#x) = %#x, want %#x", tc.name, tc.bridge, got, tc.host)
		}
		if got := ToBridgePollEvents(tc.host); got != tc.bridge {
			t.Errorf("%s: ToBridgePollEvents(%#x) = %#x, want %#x", tc.name, tc.host, got, tc.bridge)
		}
	}
}

func TestFDSet(t *testing.T) {
	var src bridge.FDSet
	src.Set(3)
	src.Set(130)
	var host unix.FdSet
	if FromBridgeFDSet(&src, &host) == nil {
		t.Fatalf("FromBridgeFDSet failed")
	}
	for fd := 0; fd < bridge.FDSetSize; fd++ {
		if want := fd == 3 || fd == 130; host.IsSet(fd) != want {
			t.Errorf("host IsSet(%d) = %t, want %t", fd, !want, want)
		}
	}
	var back bridge.FDSet
	back.Set(9)
	ToBridgeFDSet(&host, &back)
	if back != src {
		t.Errorf("round trip mismatch")
	}
}

func TestCPUSet(t *testing.T) {
	var src bridge.CPUSet
	for _, cpu := range []int{0, 5, 64, 1000} {
		src.Set(cpu)
	}
	var host unix.CPUSet
	FromBridgeCPUSet(&src, &host)
	if got := host.Count(); got != 4 {
		t.Errorf("host Count() = %d, want 4", got)
	}
	var back bridge.CPUSet
	ToBridgeCPUSet(&host, &back)
	if back != src {
		t.Errorf("round trip mismatch")
	}
}

func TestSigSet(t *testing.T) {
	src := bridge.MakeSigSet(bridge.SIGUSR1, bridge.SIGCHLD, bridge.SIGRTMIN+2)
	var host unix.Sigset_t
	host.Val[0] = ^uint64(0)
	FromBridgeSigSet(&src, &host)
	want := uint64(1)<<(unix.SIGUSR1-1) | 1<<(unix.SIGCHLD-1) | 1<<(linux.SIGRTMIN+2-1)
	if host.Val[0] != want {
		t.Errorf("host sigset = %#x, want %#x", host.Val[0], want)
	}
	// SIGSTKFLT has no bridge equivalent.
	host.Val[0] |= 1 << (16 - 1)
	var back bridge.SigSet
	ToBridgeSigSet(&host, &back)
	if back != src {
		t.Errorf("sigset = %v, want %v", back, src)
	}
}

func TestSigInfo(t *testing.T) {
	src := bridge.SigInfo{Signo: bridge.SIGTERM, Code: bridge.SI_QUEUE}
	var host unix.Siginfo
	host.Errno = 5
	FromBridgeSigInfo(&src, &host)
	if host.Signo != int32(unix.SIGTERM) || host.Code != linux.SI_QUEUE || host.Errno != 0 {
		t.Errorf("host siginfo = %+v", host)
	}
	var back bridge.SigInfo
	ToBridgeSigInfo(&host, &back)
	if back != src {
		t.Errorf("siginfo = %+v, want %+v", back, src)
	}
}

func TestWStatus(t *testing.T) {
	for _, tc := range []struct {
		name string
		b    bridge.WStatus
		host unix.WaitStatus
	}{
		{"exit 0", bridge.WStatus{Info: bridge.WStatusExited}, 0},
		{"exit 3", bridge.WStatus{Code: 3, Info: bridge.WStatusExited}, 3 << 8},
		{"killed", bridge.WStatus{Code: bridge.SIGKILL, Info: bridge.WStatusSignaled}, unix.WaitStatus(unix.SIGKILL)},
		{"core", bridge.WStatus{Code: bridge.SIGSEGV, Info: bridge.WStatusSignaled | bridge.WStatusCoreDump}, unix.WaitStatus(unix.SIGSEGV) | 0x80},
		{"stopped", bridge.WStatus{Code: bridge.SIGTSTP, Info: bridge.WStatusStopped}, unix.WaitStatus(unix.SIGTSTP)<<8 | 0x7f},
		{"continued", bridge.WStatus{Info: bridge.WStatusContinued}, 0xffff},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromBridgeWStatus(tc.b); got != tc.host {
				t.Errorf("FromBridgeWStatus(%v) = %#x, want %#x", tc.b, uint32(got), uint32(tc.host))
			}
			if got := ToBridgeWStatus(tc.host); got != tc.b {
				t.Errorf("ToBridgeWStatus(%#x) = %v, want %v", uint32(tc.host), got, tc.b)
			}
		})
	}
}
