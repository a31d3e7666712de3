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

package bridge

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSizes(t *testing.T) {
	for name, want := range map[string]int{
		"Timespec":  16,
		"Timeval":   16,
		"ITimerVal": 32,
		"Tms":       32,
		"Utimbuf":   16,
		"RUsage":    144,
		"Stat":      128,
		"PollFD":    8,
		"SigSet":    8,
		"SigInfo":   8,
		"WStatus":   2,
		"Sockaddr":  128,
		"FDSet":     128,
		"CPUSet":    128,
		"UtsName":   1536,
	} {
		m, ok := Types()[name]
		if !ok {
			t.Errorf("type %s not registered", name)
			continue
		}
		if got := m.SizeBytes(); got != want {
			t.Errorf("%s.SizeBytes() = %d, want %d", name, got, want)
		}
	}
}

func TestMarshalConsumesExactly(t *testing.T) {
	for name, m := range Types() {
		buf := make([]byte, m.SizeBytes()+3)
		if rest := m.MarshalBytes(buf); len(rest) != 3 {
			t.Errorf("%s.MarshalBytes left %d bytes, want 3", name, len(rest))
		}
		if rest := m.UnmarshalBytes(buf); len(rest) != 3 {
			t.Errorf("%s.UnmarshalBytes left %d bytes, want 3", name, len(rest))
		}
	}
}

func TestRUsageRoundTrip(t *testing.T) {
	want := RUsage{
		UTime:  Timeval{Sec: 1, Usec: 250000},
		STime:  Timeval{Sec: 0, Usec: 10},
		MaxRSS: 4096,
		NIvCSw: -7,
	}
	var got RUsage
	if err := Unmarshal(&got, Marshal(&want)); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RUsage mismatch (-want +got):\n%s", diff)
	}
}

func TestStatLayout(t *testing.T) {
	s := Stat{Dev: 1, Mode: 0o100644, CTime: Timespec{Sec: 3, Nsec: 4}}
	buf := Marshal(&s)
	if got := ByteOrder.Uint64(buf[16:24]); got != 0o100644 {
		t.Errorf("mode at offset 16 = %#o, want 0100644", got)
	}
	if got := ByteOrder.Uint64(buf[112:120]); got != 3 {
		t.Errorf("ctime.sec at offset 112 = %d, want 3", got)
	}
	var back Stat
	if err := Unmarshal(&back, buf); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("Stat mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalLength(t *testing.T) {
	var ts Timespec
	if err := Unmarshal(&ts, make([]byte, 15)); err == nil {
		t.Errorf("Unmarshal of a short buffer succeeded")
	}
	if err := Unmarshal(&ts, make([]byte, 17)); err == nil {
		t.Errorf("Unmarshal of a long buffer succeeded")
	}
}

func TestPollFDEncoding(t *testing.T) {
	p := PollFD{FD: 3, Events: POLLIN | POLLOUT, REvents: -1}
	want := []byte{3, 0, 0, 0, 5, 0, 0xff, 0xff}
	if got := Marshal(&p); !bytes.Equal(got, want) {
		t.Errorf("Marshal(%+v) = %v, want %v", p, got, want)
	}
}

func TestSockaddrInet(t *testing.T) {
	s4 := SockaddrInet4(8080, [4]byte{127, 0, 0, 1})
	if !bytes.Equal(s4.Data[:6], []byte{0x1f, 0x90, 127, 0, 0, 1}) {
		t.Errorf("inet4 data = %v", s4.Data[:6])
	}
	port, addr, ok := s4.Inet4()
	if !ok || port != 8080 || addr != [4]byte{127, 0, 0, 1} {
		t.Errorf("Inet4() = %d, %v, %t", port, addr, ok)
	}
	if _, _, _, _, ok := s4.Inet6(); ok {
		t.Errorf("Inet6() succeeded on an AF_INET address")
	}

	a6 := [16]byte{0xfe, 0x80, 15: 1}
	s6 := SockaddrInet6(443, 0x12345, a6, 2)
	p, flow, addr6, scope, ok := s6.Inet6()
	if !ok || p != 443 || flow != 0x12345 || addr6 != a6 || scope != 2 {
		t.Errorf("Inet6() = %d, %#x, %v, %d, %t", p, flow, addr6, scope, ok)
	}
}

func TestSockaddrUnix(t *testing.T) {
	for _, path := range [][]byte{nil, []byte("/tmp/sock"), []byte("\x00abstract")} {
		s, err := SockaddrUnix(path)
		if err != nil {
			t.Fatalf("SockaddrUnix(%q): %v", path, err)
		}
		got, ok := s.Unix()
		if !ok || !bytes.Equal(got, path) {
			t.Errorf("Unix() = %q, %t, want %q", got, ok, path)
		}
	}
	if _, err := SockaddrUnix(make([]byte, UnixPathMax+1)); err == nil {
		t.Errorf("SockaddrUnix accepted a %d byte path", UnixPathMax+1)
	}
}

func TestFDSet(t *testing.T) {
	var s FDSet
	for _, fd := range []int{3, 130} {
		if err := s.Set(fd); err != nil {
			t.Fatalf("Set(%d): %v", fd, err)
		}
	}
	var got []int
	s.ForEach(func(fd int) { got = append(got, fd) })
	if diff := cmp.Diff([]int{3, 130}, got); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}
	if s.Bits[0] != 0x08 || s.Bits[16] != 0x04 {
		t.Errorf("bits = %#x, %#x, want 0x8, 0x4", s.Bits[0], s.Bits[16])
	}
	for _, fd := range []int{-1, FDSetSize} {
		if err := s.Set(fd); err == nil {
			t.Errorf("Set(%d) succeeded", fd)
		}
		if err := s.Clear(fd); err == nil {
			t.Errorf("Clear(%d) succeeded", fd)
		}
		if s.IsSet(fd) {
			t.Errorf("IsSet(%d) = true", fd)
		}
	}
	if err := s.Clear(3); err != nil || s.IsSet(3) {
		t.Errorf("Clear(3) = %v, IsSet(3) = %t", err, s.IsSet(3))
	}
	s.Zero()
	if s.IsSet(130) {
		t.Errorf("IsSet(130) after Zero")
	}
}

func TestCPUSet(t *testing.T) {
	var s CPUSet
	for _, cpu := range []int{0, 63, 64, 1023} {
		if err := s.Set(cpu); err != nil {
			t.Fatalf("Set(%d): %v", cpu, err)
		}
	}
	if got := s.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
	if err := s.Set(1024); err == nil {
		t.Errorf("Set(1024) succeeded")
	}
	if s.IsSet(-5) || !s.IsSet(64) {
		t.Errorf("IsSet gave wrong membership")
	}
	s.Zero()
	if got := s.Count(); got != 0 {
		t.Errorf("Count() after Zero = %d", got)
	}
}

func TestSigSet(t *testing.T) {
	s := MakeSigSet(SIGHUP, SIGUSR2, SIGRTMAX, 0, 65)
	if s != 1|1<<30|1<<63 {
		t.Errorf("MakeSigSet = %#x", uint64(s))
	}
	if !s.Has(SIGRTMAX) || s.Has(SIGINT) || s.Has(0) {
		t.Errorf("Has gave wrong membership for %v", s)
	}
	s.Remove(SIGHUP)
	if got, want := s.String(), "[SIGUSR2 SIGRTMAX]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNames(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{Signals.Parse(SIGRTMIN + 3), "SIGRTMIN+3"},
		{AfFamily(AF_UNSUPPORTED).String(), "AF_UNSUPPORTED"},
		{AddressInfoErrors.Parse(uint64(0xfffffffffffffff8)), "EAI_NONAME"},
		{OpenFlags.Parse(O_CREAT | O_EXCL), "O_CREAT|O_EXCL"},
		{WStatus{Code: SIGKILL, Info: WStatusSignaled | WStatusCoreDump}.String(), "signaled|core(9)"},
	} {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
