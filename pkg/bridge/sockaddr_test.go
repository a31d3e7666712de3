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
	"bytes"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
)

func TestHostSockaddrOffsets(t *testing.T) {
	var in4 unix.RawSockaddrInet4
	var in6 unix.RawSockaddrInet6
	var un unix.RawSockaddrUnix
	for _, tc := range []struct {
		name string
		got  uintptr
		want int
	}{
		{"sin_port", unsafe.Offsetof(in4.Port), inet4PortOffset},
		{"sin_addr", unsafe.Offsetof(in4.Addr), inet4AddrOffset},
		{"sin6_port", unsafe.Offsetof(in6.Port), inet6PortOffset},
		{"sin6_flowinfo", unsafe.Offsetof(in6.Flowinfo), inet6FlowinfoOffset},
		{"sin6_addr", unsafe.Offsetof(in6.Addr), inet6AddrOffset},
		{"sin6_scope_id", unsafe.Offsetof(in6.Scope_id), inet6ScopeOffset},
		{"sun_path", unsafe.Offsetof(un.Path), unixPathOffset},
	} {
		if int(tc.got) != tc.want {
			t.Errorf("offset of %s = %d, want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestSockaddrInet4(t *testing.T) {
	src := bridge.SockaddrInet4(80, [4]byte{10, 0, 0, 1})
	buf := make([]byte, unix.SizeofSockaddrAny)
	addrlen := uint32(len(buf))
	if !FromBridgeSockaddr(&src, buf, &addrlen) {
		t.Fatalf("FromBridgeSockaddr failed")
	}
	if addrlen != unix.SizeofSockaddrInet4 {
		t.Errorf("addrlen = %d, want %d", addrlen, unix.SizeofSockaddrInet4)
	}
	raw := (*unix.RawSockaddrInet4)(unsafe.Pointer(&buf[0]))
	if raw.Family != unix.AF_INET || raw.Addr != [4]byte{10, 0, 0, 1} {
		t.Errorf("host address = %+v", raw)
	}
	if p := (*[2]byte)(unsafe.Pointer(&raw.Port)); p[0] != 0 || p[1] != 80 {
		t.Errorf("port bytes = %v, want network order 80", p)
	}

	var back bridge.Sockaddr
	if ToBridgeSockaddr(buf[:addrlen], &back) == nil {
		t.Fatalf("ToBridgeSockaddr failed")
	}
	if diff := cmp.Diff(src, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSockaddrInet6Truncated(t *testing.T) {
	addr := [16]byte{0x20, 0x01, 0x0d, 0xb8, 15: 1}
	src := bridge.SockaddrInet6(443, 7, addr, 3)

	full := make([]byte, unix.SizeofSockaddrInet6)
	fullLen := uint32(len(full))
	if !FromBridgeSockaddr(&src, full, &fullLen) {
		t.Fatalf("FromBridgeSockaddr failed")
	}

	buf := bytes.Repeat([]byte{0xee}, 32)
	addrlen := uint32(16)
	if !FromBridgeSockaddr(&src, buf, &addrlen) {
		t.Fatalf("FromBridgeSockaddr into 16 bytes failed")
	}
	if addrlen != 28 {
		t.Errorf("addrlen = %d, want 28", addrlen)
	}
	if !bytes.Equal(buf[:16], full[:16]) {
		t.Errorf("truncated prefix = %v, want %v", buf[:16], full[:16])
	}
	if !bytes.Equal(buf[16:], bytes.Repeat([]byte{0xee}, 16)) {
		t.Errorf("bytes past addrlen written: %v", buf[16:])
	}

	raw := (*unix.RawSockaddrInet6)(unsafe.Pointer(&full[0]))
	if raw.Scope_id != 3 || raw.Addr != addr {
		t.Errorf("host address = %+v", raw)
	}
	var back bridge.Sockaddr
	if ToBridgeSockaddr(full, &back) == nil {
		t.Fatalf("ToBridgeSockaddr failed")
	}
	if diff := cmp.Diff(src, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if ToBridgeSockaddr(full[:20], &back) != nil {
		t.Errorf("ToBridgeSockaddr accepted a short inet6 address")
	}
}

func TestSockaddrUnix(t *testing.T) {
	for _, tc := range []struct {
		name    string
		path    string
		hostLen uint32
	}{
		{"unnamed", "", 2},
		{"pathname", "/run/sock", 2 + 9 + 1},
		{"abstract", "\x00bus", 2 + 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src, err := bridge.SockaddrUnix([]byte(tc.path))
			if err != nil {
				t.Fatalf("SockaddrUnix: %v", err)
			}
			buf := make([]byte, unix.SizeofSockaddrUnix)
			addrlen := uint32(len(buf))
			if !FromBridgeSockaddr(&src, buf, &addrlen) {
				t.Fatalf("FromBridgeSockaddr failed")
			}
			if addrlen != tc.hostLen {
				t.Errorf("addrlen = %d, want %d", addrlen, tc.hostLen)
			}
			var back bridge.Sockaddr
			if ToBridgeSockaddr(buf[:addrlen], &back) == nil {
				t.Fatalf("ToBridgeSockaddr failed")
			}
			if diff := cmp.Diff(src, back); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSockaddrUnsupported(t *testing.T) {
	src := bridge.Sockaddr{Family: bridge.AF_PACKET}
	addrlen := uint32(64)
	if FromBridgeSockaddr(&src, make([]byte, 64), &addrlen) {
		t.Errorf("FromBridgeSockaddr accepted AF_PACKET")
	}
	if addrlen != 64 {
		t.Errorf("addrlen changed on failure")
	}
	if FromBridgeSockaddr(nil, nil, &addrlen) || FromBridgeSockaddr(&src, nil, nil) {
		t.Errorf("FromBridgeSockaddr accepted a nil argument")
	}
	host := []byte{byte(unix.AF_BLUETOOTH), 0, 1, 2, 3}
	if ToBridgeSockaddr(host, &bridge.Sockaddr{}) != nil {
		t.Errorf("ToBridgeSockaddr accepted AF_BLUETOOTH")
	}
	if ToBridgeSockaddr([]byte{1}, &bridge.Sockaddr{}) != nil {
		t.Errorf("ToBridgeSockaddr accepted a 1 byte address")
	}
}

func TestSockaddrUnspec(t *testing.T) {
	src := bridge.Sockaddr{Family: bridge.AF_UNSPEC}
	buf := make([]byte, 16)
	addrlen := uint32(len(buf))
	if !FromBridgeSockaddr(&src, buf, &addrlen) || addrlen != 2 {
		t.Fatalf("FromBridgeSockaddr(AF_UNSPEC) addrlen = %d", addrlen)
	}
	var back bridge.Sockaddr
	if ToBridgeSockaddr(buf[:addrlen], &back) == nil || back.Family != bridge.AF_UNSPEC {
		t.Errorf("ToBridgeSockaddr(AF_UNSPEC) = %+v", back)
	}
}
