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

	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
)

func TestCStringCopy(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		size int
		ok   bool
	}{
		{name: "fits", src: "enclave", size: 8, ok: true},
		{name: "no room for terminator", src: "enclave", size: 7, ok: false},
		{name: "stops at NUL", src: "encl\x00ave", size: 5, ok: true},
		{name: "empty", src: "", size: 1, ok: true},
		{name: "zero capacity", src: "", size: 0, ok: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, tc.size, tc.size+4)
			if got := CStringCopy([]byte(tc.src), dst); got != tc.ok {
				t.Fatalf("CStringCopy(%q, size %d) = %t, want %t", tc.src, tc.size, got, tc.ok)
			}
			if !tc.ok {
				return
			}
			want := tc.src
			if i := bytes.IndexByte([]byte(want), 0); i >= 0 {
				want = want[:i]
			}
			if got := string(dst[:len(want)]); got != want || dst[len(want)] != 0 {
				t.Errorf("dst = %q, want %q followed by NUL", dst, want)
			}
		})
	}
}

func TestCStringCopyStaysInBounds(t *testing.T) {
	buf := []byte("XXXXXXXXXXXX")
	CStringCopy([]byte("a long string"), buf[:4])
	if got := string(buf[4:]); got != "XXXXXXXX" {
		t.Errorf("bytes past capacity changed: %q", got)
	}
}

func setField(f []byte, s string) {
	copy(f, s)
	f[len(s)] = 0
}

func TestUtsNameRoundTrip(t *testing.T) {
	var src unix.Utsname
	setField(src.Sysname[:], "Linux")
	setField(src.Nodename[:], "host")
	setField(src.Release[:], "6.1.0")
	setField(src.Version[:], "#1 SMP")
	setField(src.Machine[:], "x86_64")
	setField(src.Domainname[:], "(none)")

	var b bridge.UtsName
	if !ToBridgeUtsName(&src, &b) {
		t.Fatalf("ToBridgeUtsName failed")
	}
	if got, want := b.String(), "Linux host 6.1.0 #1 SMP x86_64 (none)"; got != want {
		t.Errorf("bridge utsname = %q, want %q", got, want)
	}
	var back unix.Utsname
	if !FromBridgeUtsName(&b, &back) {
		t.Fatalf("FromBridgeUtsName failed")
	}
	if back != src {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, src)
	}
}

func TestUtsNameOverflow(t *testing.T) {
	var b bridge.UtsName
	setField(b.Sysname[:], "Linux")
	setField(b.Nodename[:], "host")
	long := bytes.Repeat([]byte{'r'}, 100)
	copy(b.Release[:], long)
	setField(b.Machine[:], "aarch64")

	var dst unix.Utsname
	if FromBridgeUtsName(&b, &dst) {
		t.Fatalf("FromBridgeUtsName succeeded with a 100 byte release")
	}
	// Fields before the failing one are kept.
	if got := string(dst.Nodename[:4]); got != "host" {
		t.Errorf("nodename = %q, want host", got)
	}
	if dst.Machine[0] != 0 {
		t.Errorf("machine written after the failure")
	}
}

func TestUtsNameNil(t *testing.T) {
	var b bridge.UtsName
	var u unix.Utsname
	if FromBridgeUtsName(nil, &u) || FromBridgeUtsName(&b, nil) || ToBridgeUtsName(nil, &b) || ToBridgeUtsName(&u, nil) {
		t.Errorf("utsname conversion with a nil argument succeeded")
	}
}

func TestErrorKindErrno(t *testing.T) {
	for _, tc := range []struct {
		kind ErrorKind
		want unix.Errno
	}{
		{InvalidArgument, unix.EFAULT},
		{Unrecognized, 0},
		{Truncated, 0},
		{TextOverflow, unix.ENAMETOOLONG},
	} {
		if got := tc.kind.Errno(); got != tc.want {
			t.Errorf("%v.Errno() = %v, want %v", tc.kind, got, tc.want)
		}
	}
}
