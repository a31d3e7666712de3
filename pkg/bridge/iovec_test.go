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

func TestMsgHdrShallow(t *testing.T) {
	name := []byte{1, 2, 3, 4}
	seg0 := []byte("hello")
	seg1 := []byte("world!")
	control := make([]byte, 24)
	src := bridge.MsgHdr{
		Name:    name,
		Iov:     []bridge.Iovec{{Base: seg0}, {Base: seg1}, {}},
		Control: control,
		Flags:   bridge.MSG_PEEK | bridge.MSG_WAITALL,
	}

	var hdr unix.Msghdr
	iovs := make([]unix.Iovec, 3)
	if FromBridgeMsgHdr(&src, &hdr, iovs) == nil {
		t.Fatalf("FromBridgeMsgHdr failed")
	}
	if hdr.Name != &name[0] || hdr.Namelen != 4 {
		t.Errorf("name not carried through")
	}
	if hdr.Iov != &iovs[0] || hdr.Iovlen != 3 {
		t.Errorf("iov = %p/%d, want the supplied array", hdr.Iov, hdr.Iovlen)
	}
	if iovs[0].Base != &seg0[0] || iovs[0].Len != 5 || iovs[1].Len != 6 || iovs[2].Base != nil {
		t.Errorf("segments not shallow copies: %+v", iovs)
	}
	if hdr.Control != &control[0] || hdr.Controllen != 24 {
		t.Errorf("control not carried through")
	}
	if hdr.Flags != unix.MSG_PEEK|unix.MSG_WAITALL {
		t.Errorf("flags = %#x", hdr.Flags)
	}

	var back bridge.MsgHdr
	biovs := make([]bridge.Iovec, 4)
	if ToBridgeMsgHdr(&hdr, &back, biovs) == nil {
		t.Fatalf("ToBridgeMsgHdr failed")
	}
	if len(back.Iov) != 3 || &back.Iov[1].Base[0] != &seg1[0] || back.Iov[2].Base != nil {
		t.Errorf("bridge segments = %+v", back.Iov)
	}
	if &back.Name[0] != &name[0] || len(back.Control) != 24 || back.Flags != src.Flags {
		t.Errorf("bridge header = %+v", back)
	}
}

func TestMsgHdrShortIovecArray(t *testing.T) {
	src := bridge.MsgHdr{Iov: make([]bridge.Iovec, 2)}
	if FromBridgeMsgHdr(&src, &unix.Msghdr{}, make([]unix.Iovec, 1)) != nil {
		t.Errorf("FromBridgeMsgHdr accepted a short iovec array")
	}
	if FromBridgeMsgHdr(nil, &unix.Msghdr{}, nil) != nil || ToBridgeMsgHdr(nil, &bridge.MsgHdr{}, nil) != nil {
		t.Errorf("nil source accepted")
	}
}

func TestIovecArrayDeepCopy(t *testing.T) {
	src := []bridge.Iovec{{Base: []byte("abc")}, {Base: []byte("de")}}
	out0 := make([]byte, 3)
	out1 := make([]byte, 4)
	dst := make([]unix.Iovec, 2)
	FromBridgeIovec(&bridge.Iovec{Base: out0}, &dst[0])
	FromBridgeIovec(&bridge.Iovec{Base: out1}, &dst[1])

	if !FromBridgeIovecArray(src, dst) {
		t.Fatalf("FromBridgeIovecArray failed")
	}
	if string(out0) != "abc" || !bytes.Equal(out1, []byte{'d', 'e', 0, 0}) {
		t.Errorf("payload = %q, %q", out0, out1)
	}
	if dst[1].Len != 4 {
		t.Errorf("segment length changed to %d", dst[1].Len)
	}

	back := []bridge.Iovec{{Base: make([]byte, 3)}, {Base: make([]byte, 4)}}
	if !ToBridgeIovecArray(dst, back) {
		t.Fatalf("ToBridgeIovecArray failed")
	}
	if string(back[0].Base) != "abc" {
		t.Errorf("payload = %q", back[0].Base)
	}
}

func TestIovecArrayRejects(t *testing.T) {
	short := make([]byte, 2)
	dst := make([]unix.Iovec, 1)
	FromBridgeIovec(&bridge.Iovec{Base: short}, &dst[0])
	if FromBridgeIovecArray([]bridge.Iovec{{Base: []byte("abc")}}, dst) {
		t.Errorf("copy into a short segment succeeded")
	}
	if short[0] != 0 {
		t.Errorf("short segment written before failing")
	}
	if FromBridgeIovecArray(make([]bridge.Iovec, 2), dst) {
		t.Errorf("copy with mismatched counts succeeded")
	}
	if ToBridgeIovecArray(dst, []bridge.Iovec{{Base: make([]byte, 1)}}) {
		t.Errorf("copy into a short bridge segment succeeded")
	}
}

func TestIovecArrayNilBase(t *testing.T) {
	var hole unix.Iovec
	hole.SetLen(64)
	if FromBridgeIovecArray([]bridge.Iovec{{Base: []byte("payload")}}, []unix.Iovec{hole}) {
		t.Errorf("copy into a segment without memory succeeded")
	}
	out := make([]byte, 64)
	if ToBridgeIovecArray([]unix.Iovec{hole}, []bridge.Iovec{{Base: out}}) {
		t.Errorf("copy from a segment without memory succeeded")
	}

	// An empty segment needs no memory.
	if !FromBridgeIovecArray([]bridge.Iovec{{}}, []unix.Iovec{{}}) {
		t.Errorf("copy of an empty segment failed")
	}
}
