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
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
)

// FromBridgeIovec points dst at the memory of src.
func FromBridgeIovec(src *bridge.Iovec, dst *unix.Iovec) *unix.Iovec {
	if src == nil || dst == nil {
		return nil
	}
	dst.Base = nil
	if len(src.Base) > 0 {
		dst.Base = &src.Base[0]
	}
	dst.SetLen(len(src.Base))
	return dst
}

// ToBridgeIovec points dst at the memory described by src.
func ToBridgeIovec(src *unix.Iovec, dst *bridge.Iovec) *bridge.Iovec {
	if src == nil || dst == nil {
		return nil
	}
	dst.Base = hostBytes(src.Base, int(src.Len))
	return dst
}

// FromBridgeMsgHdr converts src into dst without copying any payload: dst
// refers to the name, segments and control data of src. The host segment
// descriptors are stored in iovs, which must have room for every segment of
// src. The message flags are translated. The name is carried unchanged; use
// FromBridgeSockaddr to convert it.
func FromBridgeMsgHdr(src *bridge.MsgHdr, dst *unix.Msghdr, iovs []unix.Iovec) *unix.Msghdr {
	if src == nil || dst == nil || len(iovs) < len(src.Iov) {
		return nil
	}
	*dst = unix.Msghdr{}
	if len(src.Name) > 0 {
		dst.Name = &src.Name[0]
		dst.Namelen = uint32(len(src.Name))
	}
	for i := range src.Iov {
		FromBridgeIovec(&src.Iov[i], &iovs[i])
	}
	if len(src.Iov) > 0 {
		dst.Iov = &iovs[0]
		dst.SetIovlen(len(src.Iov))
	}
	if len(src.Control) > 0 {
		dst.Control = &src.Control[0]
		dst.SetControllen(len(src.Control))
	}
	dst.Flags = int32(FromBridgeMsgFlags(int(src.Flags)))
	return dst
}

// ToBridgeMsgHdr converts src into dst without copying any payload. The
// bridge segment descriptors are stored in iovs, which must have room for
// every segment of src.
func ToBridgeMsgHdr(src *unix.Msghdr, dst *bridge.MsgHdr, iovs []bridge.Iovec) *bridge.MsgHdr {
	if src == nil || dst == nil || uint64(len(iovs)) < uint64(src.Iovlen) {
		return nil
	}
	hostIovs := hostIovecs(src.Iov, int(src.Iovlen))
	for i := range hostIovs {
		ToBridgeIovec(&hostIovs[i], &iovs[i])
	}
	dst.Name = hostBytes(src.Name, int(src.Namelen))
	dst.Iov = iovs[:len(hostIovs)]
	dst.Control = hostBytes(src.Control, int(src.Controllen))
	dst.Flags = int32(ToBridgeMsgFlags(int(src.Flags)))
	return dst
}

// FromBridgeIovecArray copies the payload of each segment of src into the
// corresponding segment of dst. It returns false, without copying anything,
// if the segment counts differ, a destination segment is shorter than its
// source, or a host segment has a length but no memory. Segment descriptors
// are not modified.
func FromBridgeIovecArray(src []bridge.Iovec, dst []unix.Iovec) bool {
	if len(src) != len(dst) {
		return false
	}
	for i := range src {
		if dst[i].Base == nil && dst[i].Len > 0 {
			return false
		}
		if uint64(len(src[i].Base)) > uint64(dst[i].Len) {
			return false
		}
	}
	for i := range src {
		copy(hostBytes(dst[i].Base, int(dst[i].Len)), src[i].Base)
	}
	return true
}

// ToBridgeIovecArray copies the payload of each segment of src into the
// corresponding segment of dst, under the same rules as
// FromBridgeIovecArray.
func ToBridgeIovecArray(src []unix.Iovec, dst []bridge.Iovec) bool {
	if len(src) != len(dst) {
		return false
	}
	for i := range src {
		if src[i].Base == nil && src[i].Len > 0 {
			return false
		}
		if uint64(src[i].Len) > uint64(len(dst[i].Base)) {
			return false
		}
	}
	for i := range src {
		copy(dst[i].Base, hostBytes(src[i].Base, int(src[i].Len)))
	}
	return true
}
