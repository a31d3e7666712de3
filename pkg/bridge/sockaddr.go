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

	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/hostarch"
)

// Offsets into the host socket address structures.
const (
	// sockaddr_in.
	inet4PortOffset = 2
	inet4AddrOffset = 4

	// sockaddr_in6.
	inet6PortOffset     = 2
	inet6FlowinfoOffset = 4
	inet6AddrOffset     = 8
	inet6ScopeOffset    = 24

	// sockaddr_un.
	unixPathOffset = 2
	unixPathMax    = unix.SizeofSockaddrUnix - unixPathOffset
)

// FromBridgeSockaddr encodes src as a host socket address. At most
// min(*addrlen, len(dst)) bytes are written to dst, and *addrlen is set to
// the full length of the host address, which is larger than the space
// provided if the address was truncated. It returns false if src or addrlen
// is nil or the family is not supported.
func FromBridgeSockaddr(src *bridge.Sockaddr, dst []byte, addrlen *uint32) bool {
	if src == nil || addrlen == nil {
		return false
	}
	var buf [unix.SizeofSockaddrAny]byte
	n, ok := encodeHostSockaddr(src, &buf)
	if !ok {
		return false
	}
	copy(dst[:min(int(*addrlen), len(dst))], buf[:n])
	*addrlen = uint32(n)
	return true
}

func encodeHostSockaddr(src *bridge.Sockaddr, buf *[unix.SizeofSockaddrAny]byte) (int, bool) {
	family := FromBridgeAfFamily(bridge.AfFamily(src.Family))
	switch family {
	case unix.AF_UNSPEC:
		hostarch.ByteOrder.PutUint16(buf[:2], unix.AF_UNSPEC)
		return 2, true

	case unix.AF_INET:
		port, addr, ok := src.Inet4()
		if !ok {
			return 0, false
		}
		hostarch.ByteOrder.PutUint16(buf[:2], unix.AF_INET)
		hostarch.NetworkOrder.PutUint16(buf[inet4PortOffset:], port)
		copy(buf[inet4AddrOffset:], addr[:])
		return unix.SizeofSockaddrInet4, true

	case unix.AF_INET6:
		port, flowinfo, addr, scopeID, ok := src.Inet6()
		if !ok {
			return 0, false
		}
		hostarch.ByteOrder.PutUint16(buf[:2], unix.AF_INET6)
		hostarch.NetworkOrder.PutUint16(buf[inet6PortOffset:], port)
		hostarch.NetworkOrder.PutUint32(buf[inet6FlowinfoOffset:], flowinfo)
		copy(buf[inet6AddrOffset:], addr[:])
		hostarch.ByteOrder.PutUint32(buf[inet6ScopeOffset:], scopeID)
		return unix.SizeofSockaddrInet6, true

	case unix.AF_UNIX:
		path, ok := src.Unix()
		if !ok || len(path) > unixPathMax {
			return 0, false
		}
		hostarch.ByteOrder.PutUint16(buf[:2], unix.AF_UNIX)
		n := unixPathOffset + copy(buf[unixPathOffset:], path)
		// Pathname addresses carry their terminator when it fits.
		if len(path) > 0 && path[0] != 0 && len(path) < unixPathMax {
			buf[n] = 0
			n++
		}
		return n, true

	default:
		return 0, false
	}
}

// ToBridgeSockaddr decodes the host socket address in src into dst. It
// returns nil if dst is nil, src is too short for its family or the family
// is not supported.
func ToBridgeSockaddr(src []byte, dst *bridge.Sockaddr) *bridge.Sockaddr {
	if dst == nil || len(src) < 2 {
		return nil
	}
	switch hostarch.ByteOrder.Uint16(src[:2]) {
	case unix.AF_UNSPEC:
		*dst = bridge.Sockaddr{Family: bridge.AF_UNSPEC}

	case unix.AF_INET:
		if len(src) < inet4AddrOffset+4 {
			return nil
		}
		var addr [4]byte
		copy(addr[:], src[inet4AddrOffset:])
		*dst = bridge.SockaddrInet4(hostarch.NetworkOrder.Uint16(src[inet4PortOffset:]), addr)

	case unix.AF_INET6:
		if len(src) < unix.SizeofSockaddrInet6 {
			return nil
		}
		var addr [16]byte
		copy(addr[:], src[inet6AddrOffset:])
		*dst = bridge.SockaddrInet6(
			hostarch.NetworkOrder.Uint16(src[inet6PortOffset:]),
			hostarch.NetworkOrder.Uint32(src[inet6FlowinfoOffset:]),
			addr,
			hostarch.ByteOrder.Uint32(src[inet6ScopeOffset:]))

	case unix.AF_UNIX:
		path := src[unixPathOffset:]
		if len(path) > unixPathMax {
			path = path[:unixPathMax]
		}
		if len(path) > 0 && path[0] != 0 {
			if i := bytes.IndexByte(path, 0); i >= 0 {
				path = path[:i]
			}
		}
		s, err := bridge.SockaddrUnix(path)
		if err != nil {
			return nil
		}
		*dst = s

	default:
		return nil
	}
	return dst
}
