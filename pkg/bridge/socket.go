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

var afFamilies = newEnumTable(
	[2]int{bridge.AF_UNSPEC, unix.AF_UNSPEC},
	[2]int{bridge.AF_UNIX, unix.AF_UNIX},
	[2]int{bridge.AF_INET, unix.AF_INET},
	[2]int{bridge.AF_INET6, unix.AF_INET6},
	[2]int{bridge.AF_PACKET, unix.AF_PACKET},
	[2]int{bridge.AF_NETLINK, unix.AF_NETLINK},
)

// FromBridgeAfFamily converts a bridge address family. It returns -1 for an
// unrecognized family.
func FromBridgeAfFamily(family bridge.AfFamily) int {
	return afFamilies.fromBridge(int(family), -1)
}

// ToBridgeAfFamily converts a host address family. It returns
// AF_UNSUPPORTED for an unrecognized family.
func ToBridgeAfFamily(family int) bridge.AfFamily {
	return bridge.AfFamily(afFamilies.toBridgeValue(family, bridge.AF_UNSUPPORTED))
}

var socketTypes = newEnumTable(
	[2]int{bridge.SOCK_STREAM, unix.SOCK_STREAM},
	[2]int{bridge.SOCK_DGRAM, unix.SOCK_DGRAM},
	[2]int{bridge.SOCK_SEQPACKET, unix.SOCK_SEQPACKET},
	[2]int{bridge.SOCK_RAW, unix.SOCK_RAW},
)

var socketTypeFlags = flagTable{
	{bridge.SOCK_NONBLOCK, unix.SOCK_NONBLOCK},
	{bridge.SOCK_CLOEXEC, unix.SOCK_CLOEXEC},
}

// hostSocketTypeMask covers the base type in a host socket type argument.
const hostSocketTypeMask = 0xf

// FromBridgeSocketType converts a bridge socket type, which may carry
// SOCK_NONBLOCK and SOCK_CLOEXEC. It returns -1 if the base type is not
// recognized.
func FromBridgeSocketType(typ int) int {
	base := socketTypes.fromBridge(typ&bridge.SOCK_TYPE_MASK, -1)
	if base == -1 {
		return -1
	}
	return base | socketTypeFlags.fromBridge(typ)
}

// ToBridgeSocketType converts a host socket type. It returns -1 if the base
// type is not recognized.
func ToBridgeSocketType(typ int) int {
	base := socketTypes.toBridgeValue(typ&hostSocketTypeMask, -1)
	if base == -1 {
		return -1
	}
	return base | socketTypeFlags.toBridgeValue(typ)
}

var socketLevels = newEnumTable(
	[2]int{bridge.SOL_SOCKET, unix.SOL_SOCKET},
	[2]int{bridge.IPPROTO_IP, unix.IPPROTO_IP},
	[2]int{bridge.IPPROTO_TCP, unix.IPPROTO_TCP},
	[2]int{bridge.IPPROTO_UDP, unix.IPPROTO_UDP},
	[2]int{bridge.IPPROTO_IPV6, unix.IPPROTO_IPV6},
)

// FromBridgeSocketLevel converts a bridge option level. It returns -1 for an
// unrecognized level.
func FromBridgeSocketLevel(level int) int {
	return socketLevels.fromBridge(level, -1)
}

// ToBridgeSocketLevel converts a host option level. It returns -1 for an
// unrecognized level.
func ToBridgeSocketLevel(level int) int {
	return socketLevels.toBridgeValue(level, -1)
}

var socketOptions = newEnumTable(
	[2]int{bridge.SO_DEBUG, unix.SO_DEBUG},
	[2]int{bridge.SO_ACCEPTCONN, unix.SO_ACCEPTCONN},
	[2]int{bridge.SO_REUSEADDR, unix.SO_REUSEADDR},
	[2]int{bridge.SO_KEEPALIVE, unix.SO_KEEPALIVE},
	[2]int{bridge.SO_DONTROUTE, unix.SO_DONTROUTE},
	[2]int{bridge.SO_BROADCAST, unix.SO_BROADCAST},
	[2]int{bridge.SO_LINGER, unix.SO_LINGER},
	[2]int{bridge.SO_OOBINLINE, unix.SO_OOBINLINE},
	[2]int{bridge.SO_REUSEPORT, unix.SO_REUSEPORT},
	[2]int{bridge.SO_TIMESTAMP, unix.SO_TIMESTAMP},
	[2]int{bridge.SO_SNDBUF, unix.SO_SNDBUF},
	[2]int{bridge.SO_RCVBUF, unix.SO_RCVBUF},
	[2]int{bridge.SO_SNDLOWAT, unix.SO_SNDLOWAT},
	[2]int{bridge.SO_RCVLOWAT, unix.SO_RCVLOWAT},
	[2]int{bridge.SO_SNDTIMEO, unix.SO_SNDTIMEO},
	[2]int{bridge.SO_RCVTIMEO, unix.SO_RCVTIMEO},
	[2]int{bridge.SO_ERROR, unix.SO_ERROR},
	[2]int{bridge.SO_TYPE, unix.SO_TYPE},
	[2]int{bridge.SO_PASSCRED, unix.SO_PASSCRED},
	[2]int{bridge.SO_PEERCRED, unix.SO_PEERCRED},
	[2]int{bridge.SO_PROTOCOL, unix.SO_PROTOCOL},
	[2]int{bridge.SO_DOMAIN, unix.SO_DOMAIN},
	[2]int{bridge.SO_PRIORITY, unix.SO_PRIORITY},
	[2]int{bridge.SO_SNDBUFFORCE, unix.SO_SNDBUFFORCE},
	[2]int{bridge.SO_RCVBUFFORCE, unix.SO_RCVBUFFORCE},
	[2]int{bridge.SO_BINDTODEVICE, unix.SO_BINDTODEVICE},
)

var ipOptions = newEnumTable(
	[2]int{bridge.IP_TOS, unix.IP_TOS},
	[2]int{bridge.IP_TTL, unix.IP_TTL},
	[2]int{bridge.IP_HDRINCL, unix.IP_HDRINCL},
	[2]int{bridge.IP_OPTIONS, unix.IP_OPTIONS},
	[2]int{bridge.IP_RECVTOS, unix.IP_RECVTOS},
	[2]int{bridge.IP_RECVTTL, unix.IP_RECVTTL},
	[2]int{bridge.IP_PKTINFO, unix.IP_PKTINFO},
	[2]int{bridge.IP_MULTICAST_IF, unix.IP_MULTICAST_IF},
	[2]int{bridge.IP_MULTICAST_TTL, unix.IP_MULTICAST_TTL},
	[2]int{bridge.IP_MULTICAST_LOOP, unix.IP_MULTICAST_LOOP},
	[2]int{bridge.IP_ADD_MEMBERSHIP, unix.IP_ADD_MEMBERSHIP},
	[2]int{bridge.IP_DROP_MEMBERSHIP, unix.IP_DROP_MEMBERSHIP},
	[2]int{bridge.IP_RECVERR, unix.IP_RECVERR},
)

var ipv6Options = newEnumTable(
	[2]int{bridge.IPV6_V6ONLY, unix.IPV6_V6ONLY},
	[2]int{bridge.IPV6_RECVPKTINFO, unix.IPV6_RECVPKTINFO},
	[2]int{bridge.IPV6_PKTINFO, unix.IPV6_PKTINFO},
	[2]int{bridge.IPV6_RECVHOPLIMIT, unix.IPV6_RECVHOPLIMIT},
	[2]int{bridge.IPV6_HOPLIMIT, unix.IPV6_HOPLIMIT},
	[2]int{bridge.IPV6_UNICAST_HOPS, unix.IPV6_UNICAST_HOPS},
	[2]int{bridge.IPV6_MULTICAST_IF, unix.IPV6_MULTICAST_IF},
	[2]int{bridge.IPV6_MULTICAST_HOPS, unix.IPV6_MULTICAST_HOPS},
	[2]int{bridge.IPV6_MULTICAST_LOOP, unix.IPV6_MULTICAST_LOOP},
	[2]int{bridge.IPV6_JOIN_GROUP, unix.IPV6_JOIN_GROUP},
	[2]int{bridge.IPV6_LEAVE_GROUP, unix.IPV6_LEAVE_GROUP},
	[2]int{bridge.IPV6_TCLASS, unix.IPV6_TCLASS},
	[2]int{bridge.IPV6_RECVTCLASS, unix.IPV6_RECVTCLASS},
)

var tcpOptions = newEnumTable(
	[2]int{bridge.TCP_NODELAY, unix.TCP_NODELAY},
	[2]int{bridge.TCP_MAXSEG, unix.TCP_MAXSEG},
	[2]int{bridge.TCP_KEEPIDLE, unix.TCP_KEEPIDLE},
	[2]int{bridge.TCP_KEEPINTVL, unix.TCP_KEEPINTVL},
	[2]int{bridge.TCP_KEEPCNT, unix.TCP_KEEPCNT},
	[2]int{bridge.TCP_CORK, unix.TCP_CORK},
	[2]int{bridge.TCP_SYNCNT, unix.TCP_SYNCNT},
	[2]int{bridge.TCP_LINGER2, unix.TCP_LINGER2},
	[2]int{bridge.TCP_DEFER_ACCEPT, unix.TCP_DEFER_ACCEPT},
	[2]int{bridge.TCP_WINDOW_CLAMP, unix.TCP_WINDOW_CLAMP},
	[2]int{bridge.TCP_INFO, unix.TCP_INFO},
	[2]int{bridge.TCP_QUICKACK, unix.TCP_QUICKACK},
	[2]int{bridge.TCP_CONGESTION, unix.TCP_CONGESTION},
	[2]int{bridge.TCP_USER_TIMEOUT, unix.TCP_USER_TIMEOUT},
)

// optionTableForLevel returns the option table of a host level. Levels
// without a table of their own use the socket-level table.
func optionTableForLevel(hostLevel int) *enumTable {
	switch hostLevel {
	case unix.IPPROTO_IP:
		return ipOptions
	case unix.IPPROTO_IPV6:
		return ipv6Options
	case unix.IPPROTO_TCP:
		return tcpOptions
	default:
		return socketOptions
	}
}

// FromBridgeOptionName converts a bridge option name. level is the bridge
// level the option belongs to. A name missing from the level's table is
// looked up in the socket-level table. It returns -1 for an unrecognized
// option.
func FromBridgeOptionName(level, name int) int {
	if h := optionTableForLevel(FromBridgeSocketLevel(level)).fromBridge(name, -1); h != -1 {
		return h
	}
	return socketOptions.fromBridge(name, -1)
}

// ToBridgeOptionName converts a host option name. level is the host level
// the option belongs to. A name missing from the level's table is looked up
// in the socket-level table. It returns -1 for an unrecognized option.
func ToBridgeOptionName(level, name int) int {
	if b := optionTableForLevel(level).toBridgeValue(name, -1); b != -1 {
		return b
	}
	return socketOptions.toBridgeValue(name, -1)
}

var msgFlags = flagTable{
	{bridge.MSG_OOB, unix.MSG_OOB},
	{bridge.MSG_PEEK, unix.MSG_PEEK},
	{bridge.MSG_DONTROUTE, unix.MSG_DONTROUTE},
	{bridge.MSG_EOR, unix.MSG_EOR},
	{bridge.MSG_TRUNC, unix.MSG_TRUNC},
	{bridge.MSG_CTRUNC, unix.MSG_CTRUNC},
	{bridge.MSG_WAITALL, unix.MSG_WAITALL},
	{bridge.MSG_DONTWAIT, unix.MSG_DONTWAIT},
	{bridge.MSG_NOSIGNAL, unix.MSG_NOSIGNAL},
}

// FromBridgeMsgFlags converts bridge send/recv flags.
func FromBridgeMsgFlags(flags int) int {
	return msgFlags.fromBridge(flags)
}

// ToBridgeMsgFlags converts host send/recv flags.
func ToBridgeMsgFlags(flags int) int {
	return msgFlags.toBridgeValue(flags)
}
