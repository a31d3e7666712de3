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
	"github.com/hostbridge/hostbridge/pkg/abi"
	"github.com/hostbridge/hostbridge/pkg/errors/linuxerr"
)

// Address families.
const (
	AF_UNSUPPORTED = -1
	AF_UNSPEC      = 0
	AF_UNIX        = 1
	AF_INET        = 2
	AF_INET6       = 3
	AF_PACKET      = 4
	AF_NETLINK     = 5

	AF_LOCAL = AF_UNIX
)

// AfFamily is an address family.
type AfFamily int32

// Socket types. The creation flags may be or'd into the type argument of
// socket(2).
const (
	SOCK_STREAM    = 1
	SOCK_DGRAM     = 2
	SOCK_SEQPACKET = 3
	SOCK_RAW       = 4

	SOCK_NONBLOCK = 0x100
	SOCK_CLOEXEC  = 0x200

	SOCK_TYPE_MASK = 0xff
)

// Option levels for getsockopt(2)/setsockopt(2).
const (
	SOL_SOCKET   = 0xffff
	IPPROTO_IP   = 0
	IPPROTO_TCP  = 6
	IPPROTO_UDP  = 17
	IPPROTO_IPV6 = 41
)

// Socket-level options.
const (
	SO_DEBUG        = 0x0001
	SO_ACCEPTCONN   = 0x0002
	SO_REUSEADDR    = 0x0004
	SO_KEEPALIVE    = 0x0008
	SO_DONTROUTE    = 0x0010
	SO_BROADCAST    = 0x0020
	SO_LINGER       = 0x0080
	SO_OOBINLINE    = 0x0100
	SO_REUSEPORT    = 0x0200
	SO_TIMESTAMP    = 0x0400
	SO_SNDBUF       = 0x1001
	SO_RCVBUF       = 0x1002
	SO_SNDLOWAT     = 0x1003
	SO_RCVLOWAT     = 0x1004
	SO_SNDTIMEO     = 0x1005
	SO_RCVTIMEO     = 0x1006
	SO_ERROR        = 0x1007
	SO_TYPE         = 0x1008
	SO_PASSCRED     = 0x1009
	SO_PEERCRED     = 0x100a
	SO_PROTOCOL     = 0x100b
	SO_DOMAIN       = 0x100c
	SO_PRIORITY     = 0x100d
	SO_SNDBUFFORCE  = 0x100e
	SO_RCVBUFFORCE  = 0x100f
	SO_BINDTODEVICE = 0x1010
)

// IPPROTO_IP options.
const (
	IP_TOS             = 1
	IP_TTL             = 2
	IP_HDRINCL         = 3
	IP_OPTIONS         = 4
	IP_RECVTOS         = 5
	IP_RECVTTL         = 6
	IP_PKTINFO         = 7
	IP_MULTICAST_IF    = 8
	IP_MULTICAST_TTL   = 9
	IP_MULTICAST_LOOP  = 10
	IP_ADD_MEMBERSHIP  = 11
	IP_DROP_MEMBERSHIP = 12
	IP_RECVERR         = 13
)

// IPPROTO_IPV6 options.
const (
	IPV6_V6ONLY         = 1
	IPV6_RECVPKTINFO    = 2
	IPV6_PKTINFO        = 3
	IPV6_RECVHOPLIMIT   = 4
	IPV6_HOPLIMIT       = 5
	IPV6_UNICAST_HOPS   = 6
	IPV6_MULTICAST_IF   = 7
	IPV6_MULTICAST_HOPS = 8
	IPV6_MULTICAST_LOOP = 9
	IPV6_JOIN_GROUP     = 10
	IPV6_LEAVE_GROUP    = 11
	IPV6_TCLASS         = 12
	IPV6_RECVTCLASS     = 13
)

// IPPROTO_TCP options.
const (
	TCP_NODELAY      = 1
	TCP_MAXSEG       = 2
	TCP_KEEPIDLE     = 3
	TCP_KEEPINTVL    = 4
	TCP_KEEPCNT      = 5
	TCP_CORK         = 6
	TCP_SYNCNT       = 7
	TCP_LINGER2      = 8
	TCP_DEFER_ACCEPT = 9
	TCP_WINDOW_CLAMP = 10
	TCP_INFO         = 11
	TCP_QUICKACK     = 12
	TCP_CONGESTION   = 13
	TCP_USER_TIMEOUT = 14
)

// Flags for send(2)/recv(2) and MsgHdr.Flags.
const (
	MSG_OOB       = 0x001
	MSG_PEEK      = 0x002
	MSG_DONTROUTE = 0x004
	MSG_EOR       = 0x008
	MSG_TRUNC     = 0x010
	MSG_CTRUNC    = 0x020
	MSG_WAITALL   = 0x040
	MSG_DONTWAIT  = 0x080
	MSG_NOSIGNAL  = 0x400
)

// Socket address layout.
const (
	// SizeOfSockaddr is the size of Sockaddr in bytes.
	SizeOfSockaddr = 128

	// SockaddrDataLen is the capacity of Sockaddr.Data.
	SockaddrDataLen = 124

	// SockaddrInet4Len and SockaddrInet6Len are the Length of IPv4 and IPv6
	// addresses.
	SockaddrInet4Len = 6
	SockaddrInet6Len = 26

	// UnixPathMax is the capacity of a unix socket path.
	UnixPathMax = 108
)

// Sockaddr is a family-tagged socket address. Length is the number of
// meaningful bytes in Data.
//
// For AF_INET, Data holds the port (network order) followed by the four
// address bytes. For AF_INET6, Data holds the port (network order), the flow
// information (network order), the sixteen address bytes and the scope ID
// (wire order). For AF_UNIX, Data holds the path: a pathname without its
// terminating NUL, a leading NUL for an abstract address, or nothing for an
// unnamed socket.
type Sockaddr struct {
	Family uint16
	Length uint16
	Data   [SockaddrDataLen]byte
}

// SockaddrInet4 returns an AF_INET Sockaddr.
func SockaddrInet4(port uint16, addr [4]byte) Sockaddr {
	s := Sockaddr{Family: AF_INET, Length: SockaddrInet4Len}
	s.Data[0] = byte(port >> 8)
	s.Data[1] = byte(port)
	copy(s.Data[2:6], addr[:])
	return s
}

// SockaddrInet6 returns an AF_INET6 Sockaddr.
func SockaddrInet6(port uint16, flowinfo uint32, addr [16]byte, scopeID uint32) Sockaddr {
	s := Sockaddr{Family: AF_INET6, Length: SockaddrInet6Len}
	s.Data[0] = byte(port >> 8)
	s.Data[1] = byte(port)
	s.Data[2] = byte(flowinfo >> 24)
	s.Data[3] = byte(flowinfo >> 16)
	s.Data[4] = byte(flowinfo >> 8)
	s.Data[5] = byte(flowinfo)
	copy(s.Data[6:22], addr[:])
	ByteOrder.PutUint32(s.Data[22:26], scopeID)
	return s
}

// SockaddrUnix returns an AF_UNIX Sockaddr for path. An empty path is an
// unnamed socket and a path with a leading NUL is abstract.
func SockaddrUnix(path []byte) (Sockaddr, error) {
	if len(path) > UnixPathMax {
		return Sockaddr{}, linuxerr.ENAMETOOLONG
	}
	s := Sockaddr{Family: AF_UNIX, Length: uint16(len(path))}
	copy(s.Data[:], path)
	return s, nil
}

// Inet4 decodes an AF_INET address.
func (s *Sockaddr) Inet4() (port uint16, addr [4]byte, ok bool) {
	if s.Family != AF_INET || s.Length < SockaddrInet4Len {
		return 0, addr, false
	}
	port = uint16(s.Data[0])<<8 | uint16(s.Data[1])
	copy(addr[:], s.Data[2:6])
	return port, addr, true
}

// Inet6 decodes an AF_INET6 address.
func (s *Sockaddr) Inet6() (port uint16, flowinfo uint32, addr [16]byte, scopeID uint32, ok bool) {
	if s.Family != AF_INET6 || s.Length < SockaddrInet6Len {
		return 0, 0, addr, 0, false
	}
	port = uint16(s.Data[0])<<8 | uint16(s.Data[1])
	flowinfo = uint32(s.Data[2])<<24 | uint32(s.Data[3])<<16 | uint32(s.Data[4])<<8 | uint32(s.Data[5])
	copy(addr[:], s.Data[6:22])
	scopeID = ByteOrder.Uint32(s.Data[22:26])
	return port, flowinfo, addr, scopeID, true
}

// Unix returns the path of an AF_UNIX address.
func (s *Sockaddr) Unix() ([]byte, bool) {
	if s.Family != AF_UNIX || int(s.Length) > UnixPathMax {
		return nil, false
	}
	return s.Data[:s.Length], true
}

// Iovec is a single scatter/gather segment. The bridge representation
// refers to memory by slice; host code converts it to a raw pointer and
// length.
type Iovec struct {
	Base []byte
}

// MsgHdr is the argument of sendmsg(2)/recvmsg(2). Name holds a host-format
// socket address and is carried through conversion unchanged. Control holds
// ancillary data.
type MsgHdr struct {
	Name    []byte
	Iov     []Iovec
	Control []byte
	Flags   int32
}

// TotalLen returns the sum of the lengths of the segments in iov.
func TotalLen(iov []Iovec) int {
	n := 0
	for _, v := range iov {
		n += len(v.Base)
	}
	return n
}

// AddressFamilies names the address families.
var AddressFamilies = abi.SignedValueSet(map[int64]string{
	AF_UNSUPPORTED: "AF_UNSUPPORTED",
	AF_UNSPEC:      "AF_UNSPEC",
	AF_UNIX:        "AF_UNIX",
	AF_INET:        "AF_INET",
	AF_INET6:       "AF_INET6",
	AF_PACKET:      "AF_PACKET",
	AF_NETLINK:     "AF_NETLINK",
})

// String implements fmt.Stringer.
func (f AfFamily) String() string {
	return AddressFamilies.Parse(uint64(int64(f)))
}

// SocketTypes names the socket types.
var SocketTypes = abi.ValueSet{
	SOCK_STREAM:    "SOCK_STREAM",
	SOCK_DGRAM:     "SOCK_DGRAM",
	SOCK_SEQPACKET: "SOCK_SEQPACKET",
	SOCK_RAW:       "SOCK_RAW",
}

// SocketTypeFlags names the socket creation flags.
var SocketTypeFlags = abi.FlagSet{
	{Flag: SOCK_NONBLOCK, Name: "SOCK_NONBLOCK"},
	{Flag: SOCK_CLOEXEC, Name: "SOCK_CLOEXEC"},
}

// SocketLevels names the option levels.
var SocketLevels = abi.ValueSet{
	SOL_SOCKET:   "SOL_SOCKET",
	IPPROTO_IP:   "IPPROTO_IP",
	IPPROTO_TCP:  "IPPROTO_TCP",
	IPPROTO_UDP:  "IPPROTO_UDP",
	IPPROTO_IPV6: "IPPROTO_IPV6",
}

// SocketOptions names the socket-level options.
var SocketOptions = abi.ValueSet{
	SO_DEBUG:        "SO_DEBUG",
	SO_ACCEPTCONN:   "SO_ACCEPTCONN",
	SO_REUSEADDR:    "SO_REUSEADDR",
	SO_KEEPALIVE:    "SO_KEEPALIVE",
	SO_DONTROUTE:    "SO_DONTROUTE",
	SO_BROADCAST:    "SO_BROADCAST",
	SO_LINGER:       "SO_LINGER",
	SO_OOBINLINE:    "SO_OOBINLINE",
	SO_REUSEPORT:    "SO_REUSEPORT",
	SO_TIMESTAMP:    "SO_TIMESTAMP",
	SO_SNDBUF:       "SO_SNDBUF",
	SO_RCVBUF:       "SO_RCVBUF",
	SO_SNDLOWAT:     "SO_SNDLOWAT",
	SO_RCVLOWAT:     "SO_RCVLOWAT",
	SO_SNDTIMEO:     "SO_SNDTIMEO",
	SO_RCVTIMEO:     "SO_RCVTIMEO",
	SO_ERROR:        "SO_ERROR",
	SO_TYPE:         "SO_TYPE",
	SO_PASSCRED:     "SO_PASSCRED",
	SO_PEERCRED:     "SO_PEERCRED",
	SO_PROTOCOL:     "SO_PROTOCOL",
	SO_DOMAIN:       "SO_DOMAIN",
	SO_PRIORITY:     "SO_PRIORITY",
	SO_SNDBUFFORCE:  "SO_SNDBUFFORCE",
	SO_RCVBUFFORCE:  "SO_RCVBUFFORCE",
	SO_BINDTODEVICE: "SO_BINDTODEVICE",
}

// IPOptions names the IPPROTO_IP options.
var IPOptions = abi.ValueSet{
	IP_TOS:             "IP_TOS",
	IP_TTL:             "IP_TTL",
	IP_HDRINCL:         "IP_HDRINCL",
	IP_OPTIONS:         "IP_OPTIONS",
	IP_RECVTOS:         "IP_RECVTOS",
	IP_RECVTTL:         "IP_RECVTTL",
	IP_PKTINFO:         "IP_PKTINFO",
	IP_MULTICAST_IF:    "IP_MULTICAST_IF",
	IP_MULTICAST_TTL:   "IP_MULTICAST_TTL",
	IP_MULTICAST_LOOP:  "IP_MULTICAST_LOOP",
	IP_ADD_MEMBERSHIP:  "IP_ADD_MEMBERSHIP",
	IP_DROP_MEMBERSHIP: "IP_DROP_MEMBERSHIP",
	IP_RECVERR:         "IP_RECVERR",
}

// IPv6Options names the IPPROTO_IPV6 options.
var IPv6Options = abi.ValueSet{
	IPV6_V6ONLY:         "IPV6_V6ONLY",
	IPV6_RECVPKTINFO:    "IPV6_RECVPKTINFO",
	IPV6_PKTINFO:        "IPV6_PKTINFO",
	IPV6_RECVHOPLIMIT:   "IPV6_RECVHOPLIMIT",
	IPV6_HOPLIMIT:       "IPV6_HOPLIMIT",
	IPV6_UNICAST_HOPS:   "IPV6_UNICAST_HOPS",
	IPV6_MULTICAST_IF:   "IPV6_MULTICAST_IF",
	IPV6_MULTICAST_HOPS: "IPV6_MULTICAST_HOPS",
	IPV6_MULTICAST_LOOP: "IPV6_MULTICAST_LOOP",
	IPV6_JOIN_GROUP:     "IPV6_JOIN_GROUP",
	IPV6_LEAVE_GROUP:    "IPV6_LEAVE_GROUP",
	IPV6_TCLASS:         "IPV6_TCLASS",
	IPV6_RECVTCLASS:     "IPV6_RECVTCLASS",
}

// TCPOptions names the IPPROTO_TCP options.
var TCPOptions = abi.ValueSet{
	TCP_NODELAY:      "TCP_NODELAY",
	TCP_MAXSEG:       "TCP_MAXSEG",
	TCP_KEEPIDLE:     "TCP_KEEPIDLE",
	TCP_KEEPINTVL:    "TCP_KEEPINTVL",
	TCP_KEEPCNT:      "TCP_KEEPCNT",
	TCP_CORK:         "TCP_CORK",
	TCP_SYNCNT:       "TCP_SYNCNT",
	TCP_LINGER2:      "TCP_LINGER2",
	TCP_DEFER_ACCEPT: "TCP_DEFER_ACCEPT",
	TCP_WINDOW_CLAMP: "TCP_WINDOW_CLAMP",
	TCP_INFO:         "TCP_INFO",
	TCP_QUICKACK:     "TCP_QUICKACK",
	TCP_CONGESTION:   "TCP_CONGESTION",
	TCP_USER_TIMEOUT: "TCP_USER_TIMEOUT",
}

// MessageFlags names the send/recv flags.
var MessageFlags = abi.FlagSet{
	{Flag: MSG_OOB, Name: "MSG_OOB"},
	{Flag: MSG_PEEK, Name: "MSG_PEEK"},
	{Flag: MSG_DONTROUTE, Name: "MSG_DONTROUTE"},
	{Flag: MSG_EOR, Name: "MSG_EOR"},
	{Flag: MSG_TRUNC, Name: "MSG_TRUNC"},
	{Flag: MSG_CTRUNC, Name: "MSG_CTRUNC"},
	{Flag: MSG_WAITALL, Name: "MSG_WAITALL"},
	{Flag: MSG_DONTWAIT, Name: "MSG_DONTWAIT"},
	{Flag: MSG_NOSIGNAL, Name: "MSG_NOSIGNAL"},
}
