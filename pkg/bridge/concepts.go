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
	"fmt"
	"sort"

	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi"
	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
)

// Kind is the shape of a concept's value space.
type Kind int

const (
	// Enum concepts map each value to exactly one value.
	Enum Kind = iota

	// Flags concepts map each bit independently and drop unknown bits.
	Flags
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Enum:
		return "enum"
	case Flags:
		return "flags"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Concept describes one enumeration or flag family and its pair of
// translators.
type Concept struct {
	// Name identifies the concept, e.g. "signal" or "sockopt/tcp".
	Name string

	Kind Kind

	// Domain lists the supported bridge values. For flag concepts it holds
	// each recognized bit and their union.
	Domain []int

	FromBridge func(int) int
	ToBridge   func(int) int

	// FromBridgeUnknown and ToBridgeUnknown are the results for values
	// outside the supported domain. For flag concepts both are 0.
	FromBridgeUnknown int
	ToBridgeUnknown   int

	// BridgeInvalid and HostInvalid are values outside the supported domain
	// on each side.
	BridgeInvalid int
	HostInvalid   int

	// Format names a bridge value.
	Format func(int) string
}

// Check verifies that every value in the domain survives a round trip and
// that values outside it translate to the sentinel. A sentinel may equal a
// valid value of the other domain, so a value is only missing if it does not
// survive the round trip.
func (c *Concept) Check() error {
	for _, v := range c.Domain {
		h := c.FromBridge(v)
		got := c.ToBridge(h)
		if got == v {
			continue
		}
		if c.Kind == Enum && h == c.FromBridgeUnknown {
			return fmt.Errorf("%s: %s has no host value", c.Name, c.Format(v))
		}
		return fmt.Errorf("%s: %s round trips to %s (host %#x)", c.Name, c.Format(v), c.Format(got), h)
	}
	if got := c.FromBridge(c.BridgeInvalid); got != c.FromBridgeUnknown {
		return fmt.Errorf("%s: invalid bridge value %#x translates to %#x, want %#x", c.Name, c.BridgeInvalid, got, c.FromBridgeUnknown)
	}
	if got := c.ToBridge(c.HostInvalid); got != c.ToBridgeUnknown {
		return fmt.Errorf("%s: invalid host value %#x translates to %#x, want %#x", c.Name, c.HostInvalid, got, c.ToBridgeUnknown)
	}
	return nil
}

func valuesOf(s abi.ValueSet) []int {
	vals := s.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}
	return out
}

func bitsOf(s abi.FlagSet) []int {
	out := make([]int, 0, len(s)+1)
	for _, f := range s {
		out = append(out, int(f.Flag))
	}
	return append(out, int(s.Mask()))
}

func valueFormatter(s abi.ValueSet) func(int) string {
	return func(v int) string {
		return s.Parse(uint64(int64(v)))
	}
}

func flagFormatter(s abi.FlagSet) func(int) string {
	return func(v int) string {
		return s.Parse(uint64(v))
	}
}

func enumConcept(name string, names abi.ValueSet, from, to func(int) int, fromUnknown, toUnknown, bridgeInvalid, hostInvalid int) Concept {
	return Concept{
		Name:              name,
		Kind:              Enum,
		Domain:            valuesOf(names),
		FromBridge:        from,
		ToBridge:          to,
		FromBridgeUnknown: fromUnknown,
		ToBridgeUnknown:   toUnknown,
		BridgeInvalid:     bridgeInvalid,
		HostInvalid:       hostInvalid,
		Format:            valueFormatter(names),
	}
}

// Flag concepts use a bit that no table recognizes as the invalid value on
// both sides.
const unknownBit = 1 << 40

func flagsConcept(name string, names abi.FlagSet, from, to func(int) int) Concept {
	return Concept{
		Name:          name,
		Kind:          Flags,
		Domain:        bitsOf(names),
		FromBridge:    from,
		ToBridge:      to,
		BridgeInvalid: unknownBit,
		HostInvalid:   unknownBit,
		Format:        flagFormatter(names),
	}
}

func optionConcept(name string, names abi.ValueSet, bridgeLevel, hostLevel int) Concept {
	return enumConcept(name, names,
		func(v int) int { return FromBridgeOptionName(bridgeLevel, v) },
		func(v int) int { return ToBridgeOptionName(hostLevel, v) },
		-1, -1, 0x7fff, 0x7fff)
}

func socketTypeConcept() Concept {
	var domain []int
	for _, base := range valuesOf(bridge.SocketTypes) {
		for _, flags := range []int{0, bridge.SOCK_NONBLOCK, bridge.SOCK_CLOEXEC, bridge.SOCK_NONBLOCK | bridge.SOCK_CLOEXEC} {
			domain = append(domain, base|flags)
		}
	}
	return Concept{
		Name:              "socket/type",
		Kind:              Enum,
		Domain:            domain,
		FromBridge:        FromBridgeSocketType,
		ToBridge:          ToBridgeSocketType,
		FromBridgeUnknown: -1,
		ToBridgeUnknown:   -1,
		BridgeInvalid:     0x7f,
		HostInvalid:       0xf,
		Format: func(v int) string {
			s := bridge.SocketTypes.Parse(uint64(v & bridge.SOCK_TYPE_MASK))
			if f := v &^ bridge.SOCK_TYPE_MASK; f != 0 {
				s += "|" + bridge.SocketTypeFlags.Parse(uint64(f))
			}
			return s
		},
	}
}

func fileFlagsConcept() Concept {
	domain := valuesOf(bridge.AccessModes)
	for _, f := range bridge.OpenFlags {
		domain = append(domain, bridge.O_RDWR|int(f.Flag))
	}
	domain = append(domain, bridge.O_WRONLY|int(bridge.OpenFlags.Mask()))
	return Concept{
		Name:          "fcntl/file-flags",
		Kind:          Flags,
		Domain:        domain,
		FromBridge:    FromBridgeFileFlags,
		ToBridge:      ToBridgeFileFlags,
		BridgeInvalid: unknownBit,
		HostInvalid:   unknownBit,
		Format: func(v int) string {
			s := bridge.AccessModes.Parse(uint64(v & bridge.O_ACCMODE))
			if f := v &^ bridge.O_ACCMODE; f != 0 {
				s += "|" + bridge.OpenFlags.Parse(uint64(f))
			}
			return s
		},
	}
}

func sysLogPriorityConcept() Concept {
	var domain []int
	facilities := append([]int{0}, valuesOf(bridge.SysLogFacilities)...)
	for _, facility := range facilities {
		for _, level := range valuesOf(bridge.SysLogLevels) {
			domain = append(domain, facility|level)
		}
	}
	return Concept{
		Name:              "syslog/priority",
		Kind:              Enum,
		Domain:            domain,
		FromBridge:        FromBridgeSysLogPriority,
		ToBridge:          ToBridgeSysLogPriority,
		FromBridgeUnknown: UnknownSysLogPriority,
		ToBridgeUnknown:   UnknownSysLogPriority,
		BridgeInvalid:     31<<3 | bridge.LOG_ERR,
		HostInvalid:       31<<3 | bridge.LOG_ERR,
		Format: func(v int) string {
			s := bridge.SysLogLevels.Parse(uint64(v & bridge.LOG_PRIMASK))
			if f := v & bridge.LOG_FACMASK; f != 0 {
				s = bridge.SysLogFacilities.Parse(uint64(f)) + "|" + s
			}
			return s
		},
	}
}

var concepts = []Concept{
	enumConcept("fcntl/cmd", bridge.FcntlCommands, FromBridgeFcntlCmd, ToBridgeFcntlCmd, -1, -1, 0x7fff, 0x7fff),
	fileFlagsConcept(),
	flagsConcept("fcntl/fd-flags", bridge.FDFlags, FromBridgeFDFlags, ToBridgeFDFlags),
	flagsConcept("flock/operation", bridge.FLockOperations, FromBridgeFLockOperation, ToBridgeFLockOperation),
	enumConcept("sysconf", bridge.SysconfConstants,
		func(v int) int { return FromBridgeSysconfConstant(bridge.SysconfConstant(v)) },
		func(v int) int { return int(ToBridgeSysconfConstant(v)) },
		-1, bridge.SC_UNKNOWN, 0x7fff, 0x7fff),
	enumConcept("timer", bridge.TimerTypes,
		func(v int) int { return FromBridgeTimerType(bridge.TimerType(v)) },
		func(v int) int { return int(ToBridgeTimerType(v)) },
		-1, bridge.ITIMER_UNKNOWN, 0x7fff, 0x7fff),
	flagsConcept("wait/options", bridge.WaitOptions, FromBridgeWaitOptions, ToBridgeWaitOptions),
	enumConcept("rusage/target", bridge.RUsageTargets,
		func(v int) int { return FromBridgeRUsageTarget(bridge.RUsageTarget(v)) },
		func(v int) int { return int(ToBridgeRUsageTarget(v)) },
		UnknownHostRUsageTarget, bridge.RUSAGE_UNKNOWN, 0x7fff, 0x7fff),
	enumConcept("signal", bridge.Signals, FromBridgeSignal, ToBridgeSignal, -1, -1, 0x7fff, 0x7fff),
	enumConcept("signal/code", bridge.SignalCodes, FromBridgeSignalCode, ToBridgeSignalCode, UnknownHostSignalCode, -1, 0x7fff, 0x7fff),
	enumConcept("signal/mask-action", bridge.SignalMaskActions, FromBridgeSigMaskAction, ToBridgeSigMaskAction, -1, -1, 0x7fff, 0x7fff),
	flagsConcept("signal/flags", bridge.SignalActionFlags, FromBridgeSignalFlags, ToBridgeSignalFlags),
	flagsConcept("netdb/ai-flags", bridge.AddressInfoFlags, FromBridgeAddressInfoFlags, ToBridgeAddressInfoFlags),
	enumConcept("netdb/ai-errors", bridge.AddressInfoErrors, FromBridgeAddressInfoError, ToBridgeAddressInfoError,
		UnknownHostAddressInfoError, bridge.EAI_UNKNOWN, -0x7fff, -0x7fff),
	socketTypeConcept(),
	enumConcept("socket/family", bridge.AddressFamilies.Without(bridge.AF_UNSUPPORTED),
		func(v int) int { return FromBridgeAfFamily(bridge.AfFamily(v)) },
		func(v int) int { return int(ToBridgeAfFamily(v)) },
		-1, bridge.AF_UNSUPPORTED, 0x7fff, 0x7fff),
	enumConcept("socket/level", bridge.SocketLevels, FromBridgeSocketLevel, ToBridgeSocketLevel, -1, -1, 0x7fff, 0x7fff),
	optionConcept("sockopt/socket", bridge.SocketOptions, bridge.SOL_SOCKET, unix.SOL_SOCKET),
	optionConcept("sockopt/ip", bridge.IPOptions, bridge.IPPROTO_IP, unix.IPPROTO_IP),
	optionConcept("sockopt/ipv6", bridge.IPv6Options, bridge.IPPROTO_IPV6, unix.IPPROTO_IPV6),
	optionConcept("sockopt/tcp", bridge.TCPOptions, bridge.IPPROTO_TCP, unix.IPPROTO_TCP),
	flagsConcept("syslog/option", bridge.SysLogOptions, FromBridgeSysLogOption, ToBridgeSysLogOption),
	enumConcept("syslog/facility", bridge.SysLogFacilities, FromBridgeSysLogFacility, ToBridgeSysLogFacility, 0, 0, 31<<3, 31<<3),
	sysLogPriorityConcept(),
	flagsConcept("poll/events", bridge.PollEvents, FromBridgePollEvents, ToBridgePollEvents),
	flagsConcept("msg/flags", bridge.MessageFlags, FromBridgeMsgFlags, ToBridgeMsgFlags),
}

// Concepts returns every registered concept, sorted by name.
func Concepts() []Concept {
	out := append([]Concept(nil), concepts...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupConcept returns the concept with the given name.
func LookupConcept(name string) (Concept, bool) {
	for _, c := range concepts {
		if c.Name == name {
			return c, true
		}
	}
	return Concept{}, false
}
