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
	"github.com/hostbridge/hostbridge/pkg/abi/linux"
)

// UnknownHostRUsageTarget is returned by FromBridgeRUsageTarget for an
// unrecognized target. It shares its value with host RUSAGE_CHILDREN.
const UnknownHostRUsageTarget = -1

var rusageTargets = newEnumTable(
	[2]int{bridge.RUSAGE_SELF, unix.RUSAGE_SELF},
	[2]int{bridge.RUSAGE_CHILDREN, unix.RUSAGE_CHILDREN},
	[2]int{bridge.RUSAGE_THREAD, unix.RUSAGE_THREAD},
)

// FromBridgeRUsageTarget converts a bridge getrusage(2) target. It returns
// UnknownHostRUsageTarget for an unrecognized target.
func FromBridgeRUsageTarget(who bridge.RUsageTarget) int {
	return rusageTargets.fromBridge(int(who), UnknownHostRUsageTarget)
}

// ToBridgeRUsageTarget converts a host getrusage(2) target. It returns
// RUSAGE_UNKNOWN for an unrecognized target.
func ToBridgeRUsageTarget(who int) bridge.RUsageTarget {
	return bridge.RUsageTarget(rusageTargets.toBridgeValue(who, bridge.RUSAGE_UNKNOWN))
}

var sysconfConstants = newEnumTable(
	[2]int{bridge.SC_NPROCESSORS_CONF, linux.SC_NPROCESSORS_CONF},
	[2]int{bridge.SC_NPROCESSORS_ONLN, linux.SC_NPROCESSORS_ONLN},
	[2]int{bridge.SC_PAGESIZE, linux.SC_PAGESIZE},
	[2]int{bridge.SC_CLK_TCK, linux.SC_CLK_TCK},
	[2]int{bridge.SC_OPEN_MAX, linux.SC_OPEN_MAX},
	[2]int{bridge.SC_PHYS_PAGES, linux.SC_PHYS_PAGES},
	[2]int{bridge.SC_ARG_MAX, linux.SC_ARG_MAX},
	[2]int{bridge.SC_CHILD_MAX, linux.SC_CHILD_MAX},
	[2]int{bridge.SC_NGROUPS_MAX, linux.SC_NGROUPS_MAX},
)

// FromBridgeSysconfConstant converts a bridge sysconf(3) selector. It
// returns -1 for an unrecognized selector.
func FromBridgeSysconfConstant(name bridge.SysconfConstant) int {
	return sysconfConstants.fromBridge(int(name), -1)
}

// ToBridgeSysconfConstant converts a host sysconf(3) selector. It returns
// SC_UNKNOWN for an unrecognized selector.
func ToBridgeSysconfConstant(name int) bridge.SysconfConstant {
	return bridge.SysconfConstant(sysconfConstants.toBridgeValue(name, bridge.SC_UNKNOWN))
}

// FromBridgeRUsage converts src into dst.
func FromBridgeRUsage(src *bridge.RUsage, dst *unix.Rusage) *unix.Rusage {
	if src == nil || dst == nil {
		return nil
	}
	FromBridgeTimeval(&src.UTime, &dst.Utime)
	FromBridgeTimeval(&src.STime, &dst.Stime)
	dst.Maxrss = src.MaxRSS
	dst.Ixrss = src.IXRSS
	dst.Idrss = src.IDRSS
	dst.Isrss = src.ISRSS
	dst.Minflt = src.MinFlt
	dst.Majflt = src.MajFlt
	dst.Nswap = src.NSwap
	dst.Inblock = src.InBlock
	dst.Oublock = src.OuBlock
	dst.Msgsnd = src.MsgSnd
	dst.Msgrcv = src.MsgRcv
	dst.Nsignals = src.NSignals
	dst.Nvcsw = src.NVCSw
	dst.Nivcsw = src.NIvCSw
	return dst
}

// ToBridgeRUsage converts src into dst.
func ToBridgeRUsage(src *unix.Rusage, dst *bridge.RUsage) *bridge.RUsage {
	if src == nil || dst == nil {
		return nil
	}
	ToBridgeTimeval(&src.Utime, &dst.UTime)
	ToBridgeTimeval(&src.Stime, &dst.STime)
	dst.MaxRSS = src.Maxrss
	dst.IXRSS = src.Ixrss
	dst.IDRSS = src.Idrss
	dst.ISRSS = src.Isrss
	dst.MinFlt = src.Minflt
	dst.MajFlt = src.Majflt
	dst.NSwap = src.Nswap
	dst.InBlock = src.Inblock
	dst.OuBlock = src.Oublock
	dst.MsgSnd = src.Msgsnd
	dst.MsgRcv = src.Msgrcv
	dst.NSignals = src.Nsignals
	dst.NVCSw = src.Nvcsw
	dst.NIvCSw = src.Nivcsw
	return dst
}
