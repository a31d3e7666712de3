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

var timerTypes = newEnumTable(
	[2]int{bridge.ITIMER_REAL, linux.ITIMER_REAL},
	[2]int{bridge.ITIMER_VIRTUAL, linux.ITIMER_VIRTUAL},
	[2]int{bridge.ITIMER_PROF, linux.ITIMER_PROF},
)

// FromBridgeTimerType converts a bridge interval timer selector. It returns
// -1 for an unrecognized selector.
func FromBridgeTimerType(which bridge.TimerType) int {
	return timerTypes.fromBridge(int(which), -1)
}

// ToBridgeTimerType converts a host interval timer selector. It returns
// ITIMER_UNKNOWN for an unrecognized selector.
func ToBridgeTimerType(which int) bridge.TimerType {
	return bridge.TimerType(timerTypes.toBridgeValue(which, bridge.ITIMER_UNKNOWN))
}

// FromBridgeTimespec converts src into dst.
func FromBridgeTimespec(src *bridge.Timespec, dst *unix.Timespec) *unix.Timespec {
	if src == nil || dst == nil {
		return nil
	}
	dst.Sec = src.Sec
	dst.Nsec = src.Nsec
	return dst
}

// ToBridgeTimespec converts src into dst.
func ToBridgeTimespec(src *unix.Timespec, dst *bridge.Timespec) *bridge.Timespec {
	if src == nil || dst == nil {
		return nil
	}
	dst.Sec = src.Sec
	dst.Nsec = src.Nsec
	return dst
}

// FromBridgeTimeval converts src into dst.
func FromBridgeTimeval(src *bridge.Timeval, dst *unix.Timeval) *unix.Timeval {
	if src == nil || dst == nil {
		return nil
	}
	dst.Sec = src.Sec
	dst.Usec = src.Usec
	return dst
}

// ToBridgeTimeval converts src into dst.
func ToBridgeTimeval(src *unix.Timeval, dst *bridge.Timeval) *bridge.Timeval {
	if src == nil || dst == nil {
		return nil
	}
	dst.Sec = src.Sec
	dst.Usec = src.Usec
	return dst
}

// FromBridgeITimerVal converts src into dst.
func FromBridgeITimerVal(src *bridge.ITimerVal, dst *unix.Itimerval) *unix.Itimerval {
	if src == nil || dst == nil {
		return nil
	}
	FromBridgeTimeval(&src.Interval, &dst.Interval)
	FromBridgeTimeval(&src.Value, &dst.Value)
	return dst
}

// ToBridgeITimerVal converts src into dst.
func ToBridgeITimerVal(src *unix.Itimerval, dst *bridge.ITimerVal) *bridge.ITimerVal {
	if src == nil || dst == nil {
		return nil
	}
	ToBridgeTimeval(&src.Interval, &dst.Interval)
	ToBridgeTimeval(&src.Value, &dst.Value)
	return dst
}

// FromBridgeTms converts src into dst.
func FromBridgeTms(src *bridge.Tms, dst *unix.Tms) *unix.Tms {
	if src == nil || dst == nil {
		return nil
	}
	dst.Utime = src.UTime
	dst.Stime = src.STime
	dst.Cutime = src.CUTime
	dst.Cstime = src.CSTime
	return dst
}

// ToBridgeTms converts src into dst.
func ToBridgeTms(src *unix.Tms, dst *bridge.Tms) *bridge.Tms {
	if src == nil || dst == nil {
		return nil
	}
	dst.UTime = src.Utime
	dst.STime = src.Stime
	dst.CUTime = src.Cutime
	dst.CSTime = src.Cstime
	return dst
}

// FromBridgeUtimbuf converts src into dst.
func FromBridgeUtimbuf(src *bridge.Utimbuf, dst *unix.Utimbuf) *unix.Utimbuf {
	if src == nil || dst == nil {
		return nil
	}
	dst.Actime = src.Actime
	dst.Modtime = src.Modtime
	return dst
}

// ToBridgeUtimbuf converts src into dst.
func ToBridgeUtimbuf(src *unix.Utimbuf, dst *bridge.Utimbuf) *bridge.Utimbuf {
	if src == nil || dst == nil {
		return nil
	}
	dst.Actime = src.Actime
	dst.Modtime = src.Modtime
	return dst
}
