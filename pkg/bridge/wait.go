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

var waitOptions = flagTable{
	{bridge.WNOHANG, unix.WNOHANG},
	{bridge.WUNTRACED, unix.WUNTRACED},
	{bridge.WCONTINUED, unix.WCONTINUED},
	{bridge.WEXITED, unix.WEXITED},
	{bridge.WNOWAIT, unix.WNOWAIT},
}

// FromBridgeWaitOptions converts bridge wait options.
func FromBridgeWaitOptions(opts int) int {
	return waitOptions.fromBridge(opts)
}

// ToBridgeWaitOptions converts host wait options.
func ToBridgeWaitOptions(opts int) int {
	return waitOptions.toBridgeValue(opts)
}

// Host wait status encoding.
const (
	wstatusCore      = 0x80
	wstatusStopped   = 0x7f
	wstatusContinued = 0xffff
)

// FromBridgeWStatus encodes w as a host wait status. A signal with no host
// equivalent is encoded as signal 0.
func FromBridgeWStatus(w bridge.WStatus) unix.WaitStatus {
	switch {
	case w.Info&bridge.WStatusContinued != 0:
		return wstatusContinued
	case w.Info&bridge.WStatusStopped != 0:
		return unix.WaitStatus(hostSignalByte(w.Code)<<8 | wstatusStopped)
	case w.Info&bridge.WStatusSignaled != 0:
		ws := unix.WaitStatus(hostSignalByte(w.Code) & 0x7f)
		if w.Info&bridge.WStatusCoreDump != 0 {
			ws |= wstatusCore
		}
		return ws
	default:
		return unix.WaitStatus(uint32(w.Code) << 8)
	}
}

func hostSignalByte(sig uint8) uint32 {
	h := FromBridgeSignal(int(sig))
	if h < 0 {
		return 0
	}
	return uint32(h)
}

// ToBridgeWStatus decodes the host wait status ws.
func ToBridgeWStatus(ws unix.WaitStatus) bridge.WStatus {
	switch {
	case ws.Continued():
		return bridge.WStatus{Info: bridge.WStatusContinued}
	case ws.Stopped():
		return bridge.WStatus{Code: uint8(ToBridgeSignal(int(ws.StopSignal()))), Info: bridge.WStatusStopped}
	case ws.Signaled():
		w := bridge.WStatus{Code: uint8(ToBridgeSignal(int(ws.Signal()))), Info: bridge.WStatusSignaled}
		if ws.CoreDump() {
			w.Info |= bridge.WStatusCoreDump
		}
		return w
	default:
		return bridge.WStatus{Code: uint8(ws.ExitStatus()), Info: bridge.WStatusExited}
	}
}
