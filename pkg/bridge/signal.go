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

// UnknownHostSignalCode is returned by FromBridgeSignalCode for an
// unrecognized code. It shares its value with host SI_QUEUE.
const UnknownHostSignalCode = -1

var signals = newEnumTable(
	[2]int{bridge.SIGHUP, int(unix.SIGHUP)},
	[2]int{bridge.SIGINT, int(unix.SIGINT)},
	[2]int{bridge.SIGQUIT, int(unix.SIGQUIT)},
	[2]int{bridge.SIGILL, int(unix.SIGILL)},
	[2]int{bridge.SIGTRAP, int(unix.SIGTRAP)},
	[2]int{bridge.SIGABRT, int(unix.SIGABRT)},
	[2]int{bridge.SIGFPE, int(unix.SIGFPE)},
	[2]int{bridge.SIGKILL, int(unix.SIGKILL)},
	[2]int{bridge.SIGBUS, int(unix.SIGBUS)},
	[2]int{bridge.SIGSEGV, int(unix.SIGSEGV)},
	[2]int{bridge.SIGSYS, int(unix.SIGSYS)},
	[2]int{bridge.SIGPIPE, int(unix.SIGPIPE)},
	[2]int{bridge.SIGALRM, int(unix.SIGALRM)},
	[2]int{bridge.SIGTERM, int(unix.SIGTERM)},
	[2]int{bridge.SIGURG, int(unix.SIGURG)},
	[2]int{bridge.SIGSTOP, int(unix.SIGSTOP)},
	[2]int{bridge.SIGTSTP, int(unix.SIGTSTP)},
	[2]int{bridge.SIGCONT, int(unix.SIGCONT)},
	[2]int{bridge.SIGCHLD, int(unix.SIGCHLD)},
	[2]int{bridge.SIGTTIN, int(unix.SIGTTIN)},
	[2]int{bridge.SIGTTOU, int(unix.SIGTTOU)},
	[2]int{bridge.SIGIO, int(unix.SIGIO)},
	[2]int{bridge.SIGXCPU, int(unix.SIGXCPU)},
	[2]int{bridge.SIGXFSZ, int(unix.SIGXFSZ)},
	[2]int{bridge.SIGVTALRM, int(unix.SIGVTALRM)},
	[2]int{bridge.SIGPROF, int(unix.SIGPROF)},
	[2]int{bridge.SIGWINCH, int(unix.SIGWINCH)},
	[2]int{bridge.SIGPWR, int(unix.SIGPWR)},
	[2]int{bridge.SIGUSR1, int(unix.SIGUSR1)},
	[2]int{bridge.SIGUSR2, int(unix.SIGUSR2)},
)

// FromBridgeSignal converts a bridge signal number, including the realtime
// range. It returns -1 for an unrecognized signal.
func FromBridgeSignal(sig int) int {
	if sig >= bridge.SIGRTMIN && sig <= bridge.SIGRTMAX {
		h := sig - bridge.SIGRTMIN + linux.SIGRTMIN
		if h > linux.SIGRTMAX {
			return -1
		}
		return h
	}
	return signals.fromBridge(sig, -1)
}

// ToBridgeSignal converts a host signal number, including the realtime
// range. It returns -1 for an unrecognized signal.
func ToBridgeSignal(sig int) int {
	if sig >= linux.SIGRTMIN && sig <= linux.SIGRTMAX {
		b := sig - linux.SIGRTMIN + bridge.SIGRTMIN
		if b > bridge.SIGRTMAX {
			return -1
		}
		return b
	}
	return signals.toBridgeValue(sig, -1)
}

var signalCodes = newEnumTable(
	[2]int{bridge.SI_USER, linux.SI_USER},
	[2]int{bridge.SI_QUEUE, linux.SI_QUEUE},
	[2]int{bridge.SI_TIMER, linux.SI_TIMER},
	[2]int{bridge.SI_MESGQ, linux.SI_MESGQ},
	[2]int{bridge.SI_ASYNCIO, linux.SI_ASYNCIO},
	[2]int{bridge.SI_KERNEL, linux.SI_KERNEL},
	[2]int{bridge.SI_TKILL, linux.SI_TKILL},
	[2]int{bridge.SI_SIGIO, linux.SI_SIGIO},
)

// FromBridgeSignalCode converts a bridge signal origin code. It returns
// UnknownHostSignalCode for an unrecognized code.
func FromBridgeSignalCode(code int) int {
	return signalCodes.fromBridge(code, UnknownHostSignalCode)
}

// ToBridgeSignalCode converts a host signal origin code. It returns -1 for an
// unrecognized code.
func ToBridgeSignalCode(code int) int {
	return signalCodes.toBridgeValue(code, -1)
}

var sigMaskActions = newEnumTable(
	[2]int{bridge.SIG_SETMASK, linux.SIG_SETMASK},
	[2]int{bridge.SIG_BLOCK, linux.SIG_BLOCK},
	[2]int{bridge.SIG_UNBLOCK, linux.SIG_UNBLOCK},
)

// FromBridgeSigMaskAction converts a bridge sigprocmask(2) action. It returns
// -1 for an unrecognized action.
func FromBridgeSigMaskAction(how int) int {
	return sigMaskActions.fromBridge(how, -1)
}

// ToBridgeSigMaskAction converts a host sigprocmask(2) action. It returns -1
// for an unrecognized action.
func ToBridgeSigMaskAction(how int) int {
	return sigMaskActions.toBridgeValue(how, -1)
}

var signalFlags = flagTable{
	{bridge.SA_NOCLDSTOP, linux.SA_NOCLDSTOP},
	{bridge.SA_SIGINFO, linux.SA_SIGINFO},
	{bridge.SA_ONSTACK, linux.SA_ONSTACK},
	{bridge.SA_RESTART, linux.SA_RESTART},
	{bridge.SA_NODEFER, linux.SA_NODEFER},
	{bridge.SA_RESETHAND, linux.SA_RESETHAND},
	{bridge.SA_NOCLDWAIT, linux.SA_NOCLDWAIT},
}

// FromBridgeSignalFlags converts bridge signal action flags.
func FromBridgeSignalFlags(flags int) int {
	return signalFlags.fromBridge(flags)
}

// ToBridgeSignalFlags converts host signal action flags.
func ToBridgeSignalFlags(flags int) int {
	return signalFlags.toBridgeValue(flags)
}

// FromBridgeSigSet converts every member of src and stores the result in
// dst. Signals with no host equivalent are dropped.
func FromBridgeSigSet(src *bridge.SigSet, dst *unix.Sigset_t) *unix.Sigset_t {
	if src == nil || dst == nil {
		return nil
	}
	*dst = unix.Sigset_t{}
	src.ForEach(func(sig int) {
		if h := FromBridgeSignal(sig); h > 0 {
			dst.Val[(h-1)/64] |= 1 << uint((h-1)%64)
		}
	})
	return dst
}

// ToBridgeSigSet converts every member of src and stores the result in dst.
// Signals with no bridge equivalent are dropped.
func ToBridgeSigSet(src *unix.Sigset_t, dst *bridge.SigSet) *bridge.SigSet {
	if src == nil || dst == nil {
		return nil
	}
	*dst = 0
	for h := 1; h <= linux.SIGRTMAX; h++ {
		if src.Val[(h-1)/64]&(1<<uint((h-1)%64)) == 0 {
			continue
		}
		if b := ToBridgeSignal(h); b > 0 {
			dst.Add(b)
		}
	}
	return dst
}

// FromBridgeSigInfo converts the signal number and origin code of src. The
// remaining host fields are zeroed.
func FromBridgeSigInfo(src *bridge.SigInfo, dst *unix.Siginfo) *unix.Siginfo {
	if src == nil || dst == nil {
		return nil
	}
	*dst = unix.Siginfo{}
	dst.Signo = int32(FromBridgeSignal(int(src.Signo)))
	dst.Code = int32(FromBridgeSignalCode(int(src.Code)))
	return dst
}

// ToBridgeSigInfo converts the signal number and origin code of src.
func ToBridgeSigInfo(src *unix.Siginfo, dst *bridge.SigInfo) *bridge.SigInfo {
	if src == nil || dst == nil {
		return nil
	}
	dst.Signo = int32(ToBridgeSignal(int(src.Signo)))
	dst.Code = int32(ToBridgeSignalCode(int(src.Code)))
	return dst
}
