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
	"strconv"

	"github.com/hostbridge/hostbridge/pkg/abi"
	"github.com/hostbridge/hostbridge/pkg/bits"
)

// Signal numbers.
const (
	SIGHUP    = 1
	SIGINT    = 2
	SIGQUIT   = 3
	SIGILL    = 4
	SIGTRAP   = 5
	SIGABRT   = 6
	SIGFPE    = 8
	SIGKILL   = 9
	SIGBUS    = 10
	SIGSEGV   = 11
	SIGSYS    = 12
	SIGPIPE   = 13
	SIGALRM   = 14
	SIGTERM   = 15
	SIGURG    = 16
	SIGSTOP   = 17
	SIGTSTP   = 18
	SIGCONT   = 19
	SIGCHLD   = 20
	SIGTTIN   = 21
	SIGTTOU   = 22
	SIGIO     = 23
	SIGXCPU   = 24
	SIGXFSZ   = 25
	SIGVTALRM = 26
	SIGPROF   = 27
	SIGWINCH  = 28
	SIGPWR    = 29
	SIGUSR1   = 30
	SIGUSR2   = 31

	// SIGRTMIN and SIGRTMAX bound the realtime signals.
	SIGRTMIN = 32
	SIGRTMAX = 64

	// SignalMaximum is the highest valid signal number.
	SignalMaximum = SIGRTMAX
)

// 'how' values for sigprocmask(2).
const (
	SIG_SETMASK = 0
	SIG_BLOCK   = 1
	SIG_UNBLOCK = 2
)

// Signal action flags.
const (
	SA_NOCLDSTOP = 0x01
	SA_SIGINFO   = 0x02
	SA_ONSTACK   = 0x04
	SA_RESTART   = 0x08
	SA_NODEFER   = 0x10
	SA_RESETHAND = 0x20
	SA_NOCLDWAIT = 0x40
)

// Signal origin codes for SigInfo.Code.
const (
	SI_USER    = 1
	SI_QUEUE   = 2
	SI_TIMER   = 3
	SI_MESGQ   = 4
	SI_ASYNCIO = 5
	SI_KERNEL  = 6
	SI_TKILL   = 7
	SI_SIGIO   = 8
)

// SigSet is a signal mask with a bit for every signal. Signal n is bit n-1.
type SigSet uint64

// SizeOfSigSet is the size of SigSet in bytes.
const SizeOfSigSet = 8

// MakeSigSet returns a SigSet holding sigs. Invalid signal numbers are
// ignored.
func MakeSigSet(sigs ...int) SigSet {
	var s SigSet
	for _, sig := range sigs {
		s.Add(sig)
	}
	return s
}

// Add adds sig to s. Invalid signal numbers are ignored.
func (s *SigSet) Add(sig int) {
	*s |= SigSet(bits.MaskOf64(sig - 1))
}

// Remove removes sig from s.
func (s *SigSet) Remove(sig int) {
	*s &^= SigSet(bits.MaskOf64(sig - 1))
}

// Has returns true if sig is in s.
func (s SigSet) Has(sig int) bool {
	m := bits.MaskOf64(sig - 1)
	return m != 0 && bits.IsOn64(uint64(s), m)
}

// ForEach calls fn with every signal in s, in ascending order.
func (s SigSet) ForEach(fn func(sig int)) {
	bits.ForEachSetBit64(uint64(s), func(i int) {
		fn(i + 1)
	})
}

// SizeOfSigInfo is the size of SigInfo in bytes.
const SizeOfSigInfo = 8

// SigInfo carries the number and origin of a delivered signal.
type SigInfo struct {
	Signo int32
	Code  int32
}

// Signals names the signal numbers.
var Signals = func() abi.ValueSet {
	s := abi.ValueSet{
		SIGHUP:    "SIGHUP",
		SIGINT:    "SIGINT",
		SIGQUIT:   "SIGQUIT",
		SIGILL:    "SIGILL",
		SIGTRAP:   "SIGTRAP",
		SIGABRT:   "SIGABRT",
		SIGFPE:    "SIGFPE",
		SIGKILL:   "SIGKILL",
		SIGBUS:    "SIGBUS",
		SIGSEGV:   "SIGSEGV",
		SIGSYS:    "SIGSYS",
		SIGPIPE:   "SIGPIPE",
		SIGALRM:   "SIGALRM",
		SIGTERM:   "SIGTERM",
		SIGURG:    "SIGURG",
		SIGSTOP:   "SIGSTOP",
		SIGTSTP:   "SIGTSTP",
		SIGCONT:   "SIGCONT",
		SIGCHLD:   "SIGCHLD",
		SIGTTIN:   "SIGTTIN",
		SIGTTOU:   "SIGTTOU",
		SIGIO:     "SIGIO",
		SIGXCPU:   "SIGXCPU",
		SIGXFSZ:   "SIGXFSZ",
		SIGVTALRM: "SIGVTALRM",
		SIGPROF:   "SIGPROF",
		SIGWINCH:  "SIGWINCH",
		SIGPWR:    "SIGPWR",
		SIGUSR1:   "SIGUSR1",
		SIGUSR2:   "SIGUSR2",
		SIGRTMIN:  "SIGRTMIN",
		SIGRTMAX:  "SIGRTMAX",
	}
	for sig := SIGRTMIN + 1; sig < SIGRTMAX; sig++ {
		s[uint64(sig)] = "SIGRTMIN+" + strconv.Itoa(sig-SIGRTMIN)
	}
	return s
}()

// SignalMaskActions names the sigprocmask(2) actions.
var SignalMaskActions = abi.ValueSet{
	SIG_SETMASK: "SIG_SETMASK",
	SIG_BLOCK:   "SIG_BLOCK",
	SIG_UNBLOCK: "SIG_UNBLOCK",
}

// SignalActionFlags names the signal action flags.
var SignalActionFlags = abi.FlagSet{
	{Flag: SA_NOCLDSTOP, Name: "SA_NOCLDSTOP"},
	{Flag: SA_SIGINFO, Name: "SA_SIGINFO"},
	{Flag: SA_ONSTACK, Name: "SA_ONSTACK"},
	{Flag: SA_RESTART, Name: "SA_RESTART"},
	{Flag: SA_NODEFER, Name: "SA_NODEFER"},
	{Flag: SA_RESETHAND, Name: "SA_RESETHAND"},
	{Flag: SA_NOCLDWAIT, Name: "SA_NOCLDWAIT"},
}

// SignalCodes names the signal origin codes.
var SignalCodes = abi.ValueSet{
	SI_USER:    "SI_USER",
	SI_QUEUE:   "SI_QUEUE",
	SI_TIMER:   "SI_TIMER",
	SI_MESGQ:   "SI_MESGQ",
	SI_ASYNCIO: "SI_ASYNCIO",
	SI_KERNEL:  "SI_KERNEL",
	SI_TKILL:   "SI_TKILL",
	SI_SIGIO:   "SI_SIGIO",
}

// String implements fmt.Stringer.
func (s SigSet) String() string {
	if s == 0 {
		return "[]"
	}
	out := "["
	s.ForEach(func(sig int) {
		if len(out) > 1 {
			out += " "
		}
		out += Signals.Parse(uint64(sig))
	})
	return out + "]"
}
