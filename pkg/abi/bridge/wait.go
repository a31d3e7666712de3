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
	"fmt"

	"github.com/hostbridge/hostbridge/pkg/abi"
)

// Options for wait4(2) and waitid(2).
const (
	WNOHANG    = 0x01
	WUNTRACED  = 0x02
	WCONTINUED = 0x04
	WEXITED    = 0x08
	WNOWAIT    = 0x10

	WSTOPPED = WUNTRACED
)

// Bits of WStatus.Info.
const (
	WStatusExited    = 0x01
	WStatusSignaled  = 0x02
	WStatusStopped   = 0x04
	WStatusContinued = 0x08
	WStatusCoreDump  = 0x10
)

// SizeOfWStatus is the size of WStatus in bytes.
const SizeOfWStatus = 2

// WStatus is the decoded status of a child process. Code holds the exit
// status for an exited child and the bridge signal number for a signaled or
// stopped one. Info says which of those applies.
type WStatus struct {
	Code uint8
	Info uint8
}

// WaitOptions names the wait option bits.
var WaitOptions = abi.FlagSet{
	{Flag: WNOHANG, Name: "WNOHANG"},
	{Flag: WUNTRACED, Name: "WUNTRACED"},
	{Flag: WCONTINUED, Name: "WCONTINUED"},
	{Flag: WEXITED, Name: "WEXITED"},
	{Flag: WNOWAIT, Name: "WNOWAIT"},
}

var wstatusInfo = abi.FlagSet{
	{Flag: WStatusExited, Name: "exited"},
	{Flag: WStatusSignaled, Name: "signaled"},
	{Flag: WStatusStopped, Name: "stopped"},
	{Flag: WStatusContinued, Name: "continued"},
	{Flag: WStatusCoreDump, Name: "core"},
}

// String implements fmt.Stringer.
func (w WStatus) String() string {
	return fmt.Sprintf("%s(%d)", wstatusInfo.Parse(uint64(w.Info)), w.Code)
}
