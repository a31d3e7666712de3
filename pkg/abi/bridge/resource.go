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

import "github.com/hostbridge/hostbridge/pkg/abi"

// Resource usage targets for getrusage(2).
const (
	RUSAGE_UNKNOWN  = 0
	RUSAGE_SELF     = 1
	RUSAGE_CHILDREN = 2
	RUSAGE_THREAD   = 3
)

// RUsageTarget selects whose resource usage getrusage(2) reports.
type RUsageTarget int32

// SizeOfRUsage is the size of RUsage in bytes.
const SizeOfRUsage = 144

// RUsage is the resource-usage accounting record.
type RUsage struct {
	UTime    Timeval
	STime    Timeval
	MaxRSS   int64
	IXRSS    int64
	IDRSS    int64
	ISRSS    int64
	MinFlt   int64
	MajFlt   int64
	NSwap    int64
	InBlock  int64
	OuBlock  int64
	MsgSnd   int64
	MsgRcv   int64
	NSignals int64
	NVCSw    int64
	NIvCSw   int64
}

// RUsageTargets names the getrusage(2) targets.
var RUsageTargets = abi.ValueSet{
	RUSAGE_SELF:     "RUSAGE_SELF",
	RUSAGE_CHILDREN: "RUSAGE_CHILDREN",
	RUSAGE_THREAD:   "RUSAGE_THREAD",
}

// String implements fmt.Stringer.
func (r RUsageTarget) String() string {
	return RUsageTargets.Parse(uint64(r))
}

// Selectors for sysconf(3).
const (
	SC_UNKNOWN          = 0
	SC_NPROCESSORS_CONF = 1
	SC_NPROCESSORS_ONLN = 2
	SC_PAGESIZE         = 3
	SC_CLK_TCK          = 4
	SC_OPEN_MAX         = 5
	SC_PHYS_PAGES       = 6
	SC_ARG_MAX          = 7
	SC_CHILD_MAX        = 8
	SC_NGROUPS_MAX      = 9
)

// SysconfConstant is a sysconf(3) selector.
type SysconfConstant int32

// SysconfConstants names the sysconf(3) selectors.
var SysconfConstants = abi.ValueSet{
	SC_NPROCESSORS_CONF: "_SC_NPROCESSORS_CONF",
	SC_NPROCESSORS_ONLN: "_SC_NPROCESSORS_ONLN",
	SC_PAGESIZE:         "_SC_PAGESIZE",
	SC_CLK_TCK:          "_SC_CLK_TCK",
	SC_OPEN_MAX:         "_SC_OPEN_MAX",
	SC_PHYS_PAGES:       "_SC_PHYS_PAGES",
	SC_ARG_MAX:          "_SC_ARG_MAX",
	SC_CHILD_MAX:        "_SC_CHILD_MAX",
	SC_NGROUPS_MAX:      "_SC_NGROUPS_MAX",
}

// String implements fmt.Stringer.
func (c SysconfConstant) String() string {
	return SysconfConstants.Parse(uint64(c))
}
