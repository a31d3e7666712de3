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

// Interval timer selectors.
const (
	ITIMER_UNKNOWN = 0
	ITIMER_REAL    = 1
	ITIMER_VIRTUAL = 2
	ITIMER_PROF    = 3
)

// TimerType is an interval timer selector for getitimer(2)/setitimer(2).
type TimerType int32

// Sizes of the time structures.
const (
	SizeOfTimespec  = 16
	SizeOfTimeval   = 16
	SizeOfITimerVal = 32
	SizeOfTms       = 32
	SizeOfUtimbuf   = 16
)

// Timespec is a time value with nanosecond resolution.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Timeval is a time value with microsecond resolution.
type Timeval struct {
	Sec  int64
	Usec int64
}

// ITimerVal is an interval timer setting.
type ITimerVal struct {
	Interval Timeval
	Value    Timeval
}

// Tms is the process CPU-time accounting record returned by times(2), in
// clock ticks.
type Tms struct {
	UTime  int64
	STime  int64
	CUTime int64
	CSTime int64
}

// Utimbuf is the timestamp update record taken by utime(2).
type Utimbuf struct {
	Actime  int64
	Modtime int64
}

// TimerTypes names the interval timer selectors.
var TimerTypes = abi.ValueSet{
	ITIMER_REAL:    "ITIMER_REAL",
	ITIMER_VIRTUAL: "ITIMER_VIRTUAL",
	ITIMER_PROF:    "ITIMER_PROF",
}

// String implements fmt.Stringer.
func (t TimerType) String() string {
	return TimerTypes.Parse(uint64(t))
}
