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

// Poll event bits.
const (
	POLLIN     = 0x0001
	POLLPRI    = 0x0002
	POLLOUT    = 0x0004
	POLLERR    = 0x0008
	POLLHUP    = 0x0010
	POLLNVAL   = 0x0020
	POLLRDNORM = 0x0040
	POLLRDBAND = 0x0080
	POLLWRNORM = 0x0100
	POLLWRBAND = 0x0200
	POLLRDHUP  = 0x0400
)

// SizeOfPollFD is the size of PollFD in bytes.
const SizeOfPollFD = 8

// PollFD is a poll descriptor entry.
type PollFD struct {
	FD      int32
	Events  int16
	REvents int16
}

// PollEvents names the poll event bits.
var PollEvents = abi.FlagSet{
	{Flag: POLLIN, Name: "POLLIN"},
	{Flag: POLLPRI, Name: "POLLPRI"},
	{Flag: POLLOUT, Name: "POLLOUT"},
	{Flag: POLLERR, Name: "POLLERR"},
	{Flag: POLLHUP, Name: "POLLHUP"},
	{Flag: POLLNVAL, Name: "POLLNVAL"},
	{Flag: POLLRDNORM, Name: "POLLRDNORM"},
	{Flag: POLLRDBAND, Name: "POLLRDBAND"},
	{Flag: POLLWRNORM, Name: "POLLWRNORM"},
	{Flag: POLLWRBAND, Name: "POLLWRBAND"},
	{Flag: POLLRDHUP, Name: "POLLRDHUP"},
}
