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

var pollEvents = flagTable{
	{bridge.POLLIN, unix.POLLIN},
	{bridge.POLLPRI, unix.POLLPRI},
	{bridge.POLLOUT, unix.POLLOUT},
	{bridge.POLLERR, unix.POLLERR},
	{bridge.POLLHUP, unix.POLLHUP},
	{bridge.POLLNVAL, unix.POLLNVAL},
	{bridge.POLLRDNORM, linux.POLLRDNORM},
	{bridge.POLLRDBAND, linux.POLLRDBAND},
	{bridge.POLLWRNORM, linux.POLLWRNORM},
	{bridge.POLLWRBAND, linux.POLLWRBAND},
	{bridge.POLLRDHUP, unix.POLLRDHUP},
}

// FromBridgePollEvents converts bridge poll event bits.
func FromBridgePollEvents(events int) int {
	return pollEvents.fromBridge(events)
}

// ToBridgePollEvents converts host poll event bits.
func ToBridgePollEvents(events int) int {
	return pollEvents.toBridgeValue(events)
}

// FromBridgePollFD converts src into dst, translating both event masks.
func FromBridgePollFD(src *bridge.PollFD, dst *unix.PollFd) *unix.PollFd {
	if src == nil || dst == nil {
		return nil
	}
	dst.Fd = src.FD
	dst.Events = int16(FromBridgePollEvents(int(uint16(src.Events))))
	dst.Revents = int16(FromBridgePollEvents(int(uint16(src.REvents))))
	return dst
}

// ToBridgePollFD converts src into dst, translating both event masks.
func ToBridgePollFD(src *unix.PollFd, dst *bridge.PollFD) *bridge.PollFD {
	if src == nil || dst == nil {
		return nil
	}
	dst.FD = src.Fd
	dst.Events = int16(ToBridgePollEvents(int(uint16(src.Events))))
	dst.REvents = int16(ToBridgePollEvents(int(uint16(src.Revents))))
	return dst
}
