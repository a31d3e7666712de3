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

var fcntlCmds = newEnumTable(
	[2]int{bridge.F_DUPFD, unix.F_DUPFD},
	[2]int{bridge.F_GETFD, unix.F_GETFD},
	[2]int{bridge.F_SETFD, unix.F_SETFD},
	[2]int{bridge.F_GETFL, unix.F_GETFL},
	[2]int{bridge.F_SETFL, unix.F_SETFL},
	[2]int{bridge.F_GETOWN, unix.F_GETOWN},
	[2]int{bridge.F_SETOWN, unix.F_SETOWN},
	[2]int{bridge.F_GETLK, unix.F_GETLK},
	[2]int{bridge.F_SETLK, unix.F_SETLK},
	[2]int{bridge.F_SETLKW, unix.F_SETLKW},
	[2]int{bridge.F_DUPFD_CLOEXEC, unix.F_DUPFD_CLOEXEC},
	[2]int{bridge.F_GETPIPE_SZ, unix.F_GETPIPE_SZ},
	[2]int{bridge.F_SETPIPE_SZ, unix.F_SETPIPE_SZ},
)

// FromBridgeFcntlCmd converts a bridge fcntl command. It returns -1 for an
// unrecognized command.
func FromBridgeFcntlCmd(cmd int) int {
	return fcntlCmds.fromBridge(cmd, -1)
}

// ToBridgeFcntlCmd converts a host fcntl command. It returns -1 for an
// unrecognized command.
func ToBridgeFcntlCmd(cmd int) int {
	return fcntlCmds.toBridgeValue(cmd, -1)
}

var accessModes = newEnumTable(
	[2]int{bridge.O_RDONLY, unix.O_RDONLY},
	[2]int{bridge.O_WRONLY, unix.O_WRONLY},
	[2]int{bridge.O_RDWR, unix.O_RDWR},
)

var fileFlags = flagTable{
	{bridge.O_APPEND, unix.O_APPEND},
	{bridge.O_CREAT, unix.O_CREAT},
	{bridge.O_TRUNC, unix.O_TRUNC},
	{bridge.O_EXCL, unix.O_EXCL},
	{bridge.O_SYNC, unix.O_SYNC},
	{bridge.O_NONBLOCK, unix.O_NONBLOCK},
	{bridge.O_NOCTTY, unix.O_NOCTTY},
	{bridge.O_CLOEXEC, unix.O_CLOEXEC},
	{bridge.O_DIRECT, unix.O_DIRECT},
	{bridge.O_NOFOLLOW, unix.O_NOFOLLOW},
	{bridge.O_DIRECTORY, unix.O_DIRECTORY},
}

// FromBridgeFileFlags converts bridge open flags, including the access mode.
// Unrecognized flags are dropped and an invalid access mode becomes
// O_RDONLY.
func FromBridgeFileFlags(flags int) int {
	return accessModes.fromBridge(flags&bridge.O_ACCMODE, unix.O_RDONLY) | fileFlags.fromBridge(flags)
}

// ToBridgeFileFlags converts host open flags, including the access mode.
func ToBridgeFileFlags(flags int) int {
	return accessModes.toBridgeValue(flags&unix.O_ACCMODE, bridge.O_RDONLY) | fileFlags.toBridgeValue(flags)
}

var fdFlags = flagTable{
	{bridge.FD_CLOEXEC, unix.FD_CLOEXEC},
}

// FromBridgeFDFlags converts bridge descriptor flags.
func FromBridgeFDFlags(flags int) int {
	return fdFlags.fromBridge(flags)
}

// ToBridgeFDFlags converts host descriptor flags.
func ToBridgeFDFlags(flags int) int {
	return fdFlags.toBridgeValue(flags)
}

var flockOperations = flagTable{
	{bridge.LOCK_SH, unix.LOCK_SH},
	{bridge.LOCK_EX, unix.LOCK_EX},
	{bridge.LOCK_NB, unix.LOCK_NB},
	{bridge.LOCK_UN, unix.LOCK_UN},
}

// FromBridgeFLockOperation converts a bridge flock(2) operation.
func FromBridgeFLockOperation(op int) int {
	return flockOperations.fromBridge(op)
}

// ToBridgeFLockOperation converts a host flock(2) operation.
func ToBridgeFLockOperation(op int) int {
	return flockOperations.toBridgeValue(op)
}
