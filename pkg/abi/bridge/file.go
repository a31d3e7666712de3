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

// Commands for fcntl(2).
const (
	F_DUPFD         = 0
	F_GETFD         = 1
	F_SETFD         = 2
	F_GETFL         = 3
	F_SETFL         = 4
	F_GETOWN        = 5
	F_SETOWN        = 6
	F_GETLK         = 7
	F_SETLK         = 8
	F_SETLKW        = 9
	F_DUPFD_CLOEXEC = 10
	F_GETPIPE_SZ    = 11
	F_SETPIPE_SZ    = 12
)

// Descriptor flags for F_GETFD/F_SETFD.
const (
	FD_CLOEXEC = 1
)

// File access modes. These are values, not bits: O_ACCMODE masks them out of
// a set of open flags.
const (
	O_RDONLY  = 0x0
	O_WRONLY  = 0x1
	O_RDWR    = 0x2
	O_ACCMODE = 0x3
)

// File status and creation flags for open(2) and F_GETFL/F_SETFL.
const (
	O_APPEND    = 0x000008
	O_CREAT     = 0x000200
	O_TRUNC     = 0x000400
	O_EXCL      = 0x000800
	O_SYNC      = 0x002000
	O_NONBLOCK  = 0x004000
	O_NOCTTY    = 0x008000
	O_CLOEXEC   = 0x040000
	O_DIRECT    = 0x080000
	O_NOFOLLOW  = 0x100000
	O_DIRECTORY = 0x200000
)

// Operations for flock(2).
const (
	LOCK_SH = 1
	LOCK_EX = 2
	LOCK_NB = 4
	LOCK_UN = 8
)

// SizeOfStat is the size of Stat in bytes.
const SizeOfStat = 128

// Stat is the file status record. Mode uses the POSIX S_IF* and permission
// bit values, which are identical on every supported host.
type Stat struct {
	Dev     int64
	Ino     int64
	Mode    int64
	Nlink   int64
	UID     int64
	GID     int64
	Rdev    int64
	Size    int64
	Blksize int64
	Blocks  int64
	ATime   Timespec
	MTime   Timespec
	CTime   Timespec
}

// FcntlCommands names the fcntl(2) commands.
var FcntlCommands = abi.ValueSet{
	F_DUPFD:         "F_DUPFD",
	F_GETFD:         "F_GETFD",
	F_SETFD:         "F_SETFD",
	F_GETFL:         "F_GETFL",
	F_SETFL:         "F_SETFL",
	F_GETOWN:        "F_GETOWN",
	F_SETOWN:        "F_SETOWN",
	F_GETLK:         "F_GETLK",
	F_SETLK:         "F_SETLK",
	F_SETLKW:        "F_SETLKW",
	F_DUPFD_CLOEXEC: "F_DUPFD_CLOEXEC",
	F_GETPIPE_SZ:    "F_GETPIPE_SZ",
	F_SETPIPE_SZ:    "F_SETPIPE_SZ",
}

// FDFlags names the descriptor flags.
var FDFlags = abi.FlagSet{
	{Flag: FD_CLOEXEC, Name: "FD_CLOEXEC"},
}

// AccessModes names the file access modes.
var AccessModes = abi.ValueSet{
	O_RDONLY: "O_RDONLY",
	O_WRONLY: "O_WRONLY",
	O_RDWR:   "O_RDWR",
}

// OpenFlags names the file status and creation flags, excluding the access
// mode.
var OpenFlags = abi.FlagSet{
	{Flag: O_APPEND, Name: "O_APPEND"},
	{Flag: O_CREAT, Name: "O_CREAT"},
	{Flag: O_TRUNC, Name: "O_TRUNC"},
	{Flag: O_EXCL, Name: "O_EXCL"},
	{Flag: O_SYNC, Name: "O_SYNC"},
	{Flag: O_NONBLOCK, Name: "O_NONBLOCK"},
	{Flag: O_NOCTTY, Name: "O_NOCTTY"},
	{Flag: O_CLOEXEC, Name: "O_CLOEXEC"},
	{Flag: O_DIRECT, Name: "O_DIRECT"},
	{Flag: O_NOFOLLOW, Name: "O_NOFOLLOW"},
	{Flag: O_DIRECTORY, Name: "O_DIRECTORY"},
}

// FLockOperations names the flock(2) operation bits.
var FLockOperations = abi.FlagSet{
	{Flag: LOCK_SH, Name: "LOCK_SH"},
	{Flag: LOCK_EX, Name: "LOCK_EX"},
	{Flag: LOCK_NB, Name: "LOCK_NB"},
	{Flag: LOCK_UN, Name: "LOCK_UN"},
}
