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

// FromBridgeStat converts src into dst. Fields narrower on the host are
// truncated. The mode is copied unchanged.
func FromBridgeStat(src *bridge.Stat, dst *unix.Stat_t) *unix.Stat_t {
	if src == nil || dst == nil {
		return nil
	}
	dst.Dev = uint64(src.Dev)
	dst.Ino = uint64(src.Ino)
	dst.Mode = uint32(src.Mode)
	dst.Uid = uint32(src.UID)
	dst.Gid = uint32(src.GID)
	dst.Rdev = uint64(src.Rdev)
	dst.Size = src.Size
	dst.Blocks = src.Blocks
	setStatNlinkBlksize(dst, src.Nlink, src.Blksize)
	FromBridgeTimespec(&src.ATime, &dst.Atim)
	FromBridgeTimespec(&src.MTime, &dst.Mtim)
	FromBridgeTimespec(&src.CTime, &dst.Ctim)
	return dst
}

// ToBridgeStat converts src into dst.
func ToBridgeStat(src *unix.Stat_t, dst *bridge.Stat) *bridge.Stat {
	if src == nil || dst == nil {
		return nil
	}
	dst.Dev = int64(src.Dev)
	dst.Ino = int64(src.Ino)
	dst.Mode = int64(src.Mode)
	dst.Nlink = int64(src.Nlink)
	dst.UID = int64(src.Uid)
	dst.GID = int64(src.Gid)
	dst.Rdev = int64(src.Rdev)
	dst.Size = src.Size
	dst.Blksize = int64(src.Blksize)
	dst.Blocks = src.Blocks
	ToBridgeTimespec(&src.Atim, &dst.ATime)
	ToBridgeTimespec(&src.Mtim, &dst.MTime)
	ToBridgeTimespec(&src.Ctim, &dst.CTime)
	return dst
}
