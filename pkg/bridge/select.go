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

// FromBridgeFDSet converts src into dst.
func FromBridgeFDSet(src *bridge.FDSet, dst *unix.FdSet) *unix.FdSet {
	if src == nil || dst == nil {
		return nil
	}
	dst.Zero()
	src.ForEach(dst.Set)
	return dst
}

// ToBridgeFDSet converts src into dst.
func ToBridgeFDSet(src *unix.FdSet, dst *bridge.FDSet) *bridge.FDSet {
	if src == nil || dst == nil {
		return nil
	}
	dst.Zero()
	for fd := 0; fd < bridge.FDSetSize; fd++ {
		if src.IsSet(fd) {
			dst.Set(fd)
		}
	}
	return dst
}
