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

// FromBridgeCPUSet converts src into dst.
func FromBridgeCPUSet(src *bridge.CPUSet, dst *unix.CPUSet) *unix.CPUSet {
	if src == nil || dst == nil {
		return nil
	}
	dst.Zero()
	for cpu := 0; cpu < bridge.CPUSetSize; cpu++ {
		if src.IsSet(cpu) {
			dst.Set(cpu)
		}
	}
	return dst
}

// ToBridgeCPUSet converts src into dst.
func ToBridgeCPUSet(src *unix.CPUSet, dst *bridge.CPUSet) *bridge.CPUSet {
	if src == nil || dst == nil {
		return nil
	}
	dst.Zero()
	for cpu := 0; cpu < bridge.CPUSetSize; cpu++ {
		if src.IsSet(cpu) {
			dst.Set(cpu)
		}
	}
	return dst
}
