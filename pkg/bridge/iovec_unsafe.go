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
	"unsafe"

	"golang.org/x/sys/unix"
)

// hostBytes returns the n bytes at p, or nil if there are none.
func hostBytes(p *byte, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// hostIovecs returns the n descriptors at p, or nil if there are none.
func hostIovecs(p *unix.Iovec, n int) []unix.Iovec {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}
