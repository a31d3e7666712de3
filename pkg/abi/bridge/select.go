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

import (
	"math/bits"

	"github.com/hostbridge/hostbridge/pkg/errors/linuxerr"
)

// FDSetSize is the number of descriptors an FDSet can hold.
const FDSetSize = 1024

// SizeOfFDSet is the size of FDSet in bytes.
const SizeOfFDSet = FDSetSize / 8

// FDSet is a select(2) descriptor bitmap. Descriptor fd is bit fd%8 of
// Bits[fd/8].
type FDSet struct {
	Bits [SizeOfFDSet]uint8
}

// Zero clears every descriptor in s.
func (s *FDSet) Zero() {
	s.Bits = [SizeOfFDSet]uint8{}
}

// Set adds fd to s. It returns EINVAL if fd cannot be represented.
func (s *FDSet) Set(fd int) error {
	if fd < 0 || fd >= FDSetSize {
		return linuxerr.EINVAL
	}
	s.Bits[fd/8] |= 1 << (fd % 8)
	return nil
}

// Clear removes fd from s. It returns EINVAL if fd cannot be represented.
func (s *FDSet) Clear(fd int) error {
	if fd < 0 || fd >= FDSetSize {
		return linuxerr.EINVAL
	}
	s.Bits[fd/8] &^= 1 << (fd % 8)
	return nil
}

// IsSet returns true if fd is in s. Descriptors outside the set's range are
// never members.
func (s *FDSet) IsSet(fd int) bool {
	if fd < 0 || fd >= FDSetSize {
		return false
	}
	return s.Bits[fd/8]&(1<<(fd%8)) != 0
}

// ForEach calls fn with every member of s in ascending order.
func (s *FDSet) ForEach(fn func(fd int)) {
	for i, b := range s.Bits {
		for ; b != 0; b &= b - 1 {
			fn(i*8 + bits.TrailingZeros8(b))
		}
	}
}
