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

// CPUSetSize is the number of CPUs a CPUSet can hold.
const CPUSetSize = 1024

// SizeOfCPUSet is the size of CPUSet in bytes.
const SizeOfCPUSet = CPUSetSize / 8

// CPUSet is a CPU affinity bitmap. CPU n is bit n%64 of Bits[n/64].
type CPUSet struct {
	Bits [CPUSetSize / 64]uint64
}

// Zero clears every CPU in s.
func (s *CPUSet) Zero() {
	s.Bits = [CPUSetSize / 64]uint64{}
}

// Set adds cpu to s. It returns EINVAL if cpu cannot be represented.
func (s *CPUSet) Set(cpu int) error {
	if cpu < 0 || cpu >= CPUSetSize {
		return linuxerr.EINVAL
	}
	s.Bits[cpu/64] |= 1 << (cpu % 64)
	return nil
}

// Clear removes cpu from s. It returns EINVAL if cpu cannot be represented.
func (s *CPUSet) Clear(cpu int) error {
	if cpu < 0 || cpu >= CPUSetSize {
		return linuxerr.EINVAL
	}
	s.Bits[cpu/64] &^= 1 << (cpu % 64)
	return nil
}

// IsSet returns true if cpu is in s.
func (s *CPUSet) IsSet(cpu int) bool {
	if cpu < 0 || cpu >= CPUSetSize {
		return false
	}
	return s.Bits[cpu/64]&(1<<(cpu%64)) != 0
}

// Count returns the number of CPUs in s.
func (s *CPUSet) Count() int {
	n := 0
	for _, w := range s.Bits {
		n += bits.OnesCount64(w)
	}
	return n
}
