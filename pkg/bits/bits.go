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

// Package bits contains non-atomic bit operations on uint64 masks.
package bits

import "math/bits"

// IsOn64 returns true if *all* bits set in 'b' are set in 'mask'.
func IsOn64(mask, b uint64) bool {
	return mask&b == b
}

// Mask64 returns a uint64 with all of the given bits set.
func Mask64(is ...int) uint64 {
	ret := uint64(0)
	for _, i := range is {
		ret |= MaskOf64(i)
	}
	return ret
}

// MaskOf64 is like Mask64, but sets only a single bit (more efficiently).
//
// Bits outside [0, 64) produce an empty mask.
func MaskOf64(i int) uint64 {
	if i < 0 || i >= 64 {
		return 0
	}
	return uint64(1) << uint(i)
}

// ForEachSetBit64 calls f once for each set bit in x, with argument i equal to
// the set bit's index, in ascending order.
func ForEachSetBit64(x uint64, f func(i int)) {
	for x != 0 {
		i := bits.TrailingZeros64(x)
		f(i)
		x &^= MaskOf64(i)
	}
}
