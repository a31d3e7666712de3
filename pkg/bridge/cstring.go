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

// CStringCopy copies the NUL-terminated string at the start of src into dst
// and terminates it. If src holds no NUL, all of src is the string. It
// returns false if dst cannot hold the string and its terminator, in which
// case the contents of dst are unspecified.
func CStringCopy(src, dst []byte) bool {
	n := len(src)
	for i, c := range src {
		if c == 0 {
			n = i
			break
		}
	}
	if n >= len(dst) {
		return false
	}
	copy(dst, src[:n])
	dst[n] = 0
	return true
}
