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

// UtsNameLength is the size of each UtsName field, including the terminating
// NUL.
const UtsNameLength = 256

// SizeOfUtsName is the size of UtsName in bytes.
const SizeOfUtsName = 6 * UtsNameLength

// UtsName is the system identification returned by uname(2). Each field is
// a NUL-terminated string.
type UtsName struct {
	Sysname    [UtsNameLength]byte
	Nodename   [UtsNameLength]byte
	Release    [UtsNameLength]byte
	Version    [UtsNameLength]byte
	Machine    [UtsNameLength]byte
	Domainname [UtsNameLength]byte
}

// String implements fmt.Stringer.
func (u UtsName) String() string {
	return cstring(u.Sysname[:]) + " " + cstring(u.Nodename[:]) + " " +
		cstring(u.Release[:]) + " " + cstring(u.Version[:]) + " " +
		cstring(u.Machine[:]) + " " + cstring(u.Domainname[:])
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
