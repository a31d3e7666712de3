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

package linux

// Selectors for sysconf(3), from glibc bits/confname.h.
const (
	SC_ARG_MAX          = 0
	SC_CHILD_MAX        = 1
	SC_CLK_TCK          = 2
	SC_NGROUPS_MAX      = 3
	SC_OPEN_MAX         = 4
	SC_PAGESIZE         = 30
	SC_NPROCESSORS_CONF = 83
	SC_NPROCESSORS_ONLN = 84
	SC_PHYS_PAGES       = 85
)
