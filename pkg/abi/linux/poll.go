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

// Extra poll(2) event bits from uapi/asm-generic/poll.h.
const (
	// POLLRDNORM is set when normal data may be read.
	POLLRDNORM = 0x0040

	// POLLRDBAND is set when priority band data may be read.
	POLLRDBAND = 0x0080

	// POLLWRNORM is set when normal data may be written.
	POLLWRNORM = 0x0100

	// POLLWRBAND is set when priority band data may be written.
	POLLWRBAND = 0x0200
)
