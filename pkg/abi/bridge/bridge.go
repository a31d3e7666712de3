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

// Package bridge defines the bridge ABI: the representation of syscall
// arguments and results that crosses the boundary between an isolated
// compartment and the host process serving it.
//
// Every constant and layout in this package is part of a frozen wire
// contract. The numbering is deliberately independent of any host kernel;
// translation to and from the host is done by package
// github.com/hostbridge/hostbridge/pkg/bridge.
//
// Wire encoding: multi-byte integers are little-endian and fields are packed
// in declaration order with no implicit padding. Port numbers and IPv6 flow
// information inside socket addresses are in network byte order.
package bridge

import (
	"encoding/binary"

	"github.com/hostbridge/hostbridge/pkg/errors/linuxerr"
)

// ABIVersion identifies this revision of the wire contract. It must be bumped
// whenever a constant value or a layout changes.
const ABIVersion = 3

// ByteOrder is the byte order of the wire encoding.
var ByteOrder = binary.LittleEndian

// Marshallable is implemented by every fixed-layout bridge type.
type Marshallable interface {
	// SizeBytes is the size of the wire encoding in bytes.
	SizeBytes() int

	// MarshalBytes serializes the value into dst and returns the remainder
	// of dst. dst must be at least SizeBytes() long.
	MarshalBytes(dst []byte) []byte

	// UnmarshalBytes deserializes the value from src and returns the
	// remainder of src. src must be at least SizeBytes() long.
	UnmarshalBytes(src []byte) []byte
}

// Marshal returns the wire encoding of m in a newly allocated buffer.
func Marshal(m Marshallable) []byte {
	buf := make([]byte, m.SizeBytes())
	m.MarshalBytes(buf)
	return buf
}

// Unmarshal decodes m from src, which must hold exactly one encoding.
func Unmarshal(m Marshallable, src []byte) error {
	if len(src) != m.SizeBytes() {
		return linuxerr.EINVAL
	}
	m.UnmarshalBytes(src)
	return nil
}
