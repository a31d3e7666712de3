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
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrorKind classifies the ways a conversion can fail.
type ErrorKind int

const (
	// InvalidArgument means a required argument was nil or malformed. The
	// converter returned nil or false.
	InvalidArgument ErrorKind = iota

	// Unrecognized means the input had no equivalent in the target domain.
	// The converter returned the concept's sentinel.
	Unrecognized

	// Truncated means a variable-length result did not fit. The converter
	// wrote what fit and reported the full length.
	Truncated

	// TextOverflow means a string did not fit its destination. The
	// converter returned false.
	TextOverflow
)

// Errno returns the errno a dispatcher should report for k, or 0 if the
// condition is not an error at the syscall level.
func (k ErrorKind) Errno() unix.Errno {
	switch k {
	case InvalidArgument:
		return unix.EFAULT
	case TextOverflow:
		return unix.ENAMETOOLONG
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case Unrecognized:
		return "Unrecognized"
	case Truncated:
		return "Truncated"
	case TextOverflow:
		return "TextOverflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}
