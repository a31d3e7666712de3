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

//go:build amd64 || arm64
// +build amd64 arm64

// Package hostarch describes the byte-level conventions of the host
// architecture.
package hostarch

import "encoding/binary"

// ByteOrder is the byte order of the host. Both supported architectures are
// little-endian.
var ByteOrder = binary.LittleEndian

// NetworkOrder is the byte order of port numbers and flow labels inside host
// socket addresses.
var NetworkOrder = binary.BigEndian
