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

import "github.com/hostbridge/hostbridge/pkg/abi"

// Flags for getaddrinfo(3).
const (
	AI_PASSIVE     = 0x01
	AI_CANONNAME   = 0x02
	AI_NUMERICHOST = 0x04
	AI_V4MAPPED    = 0x08
	AI_ADDRCONFIG  = 0x10
	AI_ALL         = 0x20
	AI_NUMERICSERV = 0x40
)

// Error codes returned by getaddrinfo(3).
const (
	EAI_SUCCESS    = 0
	EAI_ADDRFAMILY = -1
	EAI_AGAIN      = -2
	EAI_BADFLAGS   = -3
	EAI_FAIL       = -4
	EAI_FAMILY     = -5
	EAI_MEMORY     = -6
	EAI_NODATA     = -7
	EAI_NONAME     = -8
	EAI_SERVICE    = -9
	EAI_SOCKTYPE   = -10
	EAI_SYSTEM     = -11
	EAI_OVERFLOW   = -12

	// EAI_UNKNOWN is reported for a host error code with no bridge
	// equivalent. It is positive so it cannot collide with a real code.
	EAI_UNKNOWN = 1
)

// AddressInfoFlags names the getaddrinfo flags.
var AddressInfoFlags = abi.FlagSet{
	{Flag: AI_PASSIVE, Name: "AI_PASSIVE"},
	{Flag: AI_CANONNAME, Name: "AI_CANONNAME"},
	{Flag: AI_NUMERICHOST, Name: "AI_NUMERICHOST"},
	{Flag: AI_V4MAPPED, Name: "AI_V4MAPPED"},
	{Flag: AI_ADDRCONFIG, Name: "AI_ADDRCONFIG"},
	{Flag: AI_ALL, Name: "AI_ALL"},
	{Flag: AI_NUMERICSERV, Name: "AI_NUMERICSERV"},
}

// AddressInfoErrors names the getaddrinfo error codes.
var AddressInfoErrors = abi.SignedValueSet(map[int64]string{
	EAI_SUCCESS:    "EAI_SUCCESS",
	EAI_ADDRFAMILY: "EAI_ADDRFAMILY",
	EAI_AGAIN:      "EAI_AGAIN",
	EAI_BADFLAGS:   "EAI_BADFLAGS",
	EAI_FAIL:       "EAI_FAIL",
	EAI_FAMILY:     "EAI_FAMILY",
	EAI_MEMORY:     "EAI_MEMORY",
	EAI_NODATA:     "EAI_NODATA",
	EAI_NONAME:     "EAI_NONAME",
	EAI_SERVICE:    "EAI_SERVICE",
	EAI_SOCKTYPE:   "EAI_SOCKTYPE",
	EAI_SYSTEM:     "EAI_SYSTEM",
	EAI_OVERFLOW:   "EAI_OVERFLOW",
})
