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
	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
	"github.com/hostbridge/hostbridge/pkg/abi/linux"
)

// UnknownHostAddressInfoError is returned by FromBridgeAddressInfoError for
// an unrecognized code. It shares its value with host EAI_BADFLAGS; callers
// that must tell the two apart translate the result back.
const UnknownHostAddressInfoError = -1

var addressInfoFlags = flagTable{
	{bridge.AI_PASSIVE, linux.AI_PASSIVE},
	{bridge.AI_CANONNAME, linux.AI_CANONNAME},
	{bridge.AI_NUMERICHOST, linux.AI_NUMERICHOST},
	{bridge.AI_V4MAPPED, linux.AI_V4MAPPED},
	{bridge.AI_ADDRCONFIG, linux.AI_ADDRCONFIG},
	{bridge.AI_ALL, linux.AI_ALL},
	{bridge.AI_NUMERICSERV, linux.AI_NUMERICSERV},
}

// FromBridgeAddressInfoFlags converts bridge getaddrinfo flags.
func FromBridgeAddressInfoFlags(flags int) int {
	return addressInfoFlags.fromBridge(flags)
}

// ToBridgeAddressInfoFlags converts host getaddrinfo flags.
func ToBridgeAddressInfoFlags(flags int) int {
	return addressInfoFlags.toBridgeValue(flags)
}

var addressInfoErrors = newEnumTable(
	[2]int{bridge.EAI_SUCCESS, linux.EAI_SUCCESS},
	[2]int{bridge.EAI_ADDRFAMILY, linux.EAI_ADDRFAMILY},
	[2]int{bridge.EAI_AGAIN, linux.EAI_AGAIN},
	[2]int{bridge.EAI_BADFLAGS, linux.EAI_BADFLAGS},
	[2]int{bridge.EAI_FAIL, linux.EAI_FAIL},
	[2]int{bridge.EAI_FAMILY, linux.EAI_FAMILY},
	[2]int{bridge.EAI_MEMORY, linux.EAI_MEMORY},
	[2]int{bridge.EAI_NODATA, linux.EAI_NODATA},
	[2]int{bridge.EAI_NONAME, linux.EAI_NONAME},
	[2]int{bridge.EAI_SERVICE, linux.EAI_SERVICE},
	[2]int{bridge.EAI_SOCKTYPE, linux.EAI_SOCKTYPE},
	[2]int{bridge.EAI_SYSTEM, linux.EAI_SYSTEM},
	[2]int{bridge.EAI_OVERFLOW, linux.EAI_OVERFLOW},
)

// FromBridgeAddressInfoError converts a bridge getaddrinfo error code. It
// returns UnknownHostAddressInfoError for an unrecognized code.
func FromBridgeAddressInfoError(code int) int {
	return addressInfoErrors.fromBridge(code, UnknownHostAddressInfoError)
}

// ToBridgeAddressInfoError converts a host getaddrinfo error code. It returns
// bridge.EAI_UNKNOWN for an unrecognized code.
func ToBridgeAddressInfoError(code int) int {
	return addressInfoErrors.toBridgeValue(code, bridge.EAI_UNKNOWN)
}
