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
	"golang.org/x/sys/unix"

	"github.com/hostbridge/hostbridge/pkg/abi/bridge"
)

// FromBridgeUtsName copies each field of src into dst in the order sysname,
// nodename, release, version, machine, domainname. It stops at the first
// field that does not fit and returns false; fields already copied are left
// in place.
func FromBridgeUtsName(src *bridge.UtsName, dst *unix.Utsname) bool {
	if src == nil || dst == nil {
		return false
	}
	return CStringCopy(src.Sysname[:], dst.Sysname[:]) &&
		CStringCopy(src.Nodename[:], dst.Nodename[:]) &&
		CStringCopy(src.Release[:], dst.Release[:]) &&
		CStringCopy(src.Version[:], dst.Version[:]) &&
		CStringCopy(src.Machine[:], dst.Machine[:]) &&
		CStringCopy(src.Domainname[:], dst.Domainname[:])
}

// ToBridgeUtsName is the inverse of FromBridgeUtsName.
func ToBridgeUtsName(src *unix.Utsname, dst *bridge.UtsName) bool {
	if src == nil || dst == nil {
		return false
	}
	return CStringCopy(src.Sysname[:], dst.Sysname[:]) &&
		CStringCopy(src.Nodename[:], dst.Nodename[:]) &&
		CStringCopy(src.Release[:], dst.Release[:]) &&
		CStringCopy(src.Version[:], dst.Version[:]) &&
		CStringCopy(src.Machine[:], dst.Machine[:]) &&
		CStringCopy(src.Domainname[:], dst.Domainname[:])
}
