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

// Package bridge converts syscall arguments and results between the bridge
// representation defined in package
// github.com/hostbridge/hostbridge/pkg/abi/bridge and the native
// representation of a 64-bit Linux host.
//
// For every concept X there is a pair of functions: FromBridgeX converts a
// bridge value into its host equivalent and ToBridgeX converts a host value
// back. The functions are pure. They neither allocate nor retain their
// arguments, so they are safe for concurrent use.
//
// Enumerations map values outside their supported domain to a documented
// per-concept sentinel. Flag sets translate each recognized bit and drop the
// rest. Structure converters return nil when given a nil argument and write
// only to caller-supplied storage.
package bridge

// enumTable is a closed bijection between bridge and host values.
type enumTable struct {
	toHost   map[int]int
	toBridge map[int]int
}

// newEnumTable builds an enumTable from (bridge, host) pairs.
func newEnumTable(pairs ...[2]int) *enumTable {
	t := &enumTable{
		toHost:   make(map[int]int, len(pairs)),
		toBridge: make(map[int]int, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := t.toHost[p[0]]; ok {
			panic("duplicate bridge value in enum table")
		}
		if _, ok := t.toBridge[p[1]]; ok {
			panic("duplicate host value in enum table")
		}
		t.toHost[p[0]] = p[1]
		t.toBridge[p[1]] = p[0]
	}
	return t
}

func (t *enumTable) fromBridge(v, unknown int) int {
	if h, ok := t.toHost[v]; ok {
		return h
	}
	return unknown
}

func (t *enumTable) toBridgeValue(v, unknown int) int {
	if b, ok := t.toBridge[v]; ok {
		return b
	}
	return unknown
}

// flagTable is an ordered list of (bridge, host) bit pairs. A pair may span
// several bits, in which case all of them must be present.
type flagTable [][2]int

func (t flagTable) fromBridge(v int) int {
	var out int
	for _, p := range t {
		if v&p[0] == p[0] {
			out |= p[1]
		}
	}
	return out
}

func (t flagTable) toBridgeValue(v int) int {
	var out int
	for _, p := range t {
		if v&p[1] == p[1] {
			out |= p[0]
		}
	}
	return out
}
